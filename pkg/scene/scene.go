// Package scene lays out the demo geometry shown by the viewer: a grid of translucent
// columns whose heights follow a noise field.
package scene

import (
	"cmp"
	"slices"

	fastnoiselite "github.com/furui/fastnoiselite-go"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-viewport/internal/config"
)

var (
	lowColor  = mgl32.Vec3{0.10, 0.45, 0.55}
	highColor = mgl32.Vec3{0.95, 0.90, 0.80}
)

// Instance is one unit cube placed in the world
type Instance struct {
	Model    mgl32.Mat4
	Position mgl32.Vec3 // center of the scaled cube
	Height   float32
	Color    mgl32.Vec4
}

// Grid builds cfg.Size*cfg.Size columns centered on the origin, standing on y = 0.
// The layout only depends on cfg.
func Grid(cfg config.SceneConfig) []Instance {
	if cfg.Size <= 0 {
		return nil
	}

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = float64(cfg.Frequency)
	noise.SetFractalOctaves(int32(max(cfg.Octaves, 1)))

	offset := float32(cfg.Size-1) * cfg.Spacing / 2
	instances := make([]Instance, 0, cfg.Size*cfg.Size)

	for i := 0; i < cfg.Size; i++ {
		for j := 0; j < cfg.Size; j++ {
			sample := float32(noise.GetNoise2D(fastnoiselite.FNLfloat(i), fastnoiselite.FNLfloat(j)))
			t := mgl32.Clamp((sample+1)/2, 0, 1)
			height := 1 + t*cfg.Amplitude

			position := mgl32.Vec3{
				float32(i)*cfg.Spacing - offset,
				height / 2,
				float32(j)*cfg.Spacing - offset,
			}
			model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
				Mul4(mgl32.Scale3D(1, height, 1))

			color := lowColor.Mul(1 - t).Add(highColor.Mul(t))

			instances = append(instances, Instance{
				Model:    model,
				Position: position,
				Height:   height,
				Color:    color.Vec4(cfg.Alpha),
			})
		}
	}

	return instances
}

// SortBackToFront orders instances by decreasing distance from eye so translucent
// geometry blends correctly.
func SortBackToFront(instances []Instance, eye mgl32.Vec3) {
	slices.SortStableFunc(instances, func(a, b Instance) int {
		da := a.Position.Sub(eye).LenSqr()
		db := b.Position.Sub(eye).LenSqr()
		return cmp.Compare(db, da)
	})
}
