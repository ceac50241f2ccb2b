package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func vecNear(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, epsilon)
}

func TestNewCamera(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{1, 2, 3})

	if cam.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Expected position (1,2,3), got %v", cam.Position())
	}
	if !vecNear(cam.Front(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected front (0,0,-1), got %v", cam.Front())
	}
	if !vecNear(cam.Up(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected up (0,1,0), got %v", cam.Up())
	}
	if !vecNear(cam.Right(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Expected right (1,0,0), got %v", cam.Right())
	}
	if cam.Zoom() != DefaultZoom {
		t.Errorf("Expected zoom %v, got %v", DefaultZoom, cam.Zoom())
	}
}

func TestSetFrontDerivesAngles(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 5, 12})
	cam.SetFront(mgl32.Vec3{0, -0.5, -2})

	want := mgl32.Vec3{0, -0.5, -2}.Normalize()
	if !vecNear(cam.Front(), want) {
		t.Errorf("Expected front %v, got %v", want, cam.Front())
	}

	yaw, pitch := cam.Orientation()
	if math.Abs(float64(yaw)+90) > epsilon {
		t.Errorf("Expected yaw -90, got %v", yaw)
	}
	wantPitch := mgl32.RadToDeg(float32(math.Asin(float64(want.Y()))))
	if math.Abs(float64(pitch-wantPitch)) > epsilon {
		t.Errorf("Expected pitch %v, got %v", wantPitch, pitch)
	}

	// A zero-movement mouse event must not change the direction
	cam.ProcessMouseMovement(0, 0, true)
	if !vecNear(cam.Front(), want) {
		t.Errorf("Front drifted after zero movement: %v", cam.Front())
	}
}

func TestSetFrontIgnoresZeroVector(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	before := cam.Front()
	cam.SetFront(mgl32.Vec3{})
	if cam.Front() != before {
		t.Errorf("Expected front unchanged, got %v", cam.Front())
	}
}

func TestProcessMouseMovement(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float32
		constrain bool
		wantYaw   float32
		wantPitch float32
	}{
		{"no movement", 0, 0, true, DefaultYaw, DefaultPitch},
		{"yaw right", 100, 0, true, DefaultYaw + 10, DefaultPitch},
		{"pitch up", 0, 50, true, DefaultYaw, 5},
		{"pitch clamped high", 0, 5000, true, DefaultYaw, MaxPitch},
		{"pitch clamped low", 0, -5000, true, DefaultYaw, MinPitch},
		{"pitch unconstrained", 0, 1000, false, DefaultYaw, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(mgl32.Vec3{})
			cam.ProcessMouseMovement(tt.x, tt.y, tt.constrain)

			yaw, pitch := cam.Orientation()
			if math.Abs(float64(yaw-tt.wantYaw)) > epsilon {
				t.Errorf("Expected yaw %v, got %v", tt.wantYaw, yaw)
			}
			if math.Abs(float64(pitch-tt.wantPitch)) > epsilon {
				t.Errorf("Expected pitch %v, got %v", tt.wantPitch, pitch)
			}

			if l := cam.Front().Len(); math.Abs(float64(l)-1) > 0.01 {
				t.Errorf("Front vector should be normalized, length=%f", l)
			}
		})
	}
}

func TestSetZoomClamps(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})

	cam.SetZoom(80)
	if cam.Zoom() != 80 {
		t.Errorf("Expected zoom 80, got %v", cam.Zoom())
	}
	cam.SetZoom(0)
	if cam.Zoom() != MinZoom {
		t.Errorf("Expected zoom %v, got %v", MinZoom, cam.Zoom())
	}
	cam.SetZoom(500)
	if cam.Zoom() != MaxZoom {
		t.Errorf("Expected zoom %v, got %v", MaxZoom, cam.Zoom())
	}
}

func TestViewMatrix(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5})

	view := cam.ViewMatrix()
	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	// The camera position maps to the view-space origin
	origin := view.Mul4x1(cam.Position().Vec4(1)).Vec3()
	if !vecNear(origin, mgl32.Vec3{}) {
		t.Errorf("Expected camera at view origin, got %v", origin)
	}

	// A point straight ahead lies on the -Z axis in view space
	ahead := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !vecNear(ahead, mgl32.Vec3{0, 0, -5}) {
		t.Errorf("Expected (0,0,-5), got %v", ahead)
	}
}

func TestTranslateAndLookAt(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.Translate(mgl32.Vec3{10, 0, 0})
	cam.LookAt(mgl32.Vec3{10, 0, 10})

	if !vecNear(cam.Position(), mgl32.Vec3{10, 0, 0}) {
		t.Errorf("Expected position (10,0,0), got %v", cam.Position())
	}
	if !vecNear(cam.Front(), mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected front (0,0,1), got %v", cam.Front())
	}
}

func TestSetRotationAndPosition(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.SetPosition(mgl32.Vec3{4, 5, 6})
	cam.SetRotation(0, 120)

	yaw, pitch := cam.Orientation()
	if yaw != 0 || pitch != MaxPitch {
		t.Errorf("Expected (0, %v), got (%v, %v)", MaxPitch, yaw, pitch)
	}
	if cam.Position() != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("Expected position (4,5,6), got %v", cam.Position())
	}
}

func TestSetWorldUp(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.SetWorldUp(mgl32.Vec3{0, 2, 0})

	if !vecNear(cam.WorldUp(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected normalized world up, got %v", cam.WorldUp())
	}

	cam.SetWorldUp(mgl32.Vec3{})
	if !vecNear(cam.WorldUp(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Zero world up should be ignored, got %v", cam.WorldUp())
	}
}

func TestMouseSensitivity(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	if cam.MouseSensitivity() != DefaultMouseSensitivity {
		t.Errorf("Expected default sensitivity %v, got %v", DefaultMouseSensitivity, cam.MouseSensitivity())
	}

	cam.SetMouseSensitivity(0.5)
	if cam.MouseSensitivity() != 0.5 {
		t.Errorf("Expected sensitivity 0.5, got %v", cam.MouseSensitivity())
	}

	cam.ProcessMouseMovement(10, 0, true)
	yaw, _ := cam.Orientation()
	if !mgl32.FloatEqualThreshold(yaw, DefaultYaw+5, 1e-4) {
		t.Errorf("Expected yaw %v, got %v", DefaultYaw+5, yaw)
	}
}
