package view

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the camera state prepared for one rendered frame
type Frame struct {
	View         mgl32.Mat4
	Projection   mgl32.Mat4
	ViewPosition mgl32.Vec3
	DeltaTime    float32
	Orthographic bool
}

// PrepareSceneView advances frame timing, applies keyboard movement and computes the
// view and projection matrices. O selects the orthographic projection and P the
// perspective one; P wins when both are held. The matrices and camera position are
// published to the uniform sink, if any.
func (m *Manager) PrepareSceneView() Frame {
	now := m.clock()
	delta := now - m.lastFrame
	if delta < 0 {
		delta = 0
	}
	m.deltaTime = float32(delta)
	m.lastFrame = now

	m.ProcessKeyboardEvents()

	view := m.camera.ViewMatrix()

	if m.input != nil {
		if m.pressed(KeyOrthographic) {
			m.orthographic = true
		}
		if m.pressed(KeyPerspective) {
			m.orthographic = false
		}
	}

	projection := m.projection()
	position := m.camera.Position()

	if m.sink != nil {
		m.sink.SetMat4(UniformView, view)
		m.sink.SetMat4(UniformProjection, projection)
		m.sink.SetVec3(UniformViewPosition, position)
	}

	return Frame{
		View:         view,
		Projection:   projection,
		ViewPosition: position,
		DeltaTime:    m.deltaTime,
		Orthographic: m.orthographic,
	}
}

// projection builds the matrix for the selected projection mode
func (m *Manager) projection() mgl32.Mat4 {
	p := m.cfg.Projection
	if m.orthographic {
		return mgl32.Ortho(-p.OrthoExtent, p.OrthoExtent, -p.OrthoExtent, p.OrthoExtent, p.Near, p.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(m.camera.Zoom()), m.aspect(), p.Near, p.Far)
}

// aspect returns width/height of the window, falling back to the configured size while
// the window is minimized or absent.
func (m *Manager) aspect() float32 {
	width, height := m.cfg.Window.Width, m.cfg.Window.Height
	if m.input != nil {
		if w, h := m.input.Size(); w > 0 && h > 0 {
			width, height = w, h
		}
	}
	return float32(width) / float32(height)
}
