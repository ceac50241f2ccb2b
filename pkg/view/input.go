package view

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Key bindings
const (
	KeyForward      = glfw.KeyW
	KeyBackward     = glfw.KeyS
	KeyLeft         = glfw.KeyA
	KeyRight        = glfw.KeyD
	KeyUp           = glfw.KeyQ
	KeyDown         = glfw.KeyE
	KeyClose        = glfw.KeyEscape
	KeyOrthographic = glfw.KeyO
	KeyPerspective  = glfw.KeyP
	Press           = glfw.Press
)

// HandleCursorPos turns cursor movement into camera yaw and pitch. The first event only
// records the position so the camera does not jump to wherever the cursor entered.
func (m *Manager) HandleCursorPos(xpos, ypos float64) {
	if m.firstMouse {
		m.lastX = xpos
		m.lastY = ypos
		m.firstMouse = false
	}

	xoffset := float32(xpos - m.lastX)
	yoffset := float32(m.lastY - ypos) // Reversed: y ranges bottom to top

	m.lastX = xpos
	m.lastY = ypos

	xoffset *= m.cfg.Input.MouseSensitivity
	yoffset *= m.cfg.Input.MouseSensitivity

	m.camera.ProcessMouseMovement(xoffset, yoffset, true)

	if m.cfg.Input.MouseAdjustsSpeed {
		m.adjustSpeed(yoffset * m.cfg.Input.ScrollStep)
	}
}

// HandleScroll changes the movement speed multiplier by one scroll step per unit of
// vertical scroll.
func (m *Manager) HandleScroll(_, yoffset float64) {
	m.adjustSpeed(float32(yoffset) * m.cfg.Input.ScrollStep)
}

// ResetMouse makes the next cursor event reseed the tracked position
func (m *Manager) ResetMouse() {
	m.firstMouse = true
}

// HandleFramebufferSize keeps the GL viewport in step with the window
func (m *Manager) HandleFramebufferSize(width, height int) {
	if m.window != nil {
		m.window.OnResize(width, height)
	}
}

// adjustSpeed adds delta to the speed multiplier, keeping it within the configured range
func (m *Manager) adjustSpeed(delta float32) {
	if math.IsNaN(float64(delta)) {
		return
	}
	m.speedMultiplier = mgl32.Clamp(
		m.speedMultiplier+delta,
		m.cfg.Input.MinSpeedMultiplier,
		m.cfg.Input.MaxSpeedMultiplier,
	)

	m.log.Debug("Camera speed multiplier", zap.Float32("multiplier", m.speedMultiplier))
}

// ProcessKeyboardEvents moves the camera for every movement key currently held and
// requests the window to close on Escape. Movement is scaled by the last frame time.
func (m *Manager) ProcessKeyboardEvents() {
	if m.input == nil {
		return
	}

	speed := m.deltaTime * m.cfg.Input.MoveSpeed * m.speedMultiplier
	front := m.camera.Front()
	up := m.camera.Up()

	// Forward/Backward
	if m.pressed(KeyForward) {
		m.camera.Translate(front.Mul(speed))
	}
	if m.pressed(KeyBackward) {
		m.camera.Translate(front.Mul(-speed))
	}

	// Left/Right
	if right := front.Cross(up); right.Len() > 0 {
		right = right.Normalize()
		if m.pressed(KeyLeft) {
			m.camera.Translate(right.Mul(-speed))
		}
		if m.pressed(KeyRight) {
			m.camera.Translate(right.Mul(speed))
		}
	}

	// Up/Down
	if m.pressed(KeyUp) {
		m.camera.Translate(up.Mul(speed))
	}
	if m.pressed(KeyDown) {
		m.camera.Translate(up.Mul(-speed))
	}

	if m.pressed(KeyClose) {
		m.input.SetShouldClose(true)
	}
}

func (m *Manager) pressed(key glfw.Key) bool {
	return m.input.GetKeyState(key) == Press
}
