// Package camera implements a first-person camera driven by Euler angles.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a 3D camera for navigation
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles, in degrees
	yaw   float32
	pitch float32

	// Field of view, in degrees
	zoom             float32
	mouseSensitivity float32
}

// NewCamera creates a new camera at position looking down -Z with a Y-up world
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:         position,
		worldUp:          mgl32.Vec3{0, 1, 0},
		front:            mgl32.Vec3{0, 0, -1},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		zoom:             DefaultZoom,
		mouseSensitivity: DefaultMouseSensitivity,
	}

	camera.updateCameraVectors()

	return camera
}

// updateCameraVectors recalculates camera vectors based on Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	// Re-calculate right and up vectors
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Translate moves the camera by offset
func (c *Camera) Translate(offset mgl32.Vec3) {
	c.position = c.position.Add(offset)
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)

	c.updateCameraVectors()
}

// SetFront points the camera along direction. Yaw and pitch are derived from it so
// later mouse movement continues from the same orientation.
func (c *Camera) SetFront(direction mgl32.Vec3) {
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = clampPitch(mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(direction.Y(), -1, 1))))))

	c.updateCameraVectors()
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.SetFront(target.Sub(c.position))
}

// SetWorldUp changes the reference up axis used to derive the right and up vectors
func (c *Camera) SetWorldUp(up mgl32.Vec3) {
	if up.Len() == 0 {
		return
	}
	c.worldUp = up.Normalize()
	c.updateCameraVectors()
}

// WorldUp returns the reference up axis
func (c *Camera) WorldUp() mgl32.Vec3 {
	return c.worldUp
}

// Front returns the camera's front direction vector
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Right returns the camera's right direction vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.right
}

// Up returns the camera's up direction vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Zoom returns the vertical field of view in degrees
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// SetZoom sets the vertical field of view, constrained to [MinZoom, MaxZoom]
func (c *Camera) SetZoom(zoom float32) {
	c.zoom = mgl32.Clamp(zoom, MinZoom, MaxZoom)
}

// MouseSensitivity returns the degrees of rotation applied per unit of mouse offset
func (c *Camera) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

// SetMouseSensitivity sets the degrees of rotation applied per unit of mouse offset
func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

// ProcessMouseMovement turns the camera by the given offsets. The offsets are scaled by
// the camera's mouse sensitivity before being added to yaw and pitch.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	c.yaw += xoffset * c.mouseSensitivity
	c.pitch += yoffset * c.mouseSensitivity

	if constrainPitch {
		c.pitch = clampPitch(c.pitch)
	}

	c.updateCameraVectors()
}

// clampPitch keeps the pitch away from the poles to avoid gimbal lock
func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}
