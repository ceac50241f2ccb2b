package camera

// Camera constants
const (
	// Degrees of rotation per unit of mouse offset
	DefaultMouseSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view, in degrees
	DefaultZoom = 45.0
	MinZoom     = 1.0
	MaxZoom     = 120.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)
