// Package view manages the interactive camera of a 3D viewport. A Manager owns the
// display window, turns mouse and keyboard input into camera movement, and hands the
// per-frame view and projection matrices to a shader.
package view

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/leterax/go-viewport/internal/config"
	"github.com/leterax/go-viewport/internal/logger"
	"github.com/leterax/go-viewport/internal/openglhelper"
	"github.com/leterax/go-viewport/pkg/camera"
)

// Uniform names the frame matrices are published under
const (
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"
)

// UniformSink receives named shader parameters. *openglhelper.Shader implements it.
type UniformSink interface {
	SetMat4(name string, mat mgl32.Mat4)
	SetVec3(name string, vec mgl32.Vec3)
}

// Input is the window surface polled every frame. *openglhelper.Window implements it.
type Input interface {
	GetKeyState(key glfw.Key) glfw.Action
	SetShouldClose(value bool)
	Size() (width, height int)
}

// Compile-time interface compliance checks
var (
	_ UniformSink = (*openglhelper.Shader)(nil)
	_ Input       = (*openglhelper.Window)(nil)
)

// Clock returns the current time in seconds
type Clock func() float64

// Manager holds all camera interaction state for one viewport. It is not safe for
// concurrent use; callbacks and PrepareSceneView must run on the render thread.
type Manager struct {
	log    *zap.Logger
	cfg    config.Config
	sink   UniformSink
	input  Input
	window *openglhelper.Window
	clock  Clock
	camera *camera.Camera

	// Mouse tracking
	lastX      float64
	lastY      float64
	firstMouse bool

	speedMultiplier float32

	// Frame timing
	lastFrame float64
	deltaTime float32

	orthographic bool
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used for speed changes and window errors
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		m.log = logger.Component(log, "view")
	}
}

// WithClock replaces the GLFW timer used to compute frame delta time
func WithClock(clock Clock) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

// WithInput polls keys from input instead of a window created by CreateDisplayWindow
func WithInput(input Input) Option {
	return func(m *Manager) {
		m.input = input
	}
}

// NewManager creates a manager that publishes frame uniforms to sink. sink may be nil,
// in which case PrepareSceneView only returns the computed frame.
func NewManager(sink UniformSink, cfg config.Config, options ...Option) *Manager {
	cam := camera.NewCamera(cfg.Camera.Position)
	cam.SetWorldUp(cfg.Camera.Up)
	cam.SetFront(cfg.Camera.Front)
	cam.SetZoom(cfg.Camera.Zoom)
	cam.SetMouseSensitivity(cfg.Camera.MouseSensitivity)

	m := &Manager{
		log:             zap.NewNop(),
		cfg:             cfg,
		sink:            sink,
		clock:           openglhelper.Time,
		camera:          cam,
		lastX:           float64(cfg.Window.Width) / 2,
		lastY:           float64(cfg.Window.Height) / 2,
		firstMouse:      true,
		speedMultiplier: mgl32.Clamp(1.0, cfg.Input.MinSpeedMultiplier, cfg.Input.MaxSpeedMultiplier),
		orthographic:    cfg.Projection.Orthographic,
	}

	for _, option := range options {
		option(m)
	}

	return m
}

// CreateDisplayWindow opens the display window, makes its context current and routes
// cursor, scroll and resize events to the manager. On failure GLFW has been terminated
// and the returned window is nil.
func (m *Manager) CreateDisplayWindow(title string) (*openglhelper.Window, error) {
	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:         m.cfg.Window.Width,
		Height:        m.cfg.Window.Height,
		Title:         title,
		VSync:         m.cfg.Window.VSync,
		CaptureCursor: m.cfg.Window.CaptureCursor,
		Logger:        m.log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create display window: %w", err)
	}

	window.GLFWWindow().SetCursorPosCallback(m.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(m.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(m.framebufferSizeCallback)

	m.window = window
	m.input = window
	m.lastFrame = m.clock()

	m.log.Info("Display window created",
		zap.String("title", window.Title()),
		zap.Int("width", m.cfg.Window.Width),
		zap.Int("height", m.cfg.Window.Height),
	)

	return window, nil
}

// Close drops the camera and window references. The window itself is owned by the caller.
func (m *Manager) Close() {
	m.sink = nil
	m.window = nil
	m.input = nil
	m.camera = nil
}

// SetUniformSink replaces the destination of the frame uniforms. Shaders usually need a
// current GL context, so they are attached after CreateDisplayWindow.
func (m *Manager) SetUniformSink(sink UniformSink) {
	m.sink = sink
}

// Camera returns the camera driven by this manager
func (m *Manager) Camera() *camera.Camera {
	return m.camera
}

// Window returns the window created by CreateDisplayWindow, or nil
func (m *Manager) Window() *openglhelper.Window {
	return m.window
}

// SpeedMultiplier returns the current keyboard movement multiplier
func (m *Manager) SpeedMultiplier() float32 {
	return m.speedMultiplier
}

// Orthographic reports whether the orthographic projection is selected
func (m *Manager) Orthographic() bool {
	return m.orthographic
}

// DeltaTime returns the seconds between the last two prepared frames
func (m *Manager) DeltaTime() float32 {
	return m.deltaTime
}

// GLFW callbacks

func (m *Manager) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	m.HandleCursorPos(xpos, ypos)
}

func (m *Manager) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	m.HandleScroll(xoffset, yoffset)
}

func (m *Manager) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	m.HandleFramebufferSize(width, height)
}
