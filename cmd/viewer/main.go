package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/leterax/go-viewport/internal/config"
	"github.com/leterax/go-viewport/internal/logger"
	"github.com/leterax/go-viewport/internal/openglhelper"
	"github.com/leterax/go-viewport/pkg/scene"
	"github.com/leterax/go-viewport/pkg/view"
)

//go:embed shaders
var shaderFS embed.FS

var (
	background = mgl32.Vec4{0.05, 0.05, 0.1, 1.0}
	lightPos   = mgl32.Vec3{20.0, 30.0, 20.0}
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (empty for defaults)")
	title := flag.String("title", "", "Window title (overrides the config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	cpuProfile := flag.Bool("cpuprofile", false, "Write a CPU profile to the working directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootstrap, logErr := logger.New(logger.DefaultConfig())
		if logErr != nil {
			panic(errors.Join(err, logErr))
		}
		bootstrap.Fatal("Failed to load config", zap.String("path", *configPath), zap.Error(err))
	}
	if *title != "" {
		cfg.Window.Title = *title
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}

	if err := run(log, cfg, *configPath, *cpuProfile); err != nil {
		log.Error("Viewer failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

// run owns the window and GL resources so their deferred cleanup runs on every exit path
func run(log *zap.Logger, cfg config.Config, configPath string, cpuProfile bool) error {
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	log.Info("Starting viewer", zap.String("config", configPath))

	manager := view.NewManager(nil, cfg, view.WithLogger(log))
	defer manager.Close()

	window, err := manager.CreateDisplayWindow(cfg.Window.Title)
	if err != nil {
		return err
	}
	defer window.Close()

	// Toggle mouse capture with C key
	window.GLFWWindow().SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyC && action == glfw.Press {
			window.ToggleMouseCaptured()
			manager.ResetMouse()
		}
	})

	shader, err := openglhelper.LoadShaderFromFS(shaderFS, "shaders/scene.vert", "shaders/scene.frag")
	if err != nil {
		return fmt.Errorf("failed to load shader: %w", err)
	}
	defer shader.Delete()
	manager.SetUniformSink(shader)

	cube := openglhelper.NewCube()
	defer cube.Delete()

	instances := scene.Grid(cfg.Scene)
	log.Info("Scene ready", zap.Int("instances", len(instances)))

	for !window.ShouldClose() {
		window.Clear(background)

		shader.Use()
		frame := manager.PrepareSceneView()
		shader.SetVec3("lightPos", lightPos)

		scene.SortBackToFront(instances, frame.ViewPosition)
		for _, inst := range instances {
			shader.SetMat4("model", inst.Model)
			shader.SetVec4("color", inst.Color)
			cube.Draw()
		}

		window.SwapBuffers()
		window.PollEvents()
	}

	log.Info("Viewer closed")
	return nil
}
