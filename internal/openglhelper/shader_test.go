package openglhelper

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestLoadShaderFromFSMissingFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/scene.vert": &fstest.MapFile{Data: []byte("#version 460 core\n")},
	}

	tests := []struct {
		name     string
		vertex   string
		fragment string
	}{
		{"missing vertex shader", "shaders/missing.vert", "shaders/scene.frag"},
		{"missing fragment shader", "shaders/scene.vert", "shaders/missing.frag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shader, err := LoadShaderFromFS(fsys, tt.vertex, tt.fragment)
			if shader != nil {
				t.Error("Expected nil shader")
			}
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Expected fs.ErrNotExist, got %v", err)
			}
		})
	}
}
