package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write stores a scene description as YAML at path, creating parent
// directories.
func Write(sf *SceneFile, path string) error {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SampleScene returns a small dolly shot: a camera tracking along X past one
// static tracker.
func SampleScene() *SceneFile {
	angle := defaultCameraAngle
	return &SceneFile{
		Name:       "sample",
		FrameStart: 1,
		FrameEnd:   48,
		FPS:        24,
		Camera:     "Camera",
		Objects: []ObjectFile{
			{
				Name:          "Camera",
				Type:          "CAMERA",
				Interpolation: "ease",
				Rotation:      &[3]float64{1.5707963267948966, 0, 0},
				Angle:         &angle,
				Keys: []KeyFile{
					{Frame: 1, Location: &[3]float64{-4, -10, 1.6}},
					{Frame: 48, Location: &[3]float64{4, -10, 1.6}},
				},
			},
			{
				Name:     "Tracker.001",
				Type:     "EMPTY",
				Location: &[3]float64{0, 0, 1},
			},
		},
	}
}
