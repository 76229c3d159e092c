package canvas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Scene - Canvas Serialization
// =============================================================================

// Scene is the canonical serialization format for a canvas snapshot.
// Used for API responses, storage and CLI import/export. Element order is
// placement order and must be preserved on round-trip.
type Scene struct {
	Elements []Element `json:"elements" bson:"elements"`
}

// MarshalScene converts a scene to indented JSON bytes.
func MarshalScene(s Scene) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

// UnmarshalScene deserializes JSON bytes to a scene.
func UnmarshalScene(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse scene: %w", err)
	}
	return s, nil
}

// WriteSceneFile writes a scene to a JSON file.
// The file is created with 0644 permissions.
func WriteSceneFile(s Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteScene(s, f)
}

// WriteScene writes a scene as JSON to w.
func WriteScene(s Scene, w io.Writer) error {
	data, err := MarshalScene(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// ReadSceneFile reads a scene from a JSON file.
func ReadSceneFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalScene(data)
}
