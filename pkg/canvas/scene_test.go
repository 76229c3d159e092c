package canvas

import (
	"path/filepath"
	"testing"
)

func TestSceneRoundTrip(t *testing.T) {
	scene := Scene{Elements: []Element{
		New(Spec{Kind: KindRectangle, X: 10, Y: 20, Text: "start"}),
		New(Spec{Kind: KindArrow, X: 110, Y: 70, Points: []Point{{X: 0, Y: 0}, {X: 90, Y: 0}}}),
		New(Spec{Kind: KindText, Text: "a label"}),
	}}

	data, err := MarshalScene(scene)
	if err != nil {
		t.Fatalf("MarshalScene() error = %v", err)
	}

	got, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene() error = %v", err)
	}

	if len(got.Elements) != len(scene.Elements) {
		t.Fatalf("round-trip element count = %d, want %d", len(got.Elements), len(scene.Elements))
	}
	// Order is placement order and must survive serialization.
	for i := range scene.Elements {
		if got.Elements[i].ID != scene.Elements[i].ID {
			t.Errorf("element %d ID = %q, want %q", i, got.Elements[i].ID, scene.Elements[i].ID)
		}
		if got.Elements[i].Kind != scene.Elements[i].Kind {
			t.Errorf("element %d Kind = %q, want %q", i, got.Elements[i].Kind, scene.Elements[i].Kind)
		}
	}

	// Connector points survive too.
	if len(got.Elements[1].Points) != 2 {
		t.Errorf("connector points = %d, want 2", len(got.Elements[1].Points))
	}
}

func TestSceneFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	scene := Scene{Elements: []Element{New(Spec{Kind: KindDiamond, Text: "choice"})}}

	if err := WriteSceneFile(scene, path); err != nil {
		t.Fatalf("WriteSceneFile() error = %v", err)
	}

	got, err := ReadSceneFile(path)
	if err != nil {
		t.Fatalf("ReadSceneFile() error = %v", err)
	}
	if len(got.Elements) != 1 || got.Elements[0].Text != "choice" {
		t.Errorf("ReadSceneFile() = %+v", got.Elements)
	}
}

func TestUnmarshalSceneInvalid(t *testing.T) {
	if _, err := UnmarshalScene([]byte("{not json")); err == nil {
		t.Error("UnmarshalScene() with invalid JSON should fail")
	}
}

func TestReadSceneFileMissing(t *testing.T) {
	if _, err := ReadSceneFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadSceneFile() on a missing file should fail")
	}
}
