package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CanvasWidth != 1400 || cfg.CanvasHeight != 1000 {
		t.Errorf("canvas = %gx%g, want 1400x1000", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.StartX != 150 || cfg.StartY != 150 {
		t.Errorf("start = (%g, %g), want (150, 150)", cfg.StartX, cfg.StartY)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
}

func TestApplyDefaultsFillsZeroFields(t *testing.T) {
	cfg := Config{CanvasWidth: 2000}
	cfg.ApplyDefaults()

	if cfg.CanvasWidth != 2000 {
		t.Errorf("CanvasWidth = %g, explicit value should survive", cfg.CanvasWidth)
	}
	if cfg.CanvasHeight != 1000 {
		t.Errorf("CanvasHeight = %g, want default 1000", cfg.CanvasHeight)
	}
	if cfg.GridRows != 4 || cfg.GridCols != 4 {
		t.Errorf("grid = %dx%d, want 4x4", cfg.GridRows, cfg.GridCols)
	}
}

func TestApplyDefaultsNonPositiveStart(t *testing.T) {
	// 0 is reserved as "unset" for the start coordinates; an edge-flush
	// start would leave the first element without a margin.
	cfg := Config{StartX: 0, StartY: -10}
	cfg.ApplyDefaults()

	if cfg.StartX != 150 || cfg.StartY != 150 {
		t.Errorf("start = (%g, %g), want defaults (150, 150)", cfg.StartX, cfg.StartY)
	}
}

func TestApplyDefaultsIdempotent(t *testing.T) {
	a := DefaultConfig()
	b := a
	b.ApplyDefaults()
	if a != b {
		t.Errorf("ApplyDefaults() changed a fully-specified config: %+v vs %+v", a, b)
	}
}

func TestValidateRejectsInconsistentBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CanvasWidth = 100 // smaller than StartX
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject canvas smaller than start position")
	}

	cfg = DefaultConfig()
	cfg.OpportunityMinDist = 600
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject min dist above max dist")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	content := "canvas_width = 2000\nflow_gap = 60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.CanvasWidth != 2000 {
		t.Errorf("CanvasWidth = %g, want override 2000", cfg.CanvasWidth)
	}
	if cfg.FlowGap != 60 {
		t.Errorf("FlowGap = %g, want override 60", cfg.FlowGap)
	}
	// Unset keys keep defaults.
	if cfg.CanvasHeight != 1000 {
		t.Errorf("CanvasHeight = %g, want default 1000", cfg.CanvasHeight)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() on a missing file should fail")
	}
}
