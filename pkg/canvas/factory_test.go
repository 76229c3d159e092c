package canvas

import (
	"strings"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	e := New(Spec{Kind: KindRectangle})

	if e.ID == "" {
		t.Error("New() should assign an ID")
	}
	if e.Width != DefaultSize || e.Height != DefaultSize {
		t.Errorf("size = %gx%g, want %gx%g", e.Width, e.Height, DefaultSize, DefaultSize)
	}
	if e.StrokeColor != DefaultStrokeColor {
		t.Errorf("StrokeColor = %q, want %q", e.StrokeColor, DefaultStrokeColor)
	}
	if e.BackgroundColor != DefaultBackgroundColor {
		t.Errorf("BackgroundColor = %q, want %q", e.BackgroundColor, DefaultBackgroundColor)
	}
	if e.StrokeWidth != DefaultStrokeWidth {
		t.Errorf("StrokeWidth = %v, want %v", e.StrokeWidth, DefaultStrokeWidth)
	}
	if e.FontSize != DefaultFontSize {
		t.Errorf("FontSize = %v, want %v", e.FontSize, DefaultFontSize)
	}
}

func TestNewKeepsExplicitValues(t *testing.T) {
	e := New(Spec{
		Kind:            KindEllipse,
		X:               10,
		Y:               20,
		Width:           150,
		Height:          90,
		StrokeColor:     "#ff0000",
		BackgroundColor: "#ffffff",
	})

	if e.X != 10 || e.Y != 20 {
		t.Errorf("origin = (%g, %g), want (10, 20)", e.X, e.Y)
	}
	if e.Width != 150 || e.Height != 90 {
		t.Errorf("size = %gx%g, want 150x90", e.Width, e.Height)
	}
	if e.StrokeColor != "#ff0000" || e.BackgroundColor != "#ffffff" {
		t.Errorf("style = %q/%q, explicit values should be kept", e.StrokeColor, e.BackgroundColor)
	}
}

func TestNewUniqueIDs(t *testing.T) {
	a := New(Spec{Kind: KindRectangle})
	b := New(Spec{Kind: KindRectangle})
	if a.ID == b.ID {
		t.Errorf("two elements share ID %q", a.ID)
	}
}

func TestNewConnectorBounds(t *testing.T) {
	e := New(Spec{
		Kind:   KindArrow,
		X:      100,
		Y:      50,
		Points: []Point{{X: 0, Y: 0}, {X: 200, Y: -30}},
	})

	if e.Width != 200 {
		t.Errorf("Width = %g, want 200", e.Width)
	}
	// Height comes from the absolute delta between first and last point.
	if e.Height != 30 {
		t.Errorf("Height = %g, want 30", e.Height)
	}
}

func TestNewConnectorRequiresTwoPoints(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New() with a single-point arrow should panic")
		}
	}()
	New(Spec{Kind: KindArrow, Points: []Point{{X: 0, Y: 0}}})
}

func TestNewFreehandRequiresTwoPoints(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New() with a point-less freehand should panic")
		}
	}()
	New(Spec{Kind: KindFreehand})
}

func TestNewFreehandBounds(t *testing.T) {
	e := New(Spec{Kind: KindFreehand, Points: []Point{{X: 0, Y: 0}, {X: 40, Y: 25}, {X: 80, Y: 10}}})

	if got, want := e.Width, 80.0; got != want {
		t.Errorf("Width = %g, want %g", got, want)
	}
	if got, want := e.Height, 10.0; got != want {
		t.Errorf("Height = %g, want %g", got, want)
	}
}

func TestNewUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New() with an unknown kind should panic")
		}
	}()
	New(Spec{Kind: Kind("hexagon")})
}

func TestNewTextSizedFromContent(t *testing.T) {
	short := New(Spec{Kind: KindText, Text: "hi"})
	long := New(Spec{Kind: KindText, Text: "a considerably longer label"})

	if short.Width != MinTextWidth {
		t.Errorf("short text width = %g, want clamp to %g", short.Width, MinTextWidth)
	}
	if long.Width <= short.Width {
		t.Errorf("longer text should be wider: %g <= %g", long.Width, short.Width)
	}

	multi := New(Spec{Kind: KindText, Text: "one\ntwo\nthree"})
	if multi.Height <= short.Height {
		t.Errorf("multi-line text should be taller: %g <= %g", multi.Height, short.Height)
	}
}

func TestMeasureText(t *testing.T) {
	w, h := MeasureText("hello", DefaultFontSize)
	if w != MinTextWidth {
		t.Errorf("width = %g, want %g (5 glyphs clamp to minimum)", w, MinTextWidth)
	}
	if h != TextLineHeight+TextPadding {
		t.Errorf("height = %g, want %g", h, TextLineHeight+TextPadding)
	}

	// A wall of text hits the width cap.
	w, _ = MeasureText(strings.Repeat("x", 200), DefaultFontSize)
	if w != MaxTextWidth {
		t.Errorf("width = %g, want cap %g", w, MaxTextWidth)
	}

	// Larger fonts scale the measurement.
	w28, _ := MeasureText("a twenty char label!", 28)
	w20, _ := MeasureText("a twenty char label!", DefaultFontSize)
	if w28 <= w20 {
		t.Errorf("28pt width %g should exceed 20pt width %g", w28, w20)
	}
}
