package canvas

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// Defaults - Single Source of Truth
// =============================================================================

// Construction defaults applied by New when the spec leaves fields unset.
const (
	// DefaultSize is the fallback width and height for shapes.
	DefaultSize = 100.0

	// DefaultStrokeColor is the default outline color.
	DefaultStrokeColor = "#1e1e1e"

	// DefaultBackgroundColor is the default fill.
	DefaultBackgroundColor = "transparent"

	// DefaultStrokeWidth is the default outline thickness.
	DefaultStrokeWidth = 2.0

	// DefaultFontSize is the default label font size.
	DefaultFontSize = 20.0
)

// Text measurement constants. The sizing model is deliberately crude: an
// average glyph width per font unit and a fixed line height, clamped so
// single words and walls of text both produce usable boxes.
const (
	// TextLineHeight is the vertical space per text line.
	TextLineHeight = 25.0

	// TextGlyphWidth is the assumed average glyph width at DefaultFontSize.
	TextGlyphWidth = 11.0

	// TextPadding is added to the measured height.
	TextPadding = 10.0

	// MinTextWidth is the narrowest box a text element may occupy.
	MinTextWidth = 60.0

	// MaxTextWidth caps text boxes so long paragraphs stay readable.
	MaxTextWidth = 420.0
)

// =============================================================================
// Spec - Partial Element Input
// =============================================================================

// Spec is the partial input from which New constructs a fully-specified
// element. Zero-valued fields receive defaults.
type Spec struct {
	Kind   Kind
	X, Y   float64
	Width  float64
	Height float64
	Points []Point
	Text   string

	StrokeColor     string
	BackgroundColor string
	StrokeWidth     float64
	FontSize        float64
}

// New constructs a fully-specified element from a partial spec.
//
// Construction is pure: no side effects beyond ID assignment. An unknown
// kind, or a point-carrying spec with fewer than two points, is a contract
// violation by the caller and panics. Callers accepting untrusted input
// must validate points before construction.
func New(spec Spec) Element {
	if !spec.Kind.Valid() {
		panic(fmt.Sprintf("canvas: unknown element kind %q", spec.Kind))
	}
	if spec.Kind.HasPoints() && len(spec.Points) < 2 {
		panic(fmt.Sprintf("canvas: %s element requires at least 2 points, got %d", spec.Kind, len(spec.Points)))
	}

	e := Element{
		ID:              uuid.NewString(),
		Kind:            spec.Kind,
		X:               spec.X,
		Y:               spec.Y,
		Width:           spec.Width,
		Height:          spec.Height,
		Points:          spec.Points,
		Text:            spec.Text,
		StrokeColor:     spec.StrokeColor,
		BackgroundColor: spec.BackgroundColor,
		StrokeWidth:     spec.StrokeWidth,
		FontSize:        spec.FontSize,
	}

	if e.StrokeColor == "" {
		e.StrokeColor = DefaultStrokeColor
	}
	if e.BackgroundColor == "" {
		e.BackgroundColor = DefaultBackgroundColor
	}
	if e.StrokeWidth == 0 {
		e.StrokeWidth = DefaultStrokeWidth
	}
	if e.FontSize == 0 {
		e.FontSize = DefaultFontSize
	}

	switch {
	case spec.Kind.HasPoints():
		// Bounding box follows from the point deltas, never negative.
		first := e.Points[0]
		last := e.Points[len(e.Points)-1]
		e.Width = math.Abs(last.X - first.X)
		e.Height = math.Abs(last.Y - first.Y)

	case spec.Kind == KindText:
		if e.Width == 0 || e.Height == 0 {
			e.Width, e.Height = MeasureText(e.Text, e.FontSize)
		}

	default:
		if e.Width == 0 {
			e.Width = DefaultSize
		}
		if e.Height == 0 {
			e.Height = DefaultSize
		}
	}

	return e
}

// MeasureText estimates the bounding box of a text label.
//
// Width is the longest line times the average glyph width, scaled by the
// font size and clamped to [MinTextWidth, MaxTextWidth]. Height is the line
// count times the line height plus padding.
func MeasureText(text string, fontSize float64) (width, height float64) {
	lines := strings.Split(text, "\n")
	longest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}

	scale := fontSize / DefaultFontSize
	if scale <= 0 {
		scale = 1
	}

	width = float64(longest) * TextGlyphWidth * scale
	width = math.Max(MinTextWidth, math.Min(MaxTextWidth, width))
	height = float64(len(lines))*TextLineHeight*scale + TextPadding
	return width, height
}
