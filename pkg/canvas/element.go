// Package canvas defines the element model for the shared whiteboard.
//
// A canvas is an append-only, ordered list of elements. Once placed, an
// element is never moved or mutated by the engine; the only destructive
// operation is clearing the whole canvas. There is no stored relation
// between shapes and connectors - adjacency is inferred from endpoint
// proximity each time it is needed (see [Element.Endpoints] and the
// report package).
//
// Elements carry both JSON and BSON tags so the same values serve API
// responses and document storage.
package canvas

import "math"

// =============================================================================
// Kind - Closed Element Type Union
// =============================================================================

// Kind identifies the shape class of an element.
type Kind string

// Element kinds.
const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindDiamond   Kind = "diamond"
	KindLine      Kind = "line"
	KindArrow     Kind = "arrow"
	KindText      Kind = "text"
	KindFreehand  Kind = "freehand"
)

// Valid reports whether k is a known element kind.
func (k Kind) Valid() bool {
	switch k {
	case KindRectangle, KindEllipse, KindDiamond, KindLine, KindArrow, KindText, KindFreehand:
		return true
	}
	return false
}

// IsConnector reports whether the kind joins two other elements.
func (k Kind) IsConnector() bool {
	return k == KindLine || k == KindArrow
}

// HasPoints reports whether elements of this kind carry a point list.
func (k Kind) HasPoints() bool {
	return k == KindLine || k == KindArrow || k == KindFreehand
}

// =============================================================================
// Geometry Primitives
// =============================================================================

// Point is a 2-D coordinate. In [Element.Points] it is an offset from the
// element origin; elsewhere it is an absolute canvas coordinate.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Box is an axis-aligned bounding rectangle.
type Box struct {
	Left   float64 `json:"left" bson:"left"`
	Top    float64 `json:"top" bson:"top"`
	Right  float64 `json:"right" bson:"right"`
	Bottom float64 `json:"bottom" bson:"bottom"`
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Inflate returns the box grown by pad on all four sides.
// Negative pad shrinks the box.
func (b Box) Inflate(pad float64) Box {
	return Box{Left: b.Left - pad, Top: b.Top - pad, Right: b.Right + pad, Bottom: b.Bottom + pad}
}

// Intersects reports whether b and other share any area.
// Boxes that merely touch along an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.Left < other.Right && b.Right > other.Left &&
		b.Top < other.Bottom && b.Bottom > other.Top
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// DistanceTo returns the Euclidean distance from p to the nearest point of
// the box. Points inside the box have distance zero.
func (b Box) DistanceTo(p Point) float64 {
	dx := math.Max(0, math.Max(b.Left-p.X, p.X-b.Right))
	dy := math.Max(0, math.Max(b.Top-p.Y, p.Y-b.Bottom))
	return math.Hypot(dx, dy)
}

// =============================================================================
// Element
// =============================================================================

// Element is a placed diagram element. X and Y are the top-left origin of
// the bounding box; for connectors they are the origin of the first point.
type Element struct {
	ID     string  `json:"id" bson:"id"`
	Kind   Kind    `json:"kind" bson:"kind"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Points holds (dx, dy) offsets from (X, Y). Present only for line,
	// arrow and freehand kinds, with at least two entries.
	Points []Point `json:"points,omitempty" bson:"points,omitempty"`

	// Text is the label content. For text elements it determines the
	// bounding box size.
	Text string `json:"text,omitempty" bson:"text,omitempty"`

	// Style attributes are opaque pass-through for renderers; placement
	// logic never reads them.
	StrokeColor     string  `json:"stroke_color,omitempty" bson:"stroke_color,omitempty"`
	BackgroundColor string  `json:"background_color,omitempty" bson:"background_color,omitempty"`
	StrokeWidth     float64 `json:"stroke_width,omitempty" bson:"stroke_width,omitempty"`
	FontSize        float64 `json:"font_size,omitempty" bson:"font_size,omitempty"`
}

// Bounds returns the axis-aligned bounding box of the element.
func (e *Element) Bounds() Box {
	return Box{Left: e.X, Top: e.Y, Right: e.X + e.Width, Bottom: e.Y + e.Height}
}

// Center returns the midpoint of the element's bounding box.
func (e *Element) Center() Point {
	return e.Bounds().Center()
}

// IsConnector reports whether the element is a line or arrow.
func (e *Element) IsConnector() bool {
	return e.Kind.IsConnector()
}

// Endpoints returns the absolute start and end coordinates of a connector.
// For non-connector elements both points equal the element origin.
func (e *Element) Endpoints() (start, end Point) {
	if len(e.Points) < 2 {
		return Point{X: e.X, Y: e.Y}, Point{X: e.X, Y: e.Y}
	}
	first := e.Points[0]
	last := e.Points[len(e.Points)-1]
	start = Point{X: e.X + first.X, Y: e.Y + first.Y}
	end = Point{X: e.X + last.X, Y: e.Y + last.Y}
	return start, end
}
