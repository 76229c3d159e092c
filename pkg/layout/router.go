package layout

import (
	"math"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

// =============================================================================
// Router - Auto-Connection and Smart Endpoints
// =============================================================================

// Router decides whether new shapes get connected to prior content and
// computes exact connector geometry between elements.
type Router struct {
	cfg Config
}

// NewRouter creates a router with the given configuration.
func NewRouter(cfg Config) Router {
	cfg.ApplyDefaults()
	return Router{cfg: cfg}
}

// ShouldAutoConnect reports whether a newly placed shape of the given kind
// should be connected to the previously placed one. Connection is implied
// while the canvas still reads as a flow: shapes outnumber connectors, and
// neither the new element nor the last placed one is itself a connector.
func (r Router) ShouldAutoConnect(elements []canvas.Element, next canvas.Kind) bool {
	if next.IsConnector() || len(elements) == 0 {
		return false
	}

	shapes, connectors := 0, 0
	for i := range elements {
		if elements[i].IsConnector() {
			connectors++
		} else {
			shapes++
		}
	}
	if shapes == 0 || shapes <= connectors {
		return false
	}

	return !elements[len(elements)-1].IsConnector()
}

// Endpoints computes the start and end coordinates of a smart connector
// from one element to another. The dominant axis is chosen by comparing the
// center deltas: horizontal-dominant connectors join facing edge midpoints
// left-to-right (or right-to-left when reversed); vertical-dominant ones
// join bottom midpoint to top midpoint analogously.
func (r Router) Endpoints(from, to *canvas.Element) (start, end canvas.Point) {
	fb, tb := from.Bounds(), to.Bounds()
	fc, tc := fb.Center(), tb.Center()

	dx := tc.X - fc.X
	dy := tc.Y - fc.Y

	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			start = canvas.Point{X: fb.Right, Y: fc.Y}
			end = canvas.Point{X: tb.Left, Y: tc.Y}
		} else {
			start = canvas.Point{X: fb.Left, Y: fc.Y}
			end = canvas.Point{X: tb.Right, Y: tc.Y}
		}
		return start, end
	}

	if dy >= 0 {
		start = canvas.Point{X: fc.X, Y: fb.Bottom}
		end = canvas.Point{X: tc.X, Y: tb.Top}
	} else {
		start = canvas.Point{X: fc.X, Y: fb.Top}
		end = canvas.Point{X: tc.X, Y: tb.Bottom}
	}
	return start, end
}

// Connect builds a connector element of the given kind between two
// elements using smart endpoint geometry. kind must be a connector kind.
func (r Router) Connect(from, to *canvas.Element, kind canvas.Kind, text string) canvas.Element {
	start, end := r.Endpoints(from, to)
	return canvas.New(canvas.Spec{
		Kind: kind,
		X:    start.X,
		Y:    start.Y,
		Points: []canvas.Point{
			{X: 0, Y: 0},
			{X: end.X - start.X, Y: end.Y - start.Y},
		},
		Text: text,
	})
}

// NearestShape returns the index of the non-connector element whose
// bounding box is closest to p, provided it lies within the configured
// connector proximity. ok is false when nothing is near enough.
func (r Router) NearestShape(elements []canvas.Element, p canvas.Point) (int, bool) {
	best, bestDist := -1, r.cfg.ConnectorProximity
	for i := range elements {
		if elements[i].IsConnector() {
			continue
		}
		if d := elements[i].Bounds().DistanceTo(p); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
