package layout

import (
	"math"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

// =============================================================================
// Flow - Arrangement Classification
// =============================================================================

// Flow is the dominant layout axis of existing content.
type Flow string

// Flow classifications.
const (
	FlowHorizontal Flow = "horizontal"
	FlowVertical   Flow = "vertical"
	FlowMixed      Flow = "mixed"
	FlowRadial     Flow = "radial"
)

// Pattern describes the detected arrangement of a canvas snapshot.
// Centroid is meaningful only for FlowRadial.
type Pattern struct {
	Flow     Flow
	Centroid canvas.Point
}

// spreadRatio is the factor by which one axis spread must exceed the other
// to classify a directional flow.
const spreadRatio = 1.5

// Radial classification thresholds: at least radialShare of elements must
// sit within ±radialTolerance of the mean centroid distance.
const (
	radialShare     = 0.6
	radialTolerance = 0.3
	radialMinCount  = 4
)

// DetectPattern classifies the arrangement of existing elements.
//
// Radial arrangements (mind maps) are recognized first, from the spread of
// centroid distances. Otherwise connector directions take precedence over
// positional spread: a single directional connector is stronger evidence of
// intended flow than where boxes happen to sit. Fewer than two positioned
// elements default to horizontal.
func DetectPattern(elements []canvas.Element) Pattern {
	if len(elements) < 2 {
		return Pattern{Flow: FlowHorizontal}
	}

	if centroid, ok := detectRadial(elements); ok {
		return Pattern{Flow: FlowRadial, Centroid: centroid}
	}

	if flow, ok := connectorFlow(elements); ok {
		return Pattern{Flow: flow}
	}

	minX, maxX := elements[0].X, elements[0].X
	minY, maxY := elements[0].Y, elements[0].Y
	for _, e := range elements[1:] {
		minX = math.Min(minX, e.X)
		maxX = math.Max(maxX, e.X)
		minY = math.Min(minY, e.Y)
		maxY = math.Max(maxY, e.Y)
	}

	xSpread := maxX - minX
	ySpread := maxY - minY
	switch {
	case xSpread > spreadRatio*ySpread:
		return Pattern{Flow: FlowHorizontal}
	case ySpread > spreadRatio*xSpread:
		return Pattern{Flow: FlowVertical}
	default:
		return Pattern{Flow: FlowMixed}
	}
}

// connectorFlow derives flow from connector endpoint deltas.
// ok is false when the snapshot has no connectors.
func connectorFlow(elements []canvas.Element) (Flow, bool) {
	horizontal, vertical := 0, 0
	for i := range elements {
		if !elements[i].IsConnector() {
			continue
		}
		start, end := elements[i].Endpoints()
		if math.Abs(end.X-start.X) >= math.Abs(end.Y-start.Y) {
			horizontal++
		} else {
			vertical++
		}
	}
	switch {
	case horizontal == 0 && vertical == 0:
		return "", false
	case horizontal >= vertical:
		return FlowHorizontal, true
	default:
		return FlowVertical, true
	}
}

// detectRadial checks whether shapes cluster at a roughly constant distance
// from their common centroid, as mind maps do. Connectors are excluded: the
// spokes of a mind map would otherwise drag the centroid around.
func detectRadial(elements []canvas.Element) (canvas.Point, bool) {
	var shapes []canvas.Point
	for i := range elements {
		if elements[i].IsConnector() {
			continue
		}
		shapes = append(shapes, elements[i].Center())
	}
	if len(shapes) < radialMinCount {
		return canvas.Point{}, false
	}

	var centroid canvas.Point
	for _, c := range shapes {
		centroid.X += c.X
		centroid.Y += c.Y
	}
	centroid.X /= float64(len(shapes))
	centroid.Y /= float64(len(shapes))

	dists := make([]float64, len(shapes))
	var mean float64
	for i, c := range shapes {
		dists[i] = math.Hypot(c.X-centroid.X, c.Y-centroid.Y)
		mean += dists[i]
	}
	mean /= float64(len(dists))
	if mean == 0 {
		return canvas.Point{}, false
	}

	within := 0
	for _, d := range dists {
		if math.Abs(d-mean) <= radialTolerance*mean {
			within++
		}
	}
	if float64(within) >= radialShare*float64(len(dists)) {
		return centroid, true
	}
	return canvas.Point{}, false
}
