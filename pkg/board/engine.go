package board

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/errors"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
)

// Composite layout constants. Step boxes are uniform so flows read evenly;
// mind-map branches sit on a fixed ring around the center topic.
const (
	stepWidth    = 160.0
	stepHeight   = 80.0
	mindMapRing  = 220.0
	centerWidth  = 150.0
	centerHeight = 90.0
)

// =============================================================================
// Engine
// =============================================================================

// Engine resolves placement requests. It holds only configuration and a
// logger; every call receives a full snapshot, so independent sessions may
// call concurrently.
type Engine struct {
	cfg    layout.Config
	logger *log.Logger
}

// New creates an engine. A nil logger falls back to log.Default().
func New(cfg layout.Config, logger *log.Logger) *Engine {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() layout.Config {
	return e.cfg
}

// Place resolves a request against a snapshot and returns the finalized
// elements. The snapshot is never mutated; callers append Result.Elements
// to their own copy.
//
// Errors indicate a malformed request (unknown request kind, missing
// required fields). Recoverable decisions by the caller - bad connect
// indices - surface as soft failures in the result instead.
func (e *Engine) Place(elements []canvas.Element, req Request) (Result, error) {
	switch req.Kind {
	case KindShape:
		return e.placeShape(elements, req)
	case KindConnect:
		return e.connectByIndex(elements, req), nil
	case KindFlowchart:
		return e.placeFlowchart(elements, req)
	case KindMindMap:
		return e.placeMindMap(elements, req)
	default:
		return Result{}, errors.New(errors.ErrCodeInvalidRequest, "unknown request kind: %q", req.Kind)
	}
}

// =============================================================================
// Single Shapes
// =============================================================================

func (e *Engine) placeShape(elements []canvas.Element, req Request) (Result, error) {
	if !req.Shape.Valid() {
		return Result{}, errors.New(errors.ErrCodeInvalidKind, "unknown element kind: %q", req.Shape)
	}
	if req.Shape.IsConnector() {
		return Result{}, errors.New(errors.ErrCodeInvalidRequest,
			"connectors are placed via connect requests, not shape requests")
	}

	width, height := req.Width, req.Height
	switch {
	case req.Shape.HasPoints():
		// Freehand strokes carry their own geometry; the footprint follows
		// from the point deltas, matching the factory.
		if len(req.Points) < 2 {
			return Result{}, errors.New(errors.ErrCodeInvalidPoints,
				"%s element requires at least 2 points, got %d", req.Shape, len(req.Points))
		}
		first, last := req.Points[0], req.Points[len(req.Points)-1]
		width = math.Abs(last.X - first.X)
		height = math.Abs(last.Y - first.Y)
	case req.Shape == canvas.KindText && (width == 0 || height == 0):
		width, height = canvas.MeasureText(req.Text, canvas.DefaultFontSize)
	}
	if width == 0 {
		width = canvas.DefaultSize
	}
	if height == 0 {
		height = canvas.DefaultSize
	}

	placer := e.newPlacer(req)
	pos := placer.Place(elements, width, height, layout.Hints{
		Position:  req.Position,
		Anchor:    e.resolveAnchor(elements, req.RelativeTo),
		Direction: req.Direction,
		Context:   req.Context,
	})

	shape := canvas.New(canvas.Spec{
		Kind:            req.Shape,
		X:               pos.X,
		Y:               pos.Y,
		Width:           width,
		Height:          height,
		Points:          req.Points,
		Text:            req.Text,
		StrokeColor:     req.StrokeColor,
		BackgroundColor: req.BackgroundColor,
	})

	out := Result{OK: true}
	router := layout.NewRouter(e.cfg)
	if req.Position == nil && router.ShouldAutoConnect(elements, req.Shape) {
		prev := lastShape(elements)
		conn := router.Connect(prev, &shape, canvas.KindArrow, "")
		out.Elements = append(out.Elements, conn)
		e.logger.Debug("auto-connected", "from", prev.ID, "to", shape.ID)
	}
	out.Elements = append(out.Elements, shape)
	return out, nil
}

// resolveAnchor finds the element a relative_to hint refers to, by exact ID
// first, then by case-insensitive label match.
func (e *Engine) resolveAnchor(elements []canvas.Element, ref string) *canvas.Element {
	if ref == "" {
		return nil
	}
	for i := range elements {
		if elements[i].ID == ref {
			return &elements[i]
		}
	}
	want := strings.ToLower(ref)
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i].Text != "" && strings.Contains(strings.ToLower(elements[i].Text), want) {
			return &elements[i]
		}
	}
	return nil
}

// lastShape returns the most recently placed non-connector element.
func lastShape(elements []canvas.Element) *canvas.Element {
	for i := len(elements) - 1; i >= 0; i-- {
		if !elements[i].IsConnector() {
			return &elements[i]
		}
	}
	return nil
}

// =============================================================================
// Explicit Connections
// =============================================================================

// connectByIndex joins two existing elements. Out-of-range or equal
// indices are a recoverable caller decision and produce a soft failure.
func (e *Engine) connectByIndex(elements []canvas.Element, req Request) Result {
	n := len(elements)
	if req.FromIndex < 0 || req.FromIndex >= n {
		return softFail(fmt.Sprintf("from_index %d out of range (canvas has %d elements)", req.FromIndex, n))
	}
	if req.ToIndex < 0 || req.ToIndex >= n {
		return softFail(fmt.Sprintf("to_index %d out of range (canvas has %d elements)", req.ToIndex, n))
	}
	if req.FromIndex == req.ToIndex {
		return softFail(fmt.Sprintf("cannot connect element %d to itself", req.FromIndex))
	}

	kind := canvas.KindLine
	if req.Arrow {
		kind = canvas.KindArrow
	}
	router := layout.NewRouter(e.cfg)
	conn := router.Connect(&elements[req.FromIndex], &elements[req.ToIndex], kind, req.Label)
	return Result{OK: true, Elements: []canvas.Element{conn}}
}

// =============================================================================
// Composite Requests
// =============================================================================

// placeFlowchart lays ordered steps along the detected flow axis with
// arrows between consecutive steps. The aggregate footprint is placed once,
// so a partially fitting chain cannot overlap existing content.
func (e *Engine) placeFlowchart(elements []canvas.Element, req Request) (Result, error) {
	if len(req.Steps) == 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidRequest, "flowchart request requires steps")
	}

	n := float64(len(req.Steps))
	gap := e.cfg.AnchorPadding
	vertical := layout.DetectPattern(elements).Flow == layout.FlowVertical

	footW := n*stepWidth + (n-1)*gap
	footH := stepHeight
	if vertical {
		footW, footH = stepWidth, n*stepHeight+(n-1)*gap
	}

	placer := e.newPlacer(req)
	origin := placer.Place(elements, footW, footH, layout.Hints{Context: req.Context})
	router := layout.NewRouter(e.cfg)

	out := Result{OK: true}
	var prev *canvas.Element
	for i, label := range req.Steps {
		x, y := origin.X, origin.Y
		if vertical {
			y += float64(i) * (stepHeight + gap)
		} else {
			x += float64(i) * (stepWidth + gap)
		}
		step := canvas.New(canvas.Spec{
			Kind:            canvas.KindRectangle,
			X:               x,
			Y:               y,
			Width:           stepWidth,
			Height:          stepHeight,
			Text:            label,
			StrokeColor:     req.StrokeColor,
			BackgroundColor: req.BackgroundColor,
		})
		if prev != nil {
			out.Elements = append(out.Elements, router.Connect(prev, &step, canvas.KindArrow, ""))
		}
		out.Elements = append(out.Elements, step)
		prev = &out.Elements[len(out.Elements)-1]
	}
	return out, nil
}

// placeMindMap adds a central topic with branches spread evenly on a ring,
// each joined to the center by a line.
func (e *Engine) placeMindMap(elements []canvas.Element, req Request) (Result, error) {
	if req.Center == "" || len(req.Branches) == 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidRequest, "mindmap request requires a center and branches")
	}

	branchW, branchH := canvas.MeasureText(req.Branches[0], canvas.DefaultFontSize)
	for _, b := range req.Branches[1:] {
		w, h := canvas.MeasureText(b, canvas.DefaultFontSize)
		branchW = math.Max(branchW, w)
		branchH = math.Max(branchH, h)
	}

	footW := 2*mindMapRing + branchW
	footH := 2*mindMapRing + branchH

	placer := e.newPlacer(req)
	origin := placer.Place(elements, footW, footH, layout.Hints{Context: req.Context})
	cx := origin.X + footW/2
	cy := origin.Y + footH/2

	center := canvas.New(canvas.Spec{
		Kind:            canvas.KindEllipse,
		X:               cx - centerWidth/2,
		Y:               cy - centerHeight/2,
		Width:           centerWidth,
		Height:          centerHeight,
		Text:            req.Center,
		StrokeColor:     req.StrokeColor,
		BackgroundColor: req.BackgroundColor,
	})

	out := Result{OK: true, Elements: []canvas.Element{center}}
	router := layout.NewRouter(e.cfg)
	for i, label := range req.Branches {
		angle := 2*math.Pi*float64(i)/float64(len(req.Branches)) - math.Pi/2
		w, h := canvas.MeasureText(label, canvas.DefaultFontSize)
		branch := canvas.New(canvas.Spec{
			Kind: canvas.KindText,
			X:    cx + mindMapRing*math.Cos(angle) - w/2,
			Y:    cy + mindMapRing*math.Sin(angle) - h/2,
			Text: label,
		})
		out.Elements = append(out.Elements, router.Connect(&out.Elements[0], &branch, canvas.KindLine, ""))
		out.Elements = append(out.Elements, branch)
	}
	return out, nil
}

// =============================================================================
// Helpers
// =============================================================================

// newPlacer builds a placer seeded from the request.
func (e *Engine) newPlacer(req Request) *layout.Placer {
	seed := req.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	return layout.NewPlacer(e.cfg, seed, e.logger)
}
