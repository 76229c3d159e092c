package layout

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

// =============================================================================
// Placement Hints
// =============================================================================

// Direction is a relative anchor direction.
type Direction string

// Anchor directions.
const (
	DirRight    Direction = "right"
	DirBelow    Direction = "below"
	DirLeft     Direction = "left"
	DirAbove    Direction = "above"
	DirDiagonal Direction = "diagonal"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	switch d {
	case DirRight, DirBelow, DirLeft, DirAbove, DirDiagonal:
		return true
	}
	return false
}

// Hints carries the optional placement inputs of a request.
// All fields may be zero; the placer then falls back to flow continuation
// and grid search.
type Hints struct {
	// Position is an explicit coordinate. It wins over everything else
	// and is only clamped into canvas bounds.
	Position *canvas.Point

	// Anchor is the element an explicit relative placement refers to,
	// with Direction naming the side. Anchor without a valid direction is
	// treated as a focus element.
	Anchor    *canvas.Element
	Direction Direction

	// Context is free text describing what the new element relates to.
	// It biases placement toward text elements sharing tokens with it.
	Context string
}

// =============================================================================
// Placer - Ordered Strategy Chain
// =============================================================================

// Placer resolves coordinates for new elements. It is stateless apart from
// the injected random source; a fresh snapshot is passed to every call.
//
// The strategy chain is fixed: empty canvas, explicit anchor, focus by
// context, sequential flow continuation, region-grid search, least-dense
// region scan, and finally extending the canvas to the right. The last step
// is unconditional, so placement never fails.
type Placer struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

// NewPlacer creates a placer with the given configuration and jitter seed.
// Identical seeds yield identical coordinates for identical inputs.
// A nil logger falls back to log.Default().
func NewPlacer(cfg Config, seed uint64, logger *log.Logger) *Placer {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = log.Default()
	}
	return &Placer{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
}

// Config returns the placer's effective configuration.
func (p *Placer) Config() Config {
	return p.cfg
}

// Place resolves the top-left position for a new element of the given size.
// The returned coordinate never overlaps existing content except when the
// extend-canvas fallback is exercised, which by design ignores the right
// canvas bound.
func (p *Placer) Place(elements []canvas.Element, width, height float64, hints Hints) canvas.Point {
	ix := NewIndex(elements)

	if hints.Position != nil {
		pos := p.clamp(*hints.Position, width, height)
		p.logger.Debug("placement: explicit position", "x", pos.X, "y", pos.Y)
		return pos
	}

	if len(elements) == 0 {
		p.logger.Debug("placement: empty canvas start")
		return canvas.Point{X: p.cfg.StartX, Y: p.cfg.StartY}
	}

	if hints.Anchor != nil && hints.Direction.Valid() {
		if pos, ok := p.placeAnchored(ix, hints.Anchor, hints.Direction, width, height); ok {
			p.logger.Debug("placement: anchored", "direction", hints.Direction, "x", pos.X, "y", pos.Y)
			return pos
		}
	}

	if focus := p.focusElement(elements, hints); focus != nil {
		if pos, ok := p.placeAroundFocus(ix, focus, width, height); ok {
			p.logger.Debug("placement: focus", "focus", focus.ID, "x", pos.X, "y", pos.Y)
			return pos
		}
	}

	if pos, ok := p.placeSequential(ix, elements, width, height); ok {
		p.logger.Debug("placement: sequential flow", "x", pos.X, "y", pos.Y)
		return pos
	}

	if pos, ok := p.placeInFreeRegion(ix, width, height); ok {
		p.logger.Debug("placement: free region", "x", pos.X, "y", pos.Y)
		return pos
	}

	if pos, ok := p.placeInLeastDenseRegion(ix, elements, width, height); ok {
		p.logger.Debug("placement: least-dense region", "x", pos.X, "y", pos.Y)
		return pos
	}

	pos := p.extendCanvas(ix)
	p.logger.Debug("placement: extend canvas", "x", pos.X, "y", pos.Y)
	return pos
}

// =============================================================================
// Strategies
// =============================================================================

// placeAnchored computes a position on the requested side of the anchor,
// with symmetric jitter on the perpendicular axis, clamped into bounds.
// It fails only when the spot is already taken.
func (p *Placer) placeAnchored(ix *Index, anchor *canvas.Element, dir Direction, width, height float64) (canvas.Point, bool) {
	b := anchor.Bounds()
	pad := p.cfg.AnchorPadding
	jitter := p.jitter()

	var pos canvas.Point
	switch dir {
	case DirRight:
		pos = canvas.Point{X: b.Right + pad, Y: anchor.Y + jitter}
	case DirBelow:
		pos = canvas.Point{X: anchor.X + jitter, Y: b.Bottom + pad}
	case DirLeft:
		pos = canvas.Point{X: b.Left - pad - width, Y: anchor.Y + jitter}
	case DirAbove:
		pos = canvas.Point{X: anchor.X + jitter, Y: b.Top - pad - height}
	case DirDiagonal:
		pos = canvas.Point{X: b.Right + pad, Y: b.Bottom + pad}
	}

	pos = p.clamp(pos, width, height)
	if ix.Overlaps(boxAt(pos, width, height), p.cfg.FinePadding) {
		// Requested side is taken; try the remaining sides before giving
		// the chain a chance.
		return p.tryCandidates(ix, b, width, height, dir)
	}
	return pos, true
}

// focusElement resolves the element a context hint refers to. Text-bearing
// elements sharing tokens with the context win; otherwise the most recently
// placed positioned element is used. Without a context hint there is no
// focus (but a direction-less anchor acts as one).
func (p *Placer) focusElement(elements []canvas.Element, hints Hints) *canvas.Element {
	if hints.Anchor != nil && !hints.Direction.Valid() {
		return hints.Anchor
	}
	if hints.Context == "" {
		return nil
	}

	want := tokenize(hints.Context)
	if len(want) > 0 {
		best, bestScore := -1, 0
		for i := range elements {
			if elements[i].Text == "" {
				continue
			}
			score := 0
			for tok := range tokenize(elements[i].Text) {
				if want[tok] {
					score++
				}
			}
			// Later elements win ties: recent content is the likelier
			// referent of conversational context.
			if score > 0 && score >= bestScore {
				best, bestScore = i, score
			}
		}
		if best >= 0 {
			return &elements[best]
		}
	}

	// Fall back to the most recently placed non-connector element.
	for i := len(elements) - 1; i >= 0; i-- {
		if !elements[i].IsConnector() {
			return &elements[i]
		}
	}
	return nil
}

// placeAroundFocus tries up to six candidate positions around the focus
// element, right first.
func (p *Placer) placeAroundFocus(ix *Index, focus *canvas.Element, width, height float64) (canvas.Point, bool) {
	return p.tryCandidates(ix, focus.Bounds(), width, height, "")
}

// tryCandidates probes positions around a bounding box in priority order:
// right, below, left, above, then the two lower diagonals. skip names a
// direction already probed by the caller.
func (p *Placer) tryCandidates(ix *Index, b canvas.Box, width, height float64, skip Direction) (canvas.Point, bool) {
	pad := p.cfg.AnchorPadding
	candidates := []struct {
		dir Direction
		pos canvas.Point
	}{
		{DirRight, canvas.Point{X: b.Right + pad, Y: b.Top}},
		{DirBelow, canvas.Point{X: b.Left, Y: b.Bottom + pad}},
		{DirLeft, canvas.Point{X: b.Left - pad - width, Y: b.Top}},
		{DirAbove, canvas.Point{X: b.Left, Y: b.Top - pad - height}},
		{DirDiagonal, canvas.Point{X: b.Right + pad, Y: b.Bottom + pad}},
		{DirDiagonal, canvas.Point{X: b.Left - pad - width, Y: b.Bottom + pad}},
	}

	for _, c := range candidates {
		if c.dir == skip && c.dir != DirDiagonal {
			continue
		}
		pos := p.clamp(c.pos, width, height)
		if !p.inBounds(pos, width, height) {
			continue
		}
		if !ix.Overlaps(boxAt(pos, width, height), p.cfg.FinePadding) {
			return pos, true
		}
	}
	return canvas.Point{}, false
}

// placeSequential continues the reading flow: right of the last-placed
// shape, wrapping to a new row below the tallest element of the current row
// when the canvas width would be exceeded.
func (p *Placer) placeSequential(ix *Index, elements []canvas.Element, width, height float64) (canvas.Point, bool) {
	var last *canvas.Element
	for i := len(elements) - 1; i >= 0; i-- {
		if !elements[i].IsConnector() {
			last = &elements[i]
			break
		}
	}
	if last == nil {
		return canvas.Point{}, false
	}

	lb := last.Bounds()
	pos := canvas.Point{X: lb.Right + p.cfg.FlowGap, Y: last.Y}

	if pos.X+width > p.cfg.CanvasWidth {
		// Wrap below the tallest element of the current row.
		rowBottom := lb.Bottom
		for i := range elements {
			eb := elements[i].Bounds()
			if eb.Top < lb.Bottom && eb.Bottom > lb.Top {
				rowBottom = math.Max(rowBottom, eb.Bottom)
			}
		}
		pos = canvas.Point{X: p.cfg.StartX, Y: rowBottom + p.cfg.FlowGap}
	}

	if !p.inBounds(pos, width, height) {
		return canvas.Point{}, false
	}
	if ix.Overlaps(boxAt(pos, width, height), p.cfg.FinePadding) {
		return canvas.Point{}, false
	}
	return pos, true
}

// placeInFreeRegion partitions the canvas into a fixed grid and returns the
// first region, in reading order, containing no element.
func (p *Placer) placeInFreeRegion(ix *Index, width, height float64) (canvas.Point, bool) {
	regionW := p.cfg.CanvasWidth / float64(p.cfg.GridCols)
	regionH := p.cfg.CanvasHeight / float64(p.cfg.GridRows)

	for row := 0; row < p.cfg.GridRows; row++ {
		for col := 0; col < p.cfg.GridCols; col++ {
			region := canvas.Box{
				Left:   float64(col) * regionW,
				Top:    float64(row) * regionH,
				Right:  float64(col+1) * regionW,
				Bottom: float64(row+1) * regionH,
			}
			if regionOccupied(ix, region) {
				continue
			}
			pos := canvas.Point{
				X: region.Left + (regionW-width)/2,
				Y: region.Top + (regionH-height)/2,
			}
			pos = p.clamp(pos, width, height)
			if !ix.Overlaps(boxAt(pos, width, height), p.cfg.FinePadding) {
				return pos, true
			}
		}
	}
	return canvas.Point{}, false
}

// placeInLeastDenseRegion picks the grid region holding the fewest element
// centers and scans it locally for a free spot.
func (p *Placer) placeInLeastDenseRegion(ix *Index, elements []canvas.Element, width, height float64) (canvas.Point, bool) {
	regionW := p.cfg.CanvasWidth / float64(p.cfg.GridCols)
	regionH := p.cfg.CanvasHeight / float64(p.cfg.GridRows)

	counts := make([]int, p.cfg.GridRows*p.cfg.GridCols)
	for i := range elements {
		c := elements[i].Center()
		col := int(c.X / regionW)
		row := int(c.Y / regionH)
		if col < 0 || col >= p.cfg.GridCols || row < 0 || row >= p.cfg.GridRows {
			continue
		}
		counts[row*p.cfg.GridCols+col]++
	}

	best := 0
	for i, n := range counts {
		if n < counts[best] {
			best = i
		}
	}
	region := canvas.Box{
		Left:   float64(best%p.cfg.GridCols) * regionW,
		Top:    float64(best/p.cfg.GridCols) * regionH,
		Right:  float64(best%p.cfg.GridCols+1) * regionW,
		Bottom: float64(best/p.cfg.GridCols+1) * regionH,
	}

	for y := region.Top; y+height <= region.Bottom; y += p.cfg.ScanStep {
		for x := region.Left; x+width <= region.Right; x += p.cfg.ScanStep {
			pos := canvas.Point{X: x, Y: y}
			if !ix.Overlaps(boxAt(pos, width, height), p.cfg.FinePadding) {
				return pos, true
			}
		}
	}
	return canvas.Point{}, false
}

// extendCanvas places right of the rightmost existing box. This strategy
// deliberately ignores the right canvas bound so the chain always
// terminates with a valid coordinate.
func (p *Placer) extendCanvas(ix *Index) canvas.Point {
	extent, ok := ix.Extent()
	if !ok {
		return canvas.Point{X: p.cfg.StartX, Y: p.cfg.StartY}
	}
	return canvas.Point{
		X: extent.Right + p.cfg.CoarsePadding,
		Y: math.Max(0, p.cfg.StartY+p.jitter()),
	}
}

// =============================================================================
// Helpers
// =============================================================================

// jitter returns a symmetric random offset in [-Jitter, Jitter].
func (p *Placer) jitter() float64 {
	if p.cfg.Jitter == 0 {
		return 0
	}
	return (p.rng.Float64()*2 - 1) * p.cfg.Jitter
}

// clamp pulls pos into canvas bounds for an element of the given size.
func (p *Placer) clamp(pos canvas.Point, width, height float64) canvas.Point {
	pos.X = math.Max(0, math.Min(pos.X, p.cfg.CanvasWidth-width))
	pos.Y = math.Max(0, math.Min(pos.Y, p.cfg.CanvasHeight-height))
	return pos
}

// inBounds reports whether an element of the given size fits inside the
// canvas at pos.
func (p *Placer) inBounds(pos canvas.Point, width, height float64) bool {
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X+width <= p.cfg.CanvasWidth && pos.Y+height <= p.cfg.CanvasHeight
}

// boxAt returns the bounding box of an element of the given size at pos.
func boxAt(pos canvas.Point, width, height float64) canvas.Box {
	return canvas.Box{Left: pos.X, Top: pos.Y, Right: pos.X + width, Bottom: pos.Y + height}
}

// regionOccupied reports whether any indexed box intersects the region.
func regionOccupied(ix *Index, region canvas.Box) bool {
	for _, b := range ix.Boxes() {
		if region.Intersects(b) {
			return true
		}
	}
	return false
}

// tokenize lowercases and splits text into alphanumeric tokens of three or
// more characters, returned as a set.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	var cur []rune
	flush := func() {
		if len(cur) >= 3 {
			tokens[string(cur)] = true
		}
		cur = cur[:0]
	}
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			cur = append(cur, r+('a'-'A'))
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}
