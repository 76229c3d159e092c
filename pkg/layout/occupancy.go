package layout

import (
	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

// =============================================================================
// Index - Occupancy Queries
// =============================================================================

// Index answers overlap and extent queries over a canvas snapshot.
// It is built once per placement call; it never mutates the snapshot.
type Index struct {
	boxes []canvas.Box
}

// NewIndex builds an occupancy index over the given elements.
func NewIndex(elements []canvas.Element) *Index {
	boxes := make([]canvas.Box, len(elements))
	for i := range elements {
		boxes[i] = elements[i].Bounds()
	}
	return &Index{boxes: boxes}
}

// Boxes returns the bounding boxes of all indexed elements, in element order.
func (ix *Index) Boxes() []canvas.Box {
	return ix.boxes
}

// Len returns the number of indexed elements.
func (ix *Index) Len() int {
	return len(ix.boxes)
}

// Overlaps reports whether candidate intersects any indexed box after
// inflating both by padding on all sides. Callers choose padding per
// strategy: fine search uses small values, coarse placement larger ones.
func (ix *Index) Overlaps(candidate canvas.Box, padding float64) bool {
	inflated := candidate.Inflate(padding)
	for _, b := range ix.boxes {
		if inflated.Intersects(b.Inflate(padding)) {
			return true
		}
	}
	return false
}

// Extent returns the bounding box of all indexed elements.
// ok is false for an empty index.
func (ix *Index) Extent() (extent canvas.Box, ok bool) {
	if len(ix.boxes) == 0 {
		return canvas.Box{}, false
	}
	extent = ix.boxes[0]
	for _, b := range ix.boxes[1:] {
		if b.Left < extent.Left {
			extent.Left = b.Left
		}
		if b.Top < extent.Top {
			extent.Top = b.Top
		}
		if b.Right > extent.Right {
			extent.Right = b.Right
		}
		if b.Bottom > extent.Bottom {
			extent.Bottom = b.Bottom
		}
	}
	return extent, true
}
