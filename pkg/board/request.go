// Package board orchestrates placement requests against canvas snapshots.
//
// The engine is the single entry point for external callers: it receives
// the current element list and a request describing what to add, resolves
// placement and auto-connection through the layout package, and returns the
// finalized elements. It is stateless and synchronous; snapshot ownership
// and per-session ordering belong to the caller.
package board

import (
	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
)

// =============================================================================
// Request Types
// =============================================================================

// Kind discriminates placement request types.
type Kind string

// Request kinds.
const (
	// KindShape adds a single shape, text or freehand element.
	KindShape Kind = "shape"

	// KindConnect joins two existing elements by index.
	KindConnect Kind = "connect"

	// KindFlowchart adds a sequence of labeled steps joined by arrows.
	KindFlowchart Kind = "flowchart"

	// KindMindMap adds a central topic with branches on a radial ring.
	KindMindMap Kind = "mindmap"
)

// DefaultSeed is the jitter seed used when a request leaves Seed unset.
const DefaultSeed = uint64(42)

// Request describes one placement call. Exactly one request kind applies;
// kind-specific fields are ignored for other kinds. The struct supports
// JSON serialization for API requests.
type Request struct {
	Kind Kind `json:"kind"`

	// Shape fields (KindShape).
	Shape  canvas.Kind `json:"shape,omitempty"`
	Width  float64     `json:"width,omitempty"`
	Height float64     `json:"height,omitempty"`
	Text   string      `json:"text,omitempty"`

	// Points holds the stroke offsets for freehand shapes, at least two.
	Points []canvas.Point `json:"points,omitempty"`

	// Placement hints.
	Position   *canvas.Point    `json:"position,omitempty"`
	RelativeTo string           `json:"relative_to,omitempty"` // element ID or text match
	Direction  layout.Direction `json:"direction,omitempty"`
	Context    string           `json:"context,omitempty"`

	// Connect fields (KindConnect).
	FromIndex int    `json:"from_index,omitempty"`
	ToIndex   int    `json:"to_index,omitempty"`
	Arrow     bool   `json:"arrow,omitempty"`
	Label     string `json:"label,omitempty"`

	// Composite fields.
	Steps    []string `json:"steps,omitempty"`    // KindFlowchart
	Center   string   `json:"center,omitempty"`   // KindMindMap
	Branches []string `json:"branches,omitempty"` // KindMindMap

	// Style pass-through.
	StrokeColor     string `json:"stroke_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`

	// Seed fixes placement jitter; zero means DefaultSeed.
	Seed uint64 `json:"seed,omitempty"`
}

// Result is the outcome of a placement call.
//
// Soft failures (e.g. connect-by-index with bad indices) are reported as a
// normal result with OK false and a message for the decision-making
// component; they are never errors.
type Result struct {
	Elements []canvas.Element `json:"elements,omitempty"`
	Message  string           `json:"message,omitempty"`
	OK       bool             `json:"ok"`
}

// softFail builds a failed result carrying only a message.
func softFail(msg string) Result {
	return Result{OK: false, Message: msg}
}
