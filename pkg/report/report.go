// Package report summarizes a canvas snapshot for the component deciding
// what to draw next.
//
// The report is purely descriptive: an occupancy-grid summary, the
// connections inferred from connector endpoint proximity, the best empty
// areas for new content, and pairs of aligned-but-unconnected shapes worth
// joining. It never mutates the canvas.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
)

// =============================================================================
// Report Model
// =============================================================================

// Report is the structured description of a canvas snapshot.
type Report struct {
	Flow          layout.Flow   `json:"flow" bson:"flow"`
	ElementCount  int           `json:"element_count" bson:"element_count"`
	Grid          Grid          `json:"grid" bson:"grid"`
	Connections   []Connection  `json:"connections,omitempty" bson:"connections,omitempty"`
	EmptyAreas    []canvas.Box  `json:"empty_areas,omitempty" bson:"empty_areas,omitempty"`
	Opportunities []Opportunity `json:"opportunities,omitempty" bson:"opportunities,omitempty"`
}

// Grid describes region occupancy over the canvas.
type Grid struct {
	Rows     int    `json:"rows" bson:"rows"`
	Cols     int    `json:"cols" bson:"cols"`
	Occupied []Cell `json:"occupied,omitempty" bson:"occupied,omitempty"`
}

// Cell is one occupied grid region with its element count.
type Cell struct {
	Row   int `json:"row" bson:"row"`
	Col   int `json:"col" bson:"col"`
	Count int `json:"count" bson:"count"`
}

// Connection is a pair of shapes joined by an existing connector, with
// snapshot-local element indices.
type Connection struct {
	ConnectorIndex int    `json:"connector_index" bson:"connector_index"`
	FromIndex      int    `json:"from_index" bson:"from_index"`
	ToIndex        int    `json:"to_index" bson:"to_index"`
	FromID         string `json:"from_id" bson:"from_id"`
	ToID           string `json:"to_id" bson:"to_id"`
}

// Opportunity is a pair of aligned, unconnected shapes at a connectable
// distance.
type Opportunity struct {
	FromIndex int     `json:"from_index" bson:"from_index"`
	ToIndex   int     `json:"to_index" bson:"to_index"`
	Axis      string  `json:"axis" bson:"axis"` // "horizontal" or "vertical"
	Distance  float64 `json:"distance" bson:"distance"`
}

// =============================================================================
// Reporter
// =============================================================================

// Reporter builds canvas reports. It holds only configuration and may be
// shared across concurrent calls.
type Reporter struct {
	cfg    layout.Config
	router layout.Router
}

// NewReporter creates a reporter with the given configuration.
func NewReporter(cfg layout.Config) Reporter {
	cfg.ApplyDefaults()
	return Reporter{cfg: cfg, router: layout.NewRouter(cfg)}
}

// Describe produces the full report for a snapshot.
func (r Reporter) Describe(elements []canvas.Element) Report {
	connections := r.inferConnections(elements)
	return Report{
		Flow:          layout.DetectPattern(elements).Flow,
		ElementCount:  len(elements),
		Grid:          r.grid(elements),
		Connections:   connections,
		EmptyAreas:    r.emptyAreas(elements),
		Opportunities: r.opportunities(elements, connections),
	}
}

// grid counts element centers per canvas region.
func (r Reporter) grid(elements []canvas.Element) Grid {
	regionW := r.cfg.CanvasWidth / float64(r.cfg.GridCols)
	regionH := r.cfg.CanvasHeight / float64(r.cfg.GridRows)

	counts := make(map[[2]int]int)
	for i := range elements {
		c := elements[i].Center()
		col := int(c.X / regionW)
		row := int(c.Y / regionH)
		if col < 0 || row < 0 || col >= r.cfg.GridCols || row >= r.cfg.GridRows {
			continue
		}
		counts[[2]int{row, col}]++
	}

	g := Grid{Rows: r.cfg.GridRows, Cols: r.cfg.GridCols}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if n := counts[[2]int{row, col}]; n > 0 {
				g.Occupied = append(g.Occupied, Cell{Row: row, Col: col, Count: n})
			}
		}
	}
	return g
}

// inferConnections maps each connector's endpoints to the nearest shape
// within the configured proximity. Connectors with a dangling end are
// skipped.
func (r Reporter) inferConnections(elements []canvas.Element) []Connection {
	var out []Connection
	for i := range elements {
		if !elements[i].IsConnector() {
			continue
		}
		start, end := elements[i].Endpoints()
		from, okFrom := r.router.NearestShape(elements, start)
		to, okTo := r.router.NearestShape(elements, end)
		if !okFrom || !okTo || from == to {
			continue
		}
		out = append(out, Connection{
			ConnectorIndex: i,
			FromIndex:      from,
			ToIndex:        to,
			FromID:         elements[from].ID,
			ToID:           elements[to].ID,
		})
	}
	return out
}

// emptyAreas returns the unoccupied grid regions in reading order. When
// every region holds content, a single area adjacent to the last occupied
// region is returned instead.
func (r Reporter) emptyAreas(elements []canvas.Element) []canvas.Box {
	regionW := r.cfg.CanvasWidth / float64(r.cfg.GridCols)
	regionH := r.cfg.CanvasHeight / float64(r.cfg.GridRows)
	ix := layout.NewIndex(elements)

	var empty []canvas.Box
	var lastOccupied canvas.Box
	for row := 0; row < r.cfg.GridRows; row++ {
		for col := 0; col < r.cfg.GridCols; col++ {
			region := canvas.Box{
				Left:   float64(col) * regionW,
				Top:    float64(row) * regionH,
				Right:  float64(col+1) * regionW,
				Bottom: float64(row+1) * regionH,
			}
			occupied := false
			for _, b := range ix.Boxes() {
				if region.Intersects(b) {
					occupied = true
					break
				}
			}
			if occupied {
				lastOccupied = region
			} else {
				empty = append(empty, region)
			}
		}
	}

	if len(empty) == 0 {
		// Fully occupied canvas: suggest extending past the last region.
		empty = append(empty, canvas.Box{
			Left:   lastOccupied.Right + r.cfg.CoarsePadding,
			Top:    lastOccupied.Top,
			Right:  lastOccupied.Right + r.cfg.CoarsePadding + regionW,
			Bottom: lastOccupied.Bottom,
		})
	}
	return empty
}

// opportunities finds aligned, unconnected shape pairs within a
// connectable distance, capped at MaxOpportunities.
func (r Reporter) opportunities(elements []canvas.Element, connections []Connection) []Opportunity {
	connected := make(map[[2]int]bool, len(connections))
	for _, c := range connections {
		connected[[2]int{c.FromIndex, c.ToIndex}] = true
		connected[[2]int{c.ToIndex, c.FromIndex}] = true
	}

	var out []Opportunity
	for i := 0; i < len(elements) && len(out) < r.cfg.MaxOpportunities; i++ {
		if elements[i].IsConnector() {
			continue
		}
		for j := i + 1; j < len(elements) && len(out) < r.cfg.MaxOpportunities; j++ {
			if elements[j].IsConnector() || connected[[2]int{i, j}] {
				continue
			}
			ci, cj := elements[i].Center(), elements[j].Center()
			dx, dy := math.Abs(cj.X-ci.X), math.Abs(cj.Y-ci.Y)

			switch {
			case dy < r.cfg.AlignTolerance && dx >= r.cfg.OpportunityMinDist && dx <= r.cfg.OpportunityMaxDist:
				out = append(out, Opportunity{FromIndex: i, ToIndex: j, Axis: "horizontal", Distance: dx})
			case dx < r.cfg.AlignTolerance && dy >= r.cfg.OpportunityMinDist && dy <= r.cfg.OpportunityMaxDist:
				out = append(out, Opportunity{FromIndex: i, ToIndex: j, Axis: "vertical", Distance: dy})
			}
		}
	}
	return out
}

// =============================================================================
// Text Rendering
// =============================================================================

// Text renders the report as compact prose for a text-generation consumer.
func (rep Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Canvas: %d elements, %s flow.\n", rep.ElementCount, rep.Flow)

	if len(rep.Grid.Occupied) == 0 {
		fmt.Fprintf(&b, "Occupancy: empty %dx%d grid.\n", rep.Grid.Rows, rep.Grid.Cols)
	} else {
		fmt.Fprintf(&b, "Occupancy (%dx%d grid):", rep.Grid.Rows, rep.Grid.Cols)
		for _, c := range rep.Grid.Occupied {
			fmt.Fprintf(&b, " r%dc%d=%d", c.Row, c.Col, c.Count)
		}
		b.WriteString("\n")
	}

	if len(rep.Connections) > 0 {
		b.WriteString("Connections:")
		for _, c := range rep.Connections {
			fmt.Fprintf(&b, " %d->%d", c.FromIndex, c.ToIndex)
		}
		b.WriteString("\n")
	}

	if len(rep.EmptyAreas) > 0 {
		a := rep.EmptyAreas[0]
		fmt.Fprintf(&b, "Best empty area: (%.0f,%.0f)-(%.0f,%.0f), %d total.\n",
			a.Left, a.Top, a.Right, a.Bottom, len(rep.EmptyAreas))
	}

	for _, o := range rep.Opportunities {
		fmt.Fprintf(&b, "Could connect elements %d and %d (%s, %.0fpx apart).\n",
			o.FromIndex, o.ToIndex, o.Axis, o.Distance)
	}

	return b.String()
}
