package report

import (
	"strings"
	"testing"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
)

func rect(x, y, w, h float64) canvas.Element {
	return canvas.Element{Kind: canvas.KindRectangle, X: x, Y: y, Width: w, Height: h}
}

func arrow(x, y, dx, dy float64) canvas.Element {
	return canvas.Element{
		Kind:   canvas.KindArrow,
		X:      x,
		Y:      y,
		Points: []canvas.Point{{X: 0, Y: 0}, {X: dx, Y: dy}},
	}
}

func newTestReporter() Reporter {
	return NewReporter(layout.DefaultConfig())
}

func TestDescribeEmptyCanvas(t *testing.T) {
	rep := newTestReporter().Describe(nil)

	if rep.ElementCount != 0 {
		t.Errorf("ElementCount = %d, want 0", rep.ElementCount)
	}
	if rep.Flow != layout.FlowHorizontal {
		t.Errorf("Flow = %v, want horizontal default", rep.Flow)
	}
	if len(rep.Grid.Occupied) != 0 {
		t.Errorf("Occupied = %v, want none", rep.Grid.Occupied)
	}
	// Every region of the grid is free.
	if len(rep.EmptyAreas) != rep.Grid.Rows*rep.Grid.Cols {
		t.Errorf("EmptyAreas = %d, want %d", len(rep.EmptyAreas), rep.Grid.Rows*rep.Grid.Cols)
	}
}

func TestDescribeGridOccupancy(t *testing.T) {
	// Region size is 350x250 at the default 1400x1000 canvas and 4x4 grid.
	elements := []canvas.Element{
		rect(100, 100, 100, 100), // center (150, 150) -> r0c0
		rect(120, 80, 100, 100),  // also r0c0
		rect(400, 300, 100, 100), // center (450, 350) -> r1c1
	}

	rep := newTestReporter().Describe(elements)

	want := []Cell{{Row: 0, Col: 0, Count: 2}, {Row: 1, Col: 1, Count: 1}}
	if len(rep.Grid.Occupied) != len(want) {
		t.Fatalf("Occupied = %v, want %v", rep.Grid.Occupied, want)
	}
	for i, cell := range want {
		if rep.Grid.Occupied[i] != cell {
			t.Errorf("Occupied[%d] = %+v, want %+v", i, rep.Grid.Occupied[i], cell)
		}
	}
}

func TestDescribeInfersConnections(t *testing.T) {
	elements := []canvas.Element{
		rect(0, 0, 100, 100),
		rect(300, 0, 100, 100),
		arrow(100, 50, 200, 0), // from edge of 0 to edge of 1
	}

	rep := newTestReporter().Describe(elements)

	if len(rep.Connections) != 1 {
		t.Fatalf("Connections = %v, want one", rep.Connections)
	}
	conn := rep.Connections[0]
	if conn.ConnectorIndex != 2 || conn.FromIndex != 0 || conn.ToIndex != 1 {
		t.Errorf("Connection = %+v, want connector 2 joining 0 -> 1", conn)
	}
}

func TestDescribeSkipsDanglingConnectors(t *testing.T) {
	elements := []canvas.Element{
		rect(0, 0, 100, 100),
		arrow(100, 50, 200, 0), // end lands in empty space
	}

	rep := newTestReporter().Describe(elements)
	if len(rep.Connections) != 0 {
		t.Errorf("Connections = %v, want none for a dangling arrow", rep.Connections)
	}
}

func TestDescribeOpportunities(t *testing.T) {
	// Two horizontally aligned shapes 300px apart, unconnected.
	elements := []canvas.Element{
		rect(0, 100, 100, 100),
		rect(300, 100, 100, 100),
	}

	rep := newTestReporter().Describe(elements)

	if len(rep.Opportunities) != 1 {
		t.Fatalf("Opportunities = %v, want one", rep.Opportunities)
	}
	opp := rep.Opportunities[0]
	if opp.FromIndex != 0 || opp.ToIndex != 1 {
		t.Errorf("pair = %d -> %d, want 0 -> 1", opp.FromIndex, opp.ToIndex)
	}
	if opp.Axis != "horizontal" {
		t.Errorf("Axis = %q, want horizontal", opp.Axis)
	}
	if opp.Distance != 300 {
		t.Errorf("Distance = %g, want 300 between centers", opp.Distance)
	}
}

func TestDescribeNoOpportunityWhenConnected(t *testing.T) {
	elements := []canvas.Element{
		rect(0, 100, 100, 100),
		rect(300, 100, 100, 100),
		arrow(100, 150, 200, 0),
	}

	rep := newTestReporter().Describe(elements)
	if len(rep.Opportunities) != 0 {
		t.Errorf("Opportunities = %v, want none for an already connected pair", rep.Opportunities)
	}
}

func TestDescribeNoOpportunityWhenMisaligned(t *testing.T) {
	elements := []canvas.Element{
		rect(0, 0, 100, 100),
		rect(300, 400, 100, 100),
	}

	rep := newTestReporter().Describe(elements)
	if len(rep.Opportunities) != 0 {
		t.Errorf("Opportunities = %v, want none for misaligned shapes", rep.Opportunities)
	}
}

func TestReportText(t *testing.T) {
	elements := []canvas.Element{
		rect(0, 100, 100, 100),
		rect(300, 100, 100, 100),
		arrow(100, 150, 200, 0),
	}

	text := newTestReporter().Describe(elements).Text()

	for _, frag := range []string{"3 elements", "horizontal flow", "Connections: 0->1", "Best empty area"} {
		if !strings.Contains(text, frag) {
			t.Errorf("Text() missing %q:\n%s", frag, text)
		}
	}
}

func TestReportTextEmpty(t *testing.T) {
	text := newTestReporter().Describe(nil).Text()
	if !strings.Contains(text, "0 elements") || !strings.Contains(text, "empty 4x4 grid") {
		t.Errorf("Text() for empty canvas = %q", text)
	}
}
