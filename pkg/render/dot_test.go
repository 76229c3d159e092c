package render

import (
	"strings"
	"testing"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/report"
)

func TestToDOT(t *testing.T) {
	elements := []canvas.Element{
		{ID: "a", Kind: canvas.KindRectangle, Text: "Start"},
		{ID: "b", Kind: canvas.KindEllipse},
		{ID: "c", Kind: canvas.KindArrow, Points: []canvas.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}},
	}
	connections := []report.Connection{
		{ConnectorIndex: 2, FromIndex: 0, ToIndex: 1, FromID: "a", ToID: "b"},
	}

	dot := ToDOT(elements, connections)

	if !strings.HasPrefix(dot, "digraph canvas {") {
		t.Errorf("DOT does not open a digraph:\n%s", dot)
	}
	if !strings.Contains(dot, `"a" [label="Start"]`) {
		t.Errorf("node a missing or unlabeled:\n%s", dot)
	}
	// Unlabeled nodes fall back to kind and index.
	if !strings.Contains(dot, `label="ellipse 1"`) {
		t.Errorf("fallback label missing:\n%s", dot)
	}
	if !strings.Contains(dot, "shape=ellipse") {
		t.Errorf("ellipse shape attribute missing:\n%s", dot)
	}
	if !strings.Contains(dot, `"a" -> "b";`) {
		t.Errorf("edge missing:\n%s", dot)
	}
	// Connectors are edges, never nodes.
	if strings.Contains(dot, `"c" [`) {
		t.Errorf("connector rendered as node:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, nil)
	if !strings.Contains(dot, "digraph canvas {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty DOT malformed:\n%s", dot)
	}
}
