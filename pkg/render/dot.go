package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/report"
)

// ToDOT converts the inferred connection graph of a snapshot to Graphviz
// DOT format. Shapes become nodes labeled by their text (falling back to
// kind and index); inferred connections become edges. The result can be
// rendered with [RenderDOTSVG] or [RenderDOTPNG].
func ToDOT(elements []canvas.Element, connections []report.Connection) string {
	var buf bytes.Buffer
	buf.WriteString("digraph canvas {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i := range elements {
		if elements[i].IsConnector() {
			continue
		}
		label := elements[i].Text
		if label == "" {
			label = fmt.Sprintf("%s %d", elements[i].Kind, i)
		}
		attrs := fmt.Sprintf("label=%q", label)
		if elements[i].Kind == canvas.KindEllipse {
			attrs += ", shape=ellipse"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", elements[i].ID, attrs)
	}

	buf.WriteString("\n")
	for _, c := range connections {
		fmt.Fprintf(&buf, "  %q -> %q;\n", c.FromID, c.ToID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", strings.ToLower(string(format)), err)
	}
	return buf.Bytes(), nil
}
