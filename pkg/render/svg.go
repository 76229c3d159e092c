// Package render produces visual exports of canvas snapshots.
//
// Two export paths exist: a direct SVG rendering of the canvas itself
// (shapes, labels, connectors), and a node-link view of the inferred
// connection graph rendered through Graphviz (see dot.go). Both are pure
// functions of the snapshot.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
)

// Margin added around the content extent of an exported SVG.
const svgMargin = 40.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width  float64
	height float64
	grid   bool
	cfg    layout.Config
}

// WithFrame fixes the output frame size instead of fitting the content.
func WithFrame(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithGrid overlays the occupancy grid used for coarse placement.
func WithGrid(cfg layout.Config) SVGOption {
	return func(r *svgRenderer) { r.grid, r.cfg = true, cfg }
}

// RenderSVG renders a snapshot as a standalone SVG document.
func RenderSVG(elements []canvas.Element, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	width, height := r.width, r.height
	if width == 0 || height == 0 {
		extent, ok := layout.NewIndex(elements).Extent()
		if !ok {
			extent = canvas.Box{Right: 400, Bottom: 300}
		}
		width = extent.Right + svgMargin
		height = extent.Bottom + svgMargin
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	if r.grid {
		renderGrid(&buf, r.cfg)
	}

	for i := range elements {
		renderElement(&buf, &elements[i])
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, cfg layout.Config) {
	cfg.ApplyDefaults()
	regionW := cfg.CanvasWidth / float64(cfg.GridCols)
	regionH := cfg.CanvasHeight / float64(cfg.GridRows)
	for col := 1; col < cfg.GridCols; col++ {
		x := float64(col) * regionW
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="#eeeeee"/>`+"\n", x, x, cfg.CanvasHeight)
	}
	for row := 1; row < cfg.GridRows; row++ {
		y := float64(row) * regionH
		fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#eeeeee"/>`+"\n", y, cfg.CanvasWidth, y)
	}
}

func renderElement(buf *bytes.Buffer, e *canvas.Element) {
	stroke := e.StrokeColor
	if stroke == "" {
		stroke = canvas.DefaultStrokeColor
	}
	fill := e.BackgroundColor
	if fill == "" || fill == "transparent" {
		fill = "none"
	}

	switch e.Kind {
	case canvas.KindRectangle:
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			e.X, e.Y, e.Width, e.Height, fill, stroke, e.StrokeWidth)

	case canvas.KindEllipse:
		c := e.Center()
		fmt.Fprintf(buf, `  <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			c.X, c.Y, e.Width/2, e.Height/2, fill, stroke, e.StrokeWidth)

	case canvas.KindDiamond:
		c := e.Center()
		fmt.Fprintf(buf, `  <polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			c.X, e.Y, e.X+e.Width, c.Y, c.X, e.Y+e.Height, e.X, c.Y, fill, stroke, e.StrokeWidth)

	case canvas.KindLine, canvas.KindArrow, canvas.KindFreehand:
		renderPath(buf, e, stroke)

	case canvas.KindText:
		// No shape outline for bare text.
	}

	if e.Text != "" && !e.Kind.IsConnector() {
		renderLabel(buf, e, stroke)
	}
}

func renderPath(buf *bytes.Buffer, e *canvas.Element, stroke string) {
	if len(e.Points) < 2 {
		return
	}
	var d strings.Builder
	for i, p := range e.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%.1f %.1f ", cmd, e.X+p.X, e.Y+p.Y)
	}
	marker := ""
	if e.Kind == canvas.KindArrow {
		marker = ` marker-end="url(#arrowhead)"`
		ensureArrowheadDef(buf)
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		strings.TrimSpace(d.String()), stroke, e.StrokeWidth, marker)
}

func renderLabel(buf *bytes.Buffer, e *canvas.Element, color string) {
	c := e.Center()
	lines := strings.Split(e.Text, "\n")
	startY := c.Y - float64(len(lines)-1)*canvas.TextLineHeight/2
	for i, line := range lines {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.0f" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			c.X, startY+float64(i)*canvas.TextLineHeight, e.FontSize, color, html.EscapeString(line))
	}
}

// ensureArrowheadDef writes the arrowhead marker definition once per
// document.
func ensureArrowheadDef(buf *bytes.Buffer) {
	const def = `  <defs><marker id="arrowhead" markerWidth="10" markerHeight="8" refX="9" refY="4" orient="auto"><polygon points="0 0, 10 4, 0 8"/></marker></defs>` + "\n"
	if !bytes.Contains(buf.Bytes(), []byte(`id="arrowhead"`)) {
		buf.WriteString(def)
	}
}
