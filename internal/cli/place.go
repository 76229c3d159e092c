package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cptiwari20/ai-learning-sub000/pkg/board"
	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
	"github.com/cptiwari20/ai-learning-sub000/pkg/session"
)

// =============================================================================
// place Command
// =============================================================================

func (c *CLI) placeCommand() *cobra.Command {
	var (
		shape      string
		text       string
		width      float64
		height     float64
		posX       float64
		posY       float64
		relativeTo string
		direction  string
		contextStr string
		pointsStr  string
		stroke     string
		fill       string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "place [session]",
		Short: "Add a shape or text element to a session canvas",
		Long: `Place adds one element to the session canvas. The engine picks a
non-overlapping position automatically; pass --x/--y to force an exact
position, or --relative-to/--direction to anchor next to an existing element.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(pointsStr)
			if err != nil {
				return err
			}
			req := board.Request{
				Kind:            board.KindShape,
				Shape:           canvas.Kind(shape),
				Width:           width,
				Height:          height,
				Text:            text,
				Points:          points,
				RelativeTo:      relativeTo,
				Direction:       layout.Direction(direction),
				Context:         contextStr,
				StrokeColor:     stroke,
				BackgroundColor: fill,
				Seed:            seed,
			}
			if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
				req.Position = &canvas.Point{X: posX, Y: posY}
			}
			return c.runPlace(cmd.Context(), args, req)
		},
	}

	cmd.Flags().StringVarP(&shape, "shape", "s", "rectangle", "element kind: rectangle, ellipse, diamond, text, freehand")
	cmd.Flags().StringVarP(&text, "text", "t", "", "label or text content")
	cmd.Flags().Float64Var(&width, "width", 0, "element width (default: engine picks)")
	cmd.Flags().Float64Var(&height, "height", 0, "element height (default: engine picks)")
	cmd.Flags().Float64Var(&posX, "x", 0, "explicit x position")
	cmd.Flags().Float64Var(&posY, "y", 0, "explicit y position")
	cmd.Flags().StringVar(&relativeTo, "relative-to", "", "anchor element (ID or label substring)")
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "anchor direction: right, below, left, above, diagonal")
	cmd.Flags().StringVar(&contextStr, "context", "", "free text used to place near related elements")
	cmd.Flags().StringVar(&pointsStr, "points", "", `freehand stroke offsets, e.g. "0,0 40,25 80,10"`)
	cmd.Flags().StringVar(&stroke, "stroke", "", "stroke color")
	cmd.Flags().StringVar(&fill, "fill", "", "background color")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "jitter seed (0 uses the default)")

	return cmd
}

// =============================================================================
// connect Command
// =============================================================================

func (c *CLI) connectCommand() *cobra.Command {
	var (
		fromIdx int
		toIdx   int
		arrow   bool
		label   string
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "connect [session]",
		Short: "Connect two existing elements by index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := board.Request{
				Kind:      board.KindConnect,
				FromIndex: fromIdx,
				ToIndex:   toIdx,
				Arrow:     arrow,
				Label:     label,
				Seed:      seed,
			}
			return c.runPlace(cmd.Context(), args, req)
		},
	}

	cmd.Flags().IntVar(&fromIdx, "from", 0, "index of the source element")
	cmd.Flags().IntVar(&toIdx, "to", 0, "index of the target element")
	cmd.Flags().BoolVar(&arrow, "arrow", true, "draw an arrow instead of a plain line")
	cmd.Flags().StringVarP(&label, "label", "l", "", "connector label")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "jitter seed (0 uses the default)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// =============================================================================
// flowchart / mindmap Commands
// =============================================================================

func (c *CLI) flowchartCommand() *cobra.Command {
	var (
		sessionID string
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "flowchart step1 step2 [step3 ...]",
		Short: "Add a sequence of labeled steps joined by arrows",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := board.Request{
				Kind:  board.KindFlowchart,
				Steps: args,
				Seed:  seed,
			}
			var target []string
			if sessionID != "" {
				target = []string{sessionID}
			}
			return c.runPlace(cmd.Context(), target, req)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID (default: interactive picker)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "jitter seed (0 uses the default)")

	return cmd
}

func (c *CLI) mindmapCommand() *cobra.Command {
	var (
		sessionID string
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "mindmap center branch1 [branch2 ...]",
		Short: "Add a central topic with branches on a radial ring",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := board.Request{
				Kind:     board.KindMindMap,
				Center:   args[0],
				Branches: args[1:],
				Seed:     seed,
			}
			var target []string
			if sessionID != "" {
				target = []string{sessionID}
			}
			return c.runPlace(cmd.Context(), target, req)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID (default: interactive picker)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "jitter seed (0 uses the default)")

	return cmd
}

// =============================================================================
// Shared Placement Flow
// =============================================================================

// runPlace loads the session, applies one request and persists the result.
func (c *CLI) runPlace(ctx context.Context, args []string, req board.Request) error {
	engine, err := c.newEngine()
	if err != nil {
		return err
	}

	store, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := resolveSessionArg(ctx, store, args)
	if err != nil {
		return err
	}

	snap, err := store.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		snap = session.NewSnapshot(id)
	} else if err != nil {
		return err
	}

	result, err := engine.Place(snap.Elements, req)
	if err != nil {
		return err
	}

	if !result.OK {
		printWarning(result.Message)
		return nil
	}

	snap = snap.Append(result.Elements...)
	if err := store.Set(ctx, snap); err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Added %d element(s) to session %s", len(result.Elements), id))
	for _, el := range result.Elements {
		b := el.Bounds()
		label := string(el.Kind)
		if el.Text != "" {
			label += " " + styleBold.Render(el.Text)
		}
		printDetail(fmt.Sprintf("%s at (%.0f, %.0f) %gx%g", label, el.X, el.Y, b.Width(), b.Height()))
	}
	printNewline()
	printNextStep(fmt.Sprintf("%s report %s", appName, id))
	return nil
}

// resolveSessionArg returns the session ID from args, falling back to the
// interactive picker when none was given.
func resolveSessionArg(ctx context.Context, store session.Store, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return pickSession(ctx, store)
}

// parsePoints parses a space-separated list of "x,y" offsets for freehand
// strokes. An empty string yields no points.
func parsePoints(s string) ([]canvas.Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	points := make([]canvas.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,y", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", f, err)
		}
		points = append(points, canvas.Point{X: x, Y: y})
	}
	return points, nil
}
