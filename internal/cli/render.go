package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cptiwari20/ai-learning-sub000/pkg/cache"
	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
	"github.com/cptiwari20/ai-learning-sub000/pkg/errors"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
	"github.com/cptiwari20/ai-learning-sub000/pkg/render"
	"github.com/cptiwari20/ai-learning-sub000/pkg/report"
)

// artifactTTL bounds how long rendered artifacts stay cached.
const artifactTTL = 7 * 24 * time.Hour

// =============================================================================
// render Command
// =============================================================================

func (c *CLI) renderCommand() *cobra.Command {
	var (
		format  string
		output  string
		grid    bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render [session]",
		Short: "Export a session canvas as SVG, PNG, or DOT",
		Long: `Render exports the session canvas. SVG output draws the elements at
their placed coordinates; DOT and PNG output show the inferred element
graph via graphviz. Artifacts are cached by scene content hash.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if format != "svg" && format != "png" && format != "dot" {
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q (want svg, png, or dot)", format)
			}

			cfg, err := c.loadConfig()
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
			if err != nil {
				return err
			}

			sceneData, err := canvas.MarshalScene(canvas.Scene{Elements: snap.Elements})
			if err != nil {
				return err
			}

			artifacts, err := newCache(noCache)
			if err != nil {
				return err
			}
			defer artifacts.Close()

			key := cache.ArtifactKey(sceneData, format)
			data, cached, err := artifacts.Get(ctx, key)
			if err != nil || !cached {
				data, err = renderArtifact(cmd, cfg, snap.Elements, format, grid)
				if err != nil {
					return err
				}
				if err := artifacts.Set(ctx, key, data, artifactTTL); err != nil {
					c.Logger.Debug("artifact cache write failed", "err", err)
				}
			}

			if output == "" {
				output = fmt.Sprintf("%s.%s", id, format)
			}
			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", output)
			}

			printSuccess(fmt.Sprintf("Rendered session %s", id))
			printFile(output)
			if cached {
				printDetail("artifact served from cache")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <session>.<format>)")
	cmd.Flags().BoolVar(&grid, "grid", false, "overlay the placement region grid (svg only)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// renderArtifact produces the artifact bytes for one format.
func renderArtifact(cmd *cobra.Command, cfg layout.Config, elements []canvas.Element, format string, grid bool) ([]byte, error) {
	switch format {
	case "svg":
		opts := []render.SVGOption{render.WithFrame(cfg.CanvasWidth, cfg.CanvasHeight)}
		if grid {
			opts = append(opts, render.WithGrid(cfg))
		}
		return render.RenderSVG(elements, opts...), nil

	case "dot", "png":
		connections := report.NewReporter(cfg).Describe(elements).Connections
		dot := render.ToDOT(elements, connections)
		if format == "dot" {
			return []byte(dot), nil
		}

		spinner := newSpinnerWithContext(cmd.Context(), "Rendering PNG via graphviz...")
		spinner.Start()
		data, err := render.RenderDOTPNG(cmd.Context(), dot)
		spinner.Stop()
		return data, err

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
}
