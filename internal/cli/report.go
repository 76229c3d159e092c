package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cptiwari20/ai-learning-sub000/pkg/report"
)

// =============================================================================
// report Command
// =============================================================================

func (c *CLI) reportCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report [session]",
		Short: "Describe the canvas: flow, occupied regions, free space",
		Long: `Report summarizes the session canvas the way the placement engine sees
it: detected flow direction, occupied grid regions, inferred connections,
empty areas and suggested connection opportunities.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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

			rep := report.NewReporter(cfg).Describe(snap.Elements)

			if asJSON {
				data, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			printHeader(fmt.Sprintf("Session %s", id))
			printNewline()
			fmt.Println(rep.Text())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")

	return cmd
}
