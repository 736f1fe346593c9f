package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/beachhead/internal/cli/formatter"
	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
)

func newDiscoverCmd(app *App) *cobra.Command {
	in := &discoverIntake{
		Mode:       string(domain.ModeBusiness),
		Offering:   string(domain.OfferingProduct),
		Stage:      string(domain.StagePreRev),
		Constraint: string(domain.ConstraintBootstrap),
		Motion:     string(domain.MotionSelfServe),
	}
	var jsonOut, noSave bool

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run a segment discovery for a business",
		Long: `Runs the full discovery pipeline: builds a gene library for the business,
samples candidate segments, scores and stress tests them, and synthesizes a
beachhead recommendation. Without --description, an interactive intake form
collects the business context.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Description == "" {
				if !app.interactive() {
					return fmt.Errorf("--description is required when not running interactively")
				}
				if err := discoverForm(in).Run(); err != nil {
					return fmt.Errorf("collecting business context: %w", err)
				}
			}

			dctx, err := in.toContext()
			if err != nil {
				return err
			}

			result, err := runDiscover(cmd, app, dctx, jsonOut)
			if err != nil {
				return err
			}

			if jsonOut {
				payload, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(result))
			}

			if !noSave && app.Runs != nil {
				if err := app.Runs.Save(cmd.Context(), result); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: saving run: %v\n", err)
				} else if !jsonOut {
					fmt.Fprintln(cmd.OutOrStdout(),
						formatter.Dim(fmt.Sprintf("Saved as %s, view later with 'beachhead runs show %s'",
							result.RunID, shortID(result.RunID))))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "what the business does")
	cmd.Flags().StringVar(&in.Mode, "mode", in.Mode, "segmentation mode: b2b or b2c")
	cmd.Flags().StringVar(&in.Offering, "offering", in.Offering, "offering type: product, service, platform, marketplace")
	cmd.Flags().StringVar(&in.Stage, "stage", in.Stage, "company stage: idea, pre_revenue, early_revenue, scaling")
	cmd.Flags().StringVar(&in.Constraint, "constraint", in.Constraint, "go-to-market constraint: bootstrap, funded, side_build")
	cmd.Flags().StringVar(&in.Motion, "motion", in.Motion, "sales motion: self_serve, inside_sales, field_sales, channel")
	cmd.Flags().StringVar(&in.Hypothesis, "hypothesis", "", "existing segment hypothesis, if any")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full result as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	return cmd
}

// runDiscover executes the pipeline with the presentation the environment
// supports: an animated TUI on a terminal, plain progress lines otherwise.
func runDiscover(cmd *cobra.Command, app *App, dctx domain.DiscoveryContext, jsonOut bool) (*discovery.DiscoveryResult, error) {
	if app.interactive() && !jsonOut {
		return runDiscoveryTUI(cmd.Context(), app.Engine, dctx)
	}

	return app.Engine.RunDiscovery(cmd.Context(), dctx, func(label string, percent int) {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.ProgressLine(label, percent))
	})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
