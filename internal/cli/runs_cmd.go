package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/beachhead/internal/cli/formatter"
)

func newRunsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse saved discovery runs",
	}
	cmd.AddCommand(
		newRunsListCmd(app),
		newRunsShowCmd(app),
		newRunsDeleteCmd(app),
	)
	return cmd
}

func newRunsListCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Runs.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(summaries))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list (0 for all)")
	return cmd
}

func newRunsShowCmd(app *App) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a saved run's full report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRunID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Runs.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOut {
				payload, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(result))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full result as JSON")
	return cmd
}

func newRunsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRunID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Runs.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Deleted "+id))
			return nil
		},
	}
}

// resolveRunID accepts a full run ID or a unique prefix of one.
func resolveRunID(ctx context.Context, app *App, arg string) (string, error) {
	summaries, err := app.Runs.List(ctx, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range summaries {
		if s.ID == arg {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, arg) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no run matches %q", arg)
	default:
		return "", fmt.Errorf("%q matches %d runs, use more characters", arg, len(matches))
	}
}
