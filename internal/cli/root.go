package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/repository"
)

// DiscoveryRunner runs one full segment-discovery pipeline.
type DiscoveryRunner interface {
	RunDiscovery(ctx context.Context, dctx domain.DiscoveryContext, onProgress discovery.ProgressFunc) (*discovery.DiscoveryResult, error)
}

// App holds the dependencies CLI commands are wired against.
type App struct {
	Engine DiscoveryRunner
	Runs   repository.RunRepo

	// IsInteractive reports whether stdin/stdout are attached to a
	// terminal. Forms and the progress TUI are only shown when true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "beachhead" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "beachhead",
		Short: "AI-assisted customer segment discovery",
		Long: `beachhead explores the space of possible customer segments for a
business, scores them across eight go-to-market criteria, stress tests the
leaders, and recommends a beachhead segment to attack first.`,
	}

	// Accept snake_case spellings for multi-word flags, matching the
	// enum values they take.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newDiscoverCmd(app),
		newRunsCmd(app),
	)

	return root
}
