package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/beachhead/internal/cli"
	"github.com/alexanderramin/beachhead/internal/db"
	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.beachhead/beachhead.db
	dbPath := os.Getenv("BEACHHEAD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".beachhead", "beachhead.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOllamaClient(llmCfg, observer)

	engine := discovery.NewEngine(client, llmCfg, discovery.LoadConfig(), nil)

	app := &cli.App{
		Engine: engine,
		Runs:   repository.NewSQLiteRunRepo(database),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
