package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bulletin/internal/app"
	"github.com/thenoetrevino/bulletin/internal/config"
	"github.com/thenoetrevino/bulletin/internal/database"
	"github.com/thenoetrevino/bulletin/internal/logging"
	"github.com/thenoetrevino/bulletin/internal/tui/components"
	"github.com/thenoetrevino/bulletin/internal/tui/core"
	"github.com/thenoetrevino/bulletin/internal/tui/navigation"
)

// NewRootCmd builds the bulletin command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bulletin",
		Short: "Bulletin - recent activity editor",
		Long: `Bulletin is a terminal console for the recent activity feed.
Run without a subcommand to open the activity editor.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (default ~/.bulletin/bulletin.db)")
	rootCmd.Flags().String("edit", "", "Open the editor for the activity with this ID")
	rootCmd.Flags().Bool("add", false, "Open the editor for a new activity")

	rootCmd.AddCommand(ListCmd(), SeedCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	closer, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Printf("Error closing log file: %v", err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Falling back to default config", "error", err)
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	application, db, err := openApp(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	model := core.New(ctx, application, cfg, startPath(cmd))
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// startPath picks the first route from the --edit and --add flags.
func startPath(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("edit"); id != "" {
		return navigation.EditRoute(id)
	}
	if add, _ := cmd.Flags().GetBool("add"); add {
		return navigation.AddRoute
	}
	return navigation.ListRoute
}

// openApp opens the database named by --db, the config or the default path
// and wires the services over it.
func openApp(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*app.App, *sql.DB, error) {
	db, err := database.InitDB(ctx, dbPath(cmd, cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return app.New(database.NewRepository(db), app.WithLogger(slog.Default())), db, nil
}

// dbPath is the --db flag, then the configured path. Empty means the default.
func dbPath(cmd *cobra.Command, cfg *config.Config) string {
	path, _ := cmd.Flags().GetString("db")
	if path == "" && cfg != nil {
		path = cfg.DatabasePath
	}
	return path
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
