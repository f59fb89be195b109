package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/db"
	"github.com/pdxmph/todo-tui/internal/task"
)

var initFixtures bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the task database",
	Long: `Create the task database and, if missing, a default config file.

Use --fixtures to fill the new database with sample tasks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if !memoryOnly {
			if err := db.Initialize(cfg.Database.Path); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created database at %s\n", cfg.Database.Path)
		}

		if err := writeDefaultConfig(cfg); err != nil {
			return err
		}

		if !initFixtures {
			return nil
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := task.SeedFixtures(a.store, now()); err != nil {
			return fmt.Errorf("seeding fixtures: %w", err)
		}
		fmt.Fprintf(out, "Added %d sample tasks\n", a.store.Len())
		return nil
	},
}

// writeDefaultConfig saves cfg to the config path unless a file is already
// there.
func writeDefaultConfig(cfg *config.Config) error {
	path := configPath
	if path == "" {
		path = filepath.Join(config.Dir(), "config.toml")
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return cfg.SaveTo(path)
}

func init() {
	initCmd.Flags().BoolVar(&initFixtures, "fixtures", false, "Seed the database with sample tasks")
	rootCmd.AddCommand(initCmd)
}
