package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/theme"
	"github.com/pdxmph/todo-tui/internal/tui"
	"github.com/pdxmph/todo-tui/internal/view"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// now is the clock used for "today"; tests replace it.
var now = time.Now

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	configPath string
	dbPath     string
	logLevel   string
	logFile    string
	memoryOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "todo-tui",
	Short: "A terminal task list",
	Long: `todo-tui keeps a list of tasks with due dates and a status.

Run without a subcommand to open the interactive list. The subcommands
work on the same store for scripting. Task positions shown by "list" are
what "rm" and "status" expect.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		mode, err := theme.Load(a.kv, a.cfg.Storage.ThemeKey, theme.Detect)
		if err != nil {
			return err
		}

		sortKey, err := view.ParseSortKey(a.cfg.UI.Sort)
		if err != nil {
			a.logger.Warn("ignoring configured sort", "sort", a.cfg.UI.Sort, "err", err)
			sortKey = view.SortNone
		}

		model := tui.New(tui.Options{
			Store:    a.store,
			KV:       a.kv,
			ThemeKey: a.cfg.Storage.ThemeKey,
			Mode:     mode,
			Sort:     sortKey,
			Logger:   a.logger,
			Now:      now,
		})

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todo-tui %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default ~/.config/todo-tui/config.toml)")
	flags.StringVar(&dbPath, "db", "", "Database file, overrides the config")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "Log file, overrides the config; empty logs to stderr")
	flags.BoolVar(&memoryOnly, "memory", false, "Use a throwaway in-memory store")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
