package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/task"
)

var statusCmd = &cobra.Command{
	Use:   "status <position> <status>",
	Short: "Change a task's status",
	Long: `Set the status of the task at <position>.

<status> is one of not-started, in-progress, done (the display names
"Not Started", "In Progress" and "Done" also work).`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}
		st, err := task.ParseStatus(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.store.SetStatus(pos, st); err != nil {
			return fmt.Errorf("changing status: %w", err)
		}

		t, _ := a.store.At(pos)
		a.logger.Info("changed status", "position", pos, "status", st)
		fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s is now %s\n", pos, t.Text(), st)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
