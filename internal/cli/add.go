package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addDue string

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Long: `Add a task due on --due (YYYY-MM-DD). The due date must be today or
later. Multiple arguments are joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.store.Add(strings.Join(args, " "), addDue, now()); err != nil {
			return fmt.Errorf("adding task: %w", err)
		}

		pos := a.store.Len() - 1
		t, _ := a.store.At(pos)
		a.logger.Info("added task", "position", pos, "due", t.Date())
		fmt.Fprintf(cmd.OutOrStdout(), "Added [%d] %s (due %s)\n", pos, t.Text(), t.Date())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	rootCmd.AddCommand(addCmd)
}
