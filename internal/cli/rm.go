package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <position>",
	Short: "Delete a task",
	Long: `Delete the task at <position>, as shown by "list". Tasks after it move
up by one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		t, err := a.store.At(pos)
		if err != nil {
			return fmt.Errorf("deleting task: %w", err)
		}
		if err := a.store.Remove(pos); err != nil {
			return fmt.Errorf("deleting task: %w", err)
		}

		a.logger.Info("deleted task", "position", pos)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted [%d] %s\n", pos, t.Text())
		return nil
	},
}

// parsePosition reads a task position argument.
func parsePosition(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("position must be a number, got %q", s)
	}
	return pos, nil
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
