package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks",
	Long: `Delete every task. This cannot be undone, so --yes is required.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return fmt.Errorf("refusing to delete all tasks without --yes")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		n := a.store.Len()
		if err := a.store.Clear(); err != nil {
			return fmt.Errorf("clearing tasks: %w", err)
		}

		a.logger.Info("cleared all tasks", "count", n)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d tasks\n", n)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deleting all tasks")
	rootCmd.AddCommand(clearCmd)
}
