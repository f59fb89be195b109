package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List raw store entries",
	Long:  `List every key in the store with its last update time and value size.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.kv.Entries()
		if err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			Headers("KEY", "UPDATED", "BYTES")
		for _, e := range entries {
			updated := "-"
			if e.UpdatedAt.Valid {
				updated = e.UpdatedAt.Time.Format("2006-01-02 15:04:05")
			}
			t.Row(e.Key, updated, strconv.Itoa(len(e.Value)))
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
