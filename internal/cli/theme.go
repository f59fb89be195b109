package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the theme",
	Long:      `Without an argument, print the current theme. With one, store it.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		key := a.cfg.Storage.ThemeKey
		current, err := theme.Load(a.kv, key, theme.Detect)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		}

		var next theme.Mode
		switch args[0] {
		case "toggle":
			next = current.Toggle()
		case string(theme.Dark), string(theme.Light):
			next = theme.Mode(args[0])
		default:
			return fmt.Errorf("unknown theme %q (want dark, light or toggle)", args[0])
		}

		if err := theme.Save(a.kv, key, next); err != nil {
			return err
		}
		a.logger.Info("theme changed", "mode", next)
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
