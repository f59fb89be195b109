package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/task"
	"github.com/pdxmph/todo-tui/internal/view"
)

var (
	listFilter string
	listStatus string
	listSort   string
	listJSON   bool
)

// listedTask is the --json shape of one row.
type listedTask struct {
	Position  int    `json:"position"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	DateAdded string `json:"dateAdded,omitempty"`
	Status    string `json:"status"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, optionally filtered and sorted.

--filter matches the task name (any case) or the due date.
--status is one of all, not-started, in-progress, done.
--sort is one of date-asc, date-desc, added-asc, added-desc, alpha-asc, alpha-desc.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := view.Query{Filter: listFilter}

		if listStatus != "" && listStatus != view.AllStatuses {
			st, err := task.ParseStatus(listStatus)
			if err != nil {
				return err
			}
			q.Status = string(st)
		}
		if listSort != "" {
			k, err := view.ParseSortKey(listSort)
			if err != nil {
				return err
			}
			q.Sort = k
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rows := view.Derive(a.store.Tasks(), q)
		out := cmd.OutOrStdout()

		if listJSON {
			listed := make([]listedTask, len(rows))
			for i, r := range rows {
				listed[i] = listedTask{
					Position:  r.Position,
					Text:      r.Task.Text(),
					Date:      r.Task.Date(),
					DateAdded: r.Task.DateAdded(),
					Status:    string(r.Task.Status()),
				}
			}
			data, err := json.MarshalIndent(listed, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding rows: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(rows) == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}
		fmt.Fprintln(out, renderRows(rows))
		return nil
	},
}

// renderRows draws rows as a bordered table.
func renderRows(rows []view.Row) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		added := r.Task.DateAdded()
		if added == "" {
			added = "-"
		}
		data[i] = []string{
			strconv.Itoa(r.Position),
			r.Task.Text(),
			r.Task.Date(),
			added,
			string(r.Task.Status()),
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Task", "Due", "Added", "Status").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only tasks whose name or due date contains this text")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only tasks with this status")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort key")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print rows as JSON")
	rootCmd.AddCommand(listCmd)
}
