// Package view derives the displayed task rows from the store contents and
// the current filter, status filter and sort key. It holds no state.
package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pdxmph/todo-tui/internal/task"
)

// AllStatuses is the status filter value that matches every task. The
// empty string means the same.
const AllStatuses = "all"

// SortKey selects the ordering of derived rows.
type SortKey string

const (
	SortNone      SortKey = ""
	SortDateAsc   SortKey = "date-asc"
	SortDateDesc  SortKey = "date-desc"
	SortAddedAsc  SortKey = "added-asc"
	SortAddedDesc SortKey = "added-desc"
	SortAlphaAsc  SortKey = "alpha-asc"
	SortAlphaDesc SortKey = "alpha-desc"
)

var sortLabels = map[SortKey]string{
	SortNone:      "Store order",
	SortDateAsc:   "Due date ↑",
	SortDateDesc:  "Due date ↓",
	SortAddedAsc:  "Date added ↑",
	SortAddedDesc: "Date added ↓",
	SortAlphaAsc:  "Name A-Z",
	SortAlphaDesc: "Name Z-A",
}

// SortKeys returns the sort keys in the order the UI cycles through them.
func SortKeys() []SortKey {
	return []SortKey{SortNone, SortDateAsc, SortDateDesc, SortAddedAsc, SortAddedDesc, SortAlphaAsc, SortAlphaDesc}
}

// Label is a human-readable name for the key.
func (k SortKey) Label() string {
	if l, ok := sortLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseSortKey validates a sort key given on the command line.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sortLabels[k]; !ok {
		return "", fmt.Errorf("unknown sort key %q", s)
	}
	return k, nil
}

// Query is the user's current view selection.
type Query struct {
	Filter string
	Status string
	Sort   SortKey
}

// Row is a task to display together with its position in the store.
// Delete and status actions must address the task by Position.
type Row struct {
	Task     task.Task
	Position int
}

// Derive filters and sorts tasks for display. It never modifies tasks and
// an empty result is a normal outcome.
func Derive(tasks []task.Task, q Query) []Row {
	filter := strings.ToLower(q.Filter)

	rows := make([]Row, 0, len(tasks))
	for i, t := range tasks {
		if !matchesText(t, filter) || !matchesStatus(t, q.Status) {
			continue
		}
		rows = append(rows, Row{Task: t, Position: i})
	}

	if cmp := comparator(q.Sort); cmp != nil {
		slices.SortStableFunc(rows, cmp)
	}
	return rows
}

func matchesText(t task.Task, filter string) bool {
	return strings.Contains(strings.ToLower(t.Text()), filter) ||
		strings.Contains(t.Date(), filter)
}

func matchesStatus(t task.Task, status string) bool {
	return status == "" || status == AllStatuses || string(t.Status()) == status
}

func comparator(k SortKey) func(a, b Row) int {
	switch k {
	case SortDateAsc:
		return func(a, b Row) int { return strings.Compare(a.Task.Date(), b.Task.Date()) }
	case SortDateDesc:
		return func(a, b Row) int { return strings.Compare(b.Task.Date(), a.Task.Date()) }
	case SortAddedAsc:
		return func(a, b Row) int { return strings.Compare(a.Task.DateAdded(), b.Task.DateAdded()) }
	case SortAddedDesc:
		return func(a, b Row) int { return strings.Compare(b.Task.DateAdded(), a.Task.DateAdded()) }
	case SortAlphaAsc:
		return func(a, b Row) int { return strings.Compare(a.Task.Text(), b.Task.Text()) }
	case SortAlphaDesc:
		return func(a, b Row) int { return strings.Compare(b.Task.Text(), a.Task.Text()) }
	}
	return nil
}
