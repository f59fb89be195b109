package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DateLayout is the calendar date format used for due and added dates.
const DateLayout = "2006-01-02"

// MaxTextLength is the longest task name accepted by Add, in characters.
const MaxTextLength = 100

// Status is the progress state of a task.
type Status string

const (
	NotStarted Status = "Not Started"
	InProgress Status = "In Progress"
	Done       Status = "Done"
)

// Statuses returns the allowed statuses in display order.
func Statuses() []Status {
	return []Status{NotStarted, InProgress, Done}
}

// Valid reports whether s is one of the three allowed statuses.
func (s Status) Valid() bool {
	switch s {
	case NotStarted, InProgress, Done:
		return true
	}
	return false
}

// Slug returns the command-line form of the status, e.g. "in-progress".
func (s Status) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

// ParseStatus accepts either the display value ("In Progress") or the slug
// ("in-progress"), case-insensitively.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses() {
		if norm == strings.ToLower(string(st)) || norm == st.Slug() {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Task is an immutable to-do record. Use WithStatus to derive a changed copy.
type Task struct {
	text      string
	date      string
	dateAdded string
	status    Status
}

// New builds a Task from already-validated (or previously stored) fields.
// It performs no validation; new tasks should come from Store.Add.
func New(text, date, dateAdded string, status Status) Task {
	return Task{text: text, date: date, dateAdded: dateAdded, status: status}
}

func (t Task) Text() string      { return t.text }
func (t Task) Date() string      { return t.date }
func (t Task) DateAdded() string { return t.dateAdded }
func (t Task) Status() Status    { return t.status }

// WithStatus returns a copy of t carrying the given status.
func (t Task) WithStatus(s Status) Task {
	t.status = s
	return t
}

// record is the stored JSON shape of a Task.
type record struct {
	Text      string `json:"text"`
	Date      string `json:"date"`
	DateAdded string `json:"dateAdded,omitempty"`
	Status    Status `json:"status"`
}

// MarshalJSON encodes the task using the stored field names.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Text:      t.text,
		Date:      t.date,
		DateAdded: t.dateAdded,
		Status:    t.status,
	})
}

// UnmarshalJSON decodes a stored record. Type checking of individual fields
// is the Adapter's job; this accepts whatever json can place into strings.
func (t *Task) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*t = New(r.Text, r.Date, r.DateAdded, r.Status)
	return nil
}
