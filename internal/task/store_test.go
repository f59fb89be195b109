package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testToday = time.Date(2025, 1, 5, 15, 30, 0, 0, time.UTC)

// recordingPersister keeps the last saved collection and can be told to fail.
type recordingPersister struct {
	saved [][]Task
	fail  error
}

func (p *recordingPersister) Save(tasks []Task) error {
	if p.fail != nil {
		return p.fail
	}
	clone := make([]Task, len(tasks))
	copy(clone, tasks)
	p.saved = append(p.saved, clone)
	return nil
}

func (p *recordingPersister) last() []Task {
	if len(p.saved) == 0 {
		return nil
	}
	return p.saved[len(p.saved)-1]
}

func newTestStore(t *testing.T, tasks ...Task) (*Store, *recordingPersister) {
	t.Helper()
	p := &recordingPersister{}
	return NewStore(p, tasks), p
}

func sampleTasks() []Task {
	return []Task{
		New("Buy milk", "2025-01-10", "2025-01-01", NotStarted),
		New("Pay rent", "2025-01-05", "2025-01-02", Done),
		New("Call mom", "2025-01-07", "2025-01-03", InProgress),
	}
}

func TestAdd(t *testing.T) {
	s, p := newTestStore(t)

	if err := s.Add("  Buy milk  ", "2025-01-10", testToday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
	got, _ := s.At(0)
	want := New("Buy milk", "2025-01-10", "2025-01-05", NotStarted)
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if len(p.saved) != 1 || len(p.last()) != 1 || p.last()[0] != want {
		t.Fatalf("expected the new collection to be saved, got %+v", p.saved)
	}
}

func TestAdd_SanitizesText(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Add(`<script>alert("x")</script>`, "2025-01-10", testToday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.At(0)
	want := "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"
	if got.Text() != want {
		t.Fatalf("expected %q, got %q", want, got.Text())
	}
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name string
		text string
		date string
		want error
	}{
		{"empty text", "", "2025-01-10", ErrEmptyText},
		{"whitespace text", "   \t ", "2025-01-10", ErrEmptyText},
		{"text too long", strings.Repeat("a", 101), "2025-01-10", ErrTextTooLong},
		{"escaping pushes past limit", strings.Repeat("&", 21), "2025-01-10", ErrTextTooLong},
		{"missing date", "Buy milk", "", ErrMissingDate},
		{"blank date", "Buy milk", "   ", ErrMissingDate},
		{"malformed date", "Buy milk", "10/01/2025", ErrInvalidDate},
		{"yesterday", "Buy milk", "2025-01-04", ErrPastDate},
		{"last year", "Buy milk", "2024-12-31", ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := newTestStore(t, sampleTasks()...)
			before := s.Tasks()

			err := s.Add(tt.text, tt.date, testToday)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if !equalTasks(s.Tasks(), before) {
				t.Fatal("collection changed after failed add")
			}
			if len(p.saved) != 0 {
				t.Fatal("failed add should not persist")
			}
		})
	}
}

func TestAdd_BoundaryValues(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Add(strings.Repeat("a", MaxTextLength), "2025-01-10", testToday); err != nil {
		t.Fatalf("100 characters should be accepted: %v", err)
	}
	if err := s.Add(strings.Repeat("é", MaxTextLength), "2025-01-10", testToday); err != nil {
		t.Fatalf("length counts characters, not bytes: %v", err)
	}
	if err := s.Add("Due today", "2025-01-05", testToday); err != nil {
		t.Fatalf("today's date should be accepted: %v", err)
	}
}

func TestRemove(t *testing.T) {
	s, p := newTestStore(t, sampleTasks()...)

	if err := s.Remove(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Task{sampleTasks()[0], sampleTasks()[2]}
	if !equalTasks(s.Tasks(), want) {
		t.Fatalf("expected %+v, got %+v", want, s.Tasks())
	}
	if !equalTasks(p.last(), want) {
		t.Fatalf("expected saved %+v, got %+v", want, p.last())
	}
}

func TestRemove_OutOfRange(t *testing.T) {
	for _, pos := range []int{-1, 3, 100} {
		s, p := newTestStore(t, sampleTasks()...)

		err := s.Remove(pos)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Remove(%d): expected ErrOutOfRange, got %v", pos, err)
		}
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Position != pos || ie.Len != 3 {
			t.Fatalf("Remove(%d): expected IndexError with details, got %v", pos, err)
		}
		if s.Len() != 3 || len(p.saved) != 0 {
			t.Fatalf("Remove(%d): store changed", pos)
		}
	}
}

func TestSetStatus(t *testing.T) {
	s, p := newTestStore(t, sampleTasks()...)

	if err := s.SetStatus(0, Done); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := sampleTasks()
	want[0] = New("Buy milk", "2025-01-10", "2025-01-01", Done)
	if !equalTasks(s.Tasks(), want) {
		t.Fatalf("expected %+v, got %+v", want, s.Tasks())
	}
	if !equalTasks(p.last(), want) {
		t.Fatal("expected the change to be saved")
	}
}

func TestSetStatus_Errors(t *testing.T) {
	s, p := newTestStore(t, sampleTasks()...)

	if err := s.SetStatus(5, Done); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := s.SetStatus(0, Status("Blocked")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if !equalTasks(s.Tasks(), sampleTasks()) || len(p.saved) != 0 {
		t.Fatal("store changed after failed status update")
	}
}

func TestSetStatus_DoesNotAffectSnapshots(t *testing.T) {
	s, _ := newTestStore(t, sampleTasks()...)
	snapshot := s.Tasks()

	if err := s.SetStatus(0, Done); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot[0].Status() != NotStarted {
		t.Fatalf("earlier snapshot was modified: %+v", snapshot[0])
	}
}

func TestClear(t *testing.T) {
	s, p := newTestStore(t, sampleTasks()...)

	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d tasks", s.Len())
	}
	if p.last() == nil || len(p.last()) != 0 {
		t.Fatalf("expected an empty collection to be saved, got %+v", p.saved)
	}
}

func TestMutations_RollBackOnSaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	s, p := newTestStore(t, sampleTasks()...)
	p.fail = boom

	ops := map[string]func() error{
		"add":    func() error { return s.Add("New", "2025-01-10", testToday) },
		"remove": func() error { return s.Remove(0) },
		"status": func() error { return s.SetStatus(0, Done) },
		"clear":  s.Clear,
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, boom) {
			t.Fatalf("%s: expected save error, got %v", name, err)
		}
		if !equalTasks(s.Tasks(), sampleTasks()) {
			t.Fatalf("%s: store changed after failed save", name)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := map[string]Status{
		"Not Started": NotStarted,
		"not-started": NotStarted,
		"IN PROGRESS": InProgress,
		"in-progress": InProgress,
		" done ":      Done,
	}
	for in, want := range tests {
		got, err := ParseStatus(in)
		if err != nil {
			t.Fatalf("ParseStatus(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseStatus("blocked"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSeedFixtures(t *testing.T) {
	s, _ := newTestStore(t)

	if err := SeedFixtures(s, testToday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != len(fixtures) {
		t.Fatalf("expected %d tasks, got %d", len(fixtures), s.Len())
	}
	for i, f := range fixtures {
		got, _ := s.At(i)
		if got.Status() != f.Status {
			t.Fatalf("fixture %d: expected status %q, got %q", i, f.Status, got.Status())
		}
		if got.DateAdded() != "2025-01-05" {
			t.Fatalf("fixture %d: expected dateAdded of today, got %q", i, got.DateAdded())
		}
	}
}

func equalTasks(a, b []Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
