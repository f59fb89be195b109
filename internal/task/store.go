// Package task holds the task record, the ordered in-memory task store and
// the adapter that persists it to a key/value store.
package task

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Persister receives the full collection after every mutation.
type Persister interface {
	Save(tasks []Task) error
}

// Store is the ordered task collection. A task's position is its identity.
// Store is not safe for concurrent use; it belongs to the UI loop.
type Store struct {
	tasks []Task
	p     Persister
}

// NewStore creates a store seeded with tasks, typically from Adapter.Load.
func NewStore(p Persister, tasks []Task) *Store {
	return &Store{tasks: slices.Clone(tasks), p: p}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a snapshot of the collection in store order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// At returns the task at pos.
func (s *Store) At(pos int) (Task, error) {
	if err := s.checkPosition(pos); err != nil {
		return Task{}, err
	}
	return s.tasks[pos], nil
}

// Add validates raw user input and appends a new Not Started task.
// today is the caller's current date; only its calendar day is used.
func (s *Store) Add(rawText, rawDate string, today time.Time) error {
	// Stored text is always valid UTF-8
	text := Sanitize(strings.ToValidUTF8(strings.TrimSpace(rawText), "\uFFFD"))
	if text == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return ErrTextTooLong
	}

	date := strings.TrimSpace(rawDate)
	if date == "" {
		return ErrMissingDate
	}
	due, err := time.ParseInLocation(DateLayout, date, today.Location())
	if err != nil {
		return ErrInvalidDate
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if due.Before(midnight) {
		return ErrPastDate
	}

	t := New(text, due.Format(DateLayout), today.Format(DateLayout), NotStarted)
	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, t)
	return s.commit(next)
}

// Remove deletes the task at pos; later tasks shift down by one.
func (s *Store) Remove(pos int) error {
	if err := s.checkPosition(pos); err != nil {
		return err
	}
	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:pos]...)
	next = append(next, s.tasks[pos+1:]...)
	return s.commit(next)
}

// SetStatus replaces the task at pos with a copy carrying status.
func (s *Store) SetStatus(pos int, status Status) error {
	if err := s.checkPosition(pos); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	next := slices.Clone(s.tasks)
	next[pos] = next[pos].WithStatus(status)
	return s.commit(next)
}

// Clear removes every task. Confirmation is up to the caller.
func (s *Store) Clear() error {
	return s.commit([]Task{})
}

func (s *Store) checkPosition(pos int) error {
	if pos < 0 || pos >= len(s.tasks) {
		return &IndexError{Position: pos, Len: len(s.tasks)}
	}
	return nil
}

// commit persists next and only then makes it the current collection, so a
// failed save leaves the store untouched.
func (s *Store) commit(next []Task) error {
	if s.p != nil {
		if err := s.p.Save(next); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
	}
	s.tasks = next
	return nil
}
