package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// DefaultKey is the storage key holding the task list.
const DefaultKey = "tasks"

// KV is the durable key/value namespace the adapter writes to.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Adapter saves and loads the whole task list under a single key.
type Adapter struct {
	kv     KV
	key    string
	logger *log.Logger
}

// NewAdapter creates an adapter for key. A nil logger discards output.
func NewAdapter(kv KV, key string, logger *log.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{kv: kv, key: key, logger: logger}
}

// Save writes the full ordered collection as a JSON array.
func (a *Adapter) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	if err := a.kv.Set(a.key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", a.key, err)
	}
	a.logger.Debug("saved tasks", "key", a.key, "count", len(tasks))
	return nil
}

// Load reads the stored collection. A missing key yields an empty list. A
// value that does not decode as a list is deleted and an empty list is
// returned. Records missing a string text, date or status are dropped.
// Only storage failures are returned as errors.
func (a *Adapter) Load() ([]Task, error) {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", a.key, err)
	}
	if !ok {
		return []Task{}, nil
	}

	tasks, dropped, err := decode(raw)
	if err != nil {
		var de *DecodeError
		if !errors.As(err, &de) {
			return nil, err
		}
		a.logger.Warn("discarding corrupt task list", "key", a.key, "err", de.Err)
		if err := a.kv.Delete(a.key); err != nil {
			return nil, fmt.Errorf("deleting %s: %w", a.key, err)
		}
		return []Task{}, nil
	}
	if dropped > 0 {
		a.logger.Debug("dropped malformed task records", "key", a.key, "dropped", dropped)
	}
	return tasks, nil
}

func decode(raw string) ([]Task, int, error) {
	var top any
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return nil, 0, &DecodeError{Err: err}
	}
	records, ok := top.([]any)
	if !ok {
		return nil, 0, &DecodeError{Err: fmt.Errorf("expected a JSON array, got %T", top)}
	}

	kept := filterRecords(records)
	tasks := make([]Task, 0, len(kept))
	for _, r := range kept {
		fields := r.(map[string]any)
		dateAdded, _ := fields["dateAdded"].(string)
		tasks = append(tasks, New(
			fields["text"].(string),
			fields["date"].(string),
			dateAdded,
			Status(fields["status"].(string)),
		))
	}
	return tasks, len(records) - len(kept), nil
}
