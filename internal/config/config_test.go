package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.TasksKey != "tasks" {
		t.Errorf("expected tasks key %q, got %q", "tasks", cfg.Storage.TasksKey)
	}
	if cfg.Storage.ThemeKey != "theme" {
		t.Errorf("expected theme key %q, got %q", "theme", cfg.Storage.ThemeKey)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
	if filepath.Base(cfg.Database.Path) != "todo.db" {
		t.Errorf("unexpected database path %q", cfg.Database.Path)
	}
	if filepath.Dir(cfg.Database.Path) != Dir() {
		t.Errorf("expected database under %s, got %s", Dir(), cfg.Database.Path)
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[database]
path = "~/data/todo.db"

[log]
level = "debug"

[ui]
sort = "alpha-asc"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "data", "todo.db"); cfg.Database.Path != want {
		t.Errorf("expected expanded path %q, got %q", want, cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
	if cfg.UI.Sort != "alpha-asc" {
		t.Errorf("expected sort alpha-asc, got %q", cfg.UI.Sort)
	}
	// Sections not in the file keep their defaults
	if cfg.Storage.TasksKey != "tasks" {
		t.Errorf("expected default tasks key, got %q", cfg.Storage.TasksKey)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[database\npath = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Database.Path = "/tmp/elsewhere.db"
	cfg.Storage.TasksKey = "my-tasks"
	cfg.UI.Sort = "date-desc"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in, want string
	}{
		{"~/x.db", filepath.Join(home, "x.db")},
		{"/abs/x.db", "/abs/x.db"},
		{"rel/x.db", "rel/x.db"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
