package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/db"
	"github.com/pdxmph/todo-tui/internal/logging"
	"github.com/pdxmph/todo-tui/internal/task"
)

// kvStore is the durable store behind the task list and theme.
type kvStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Entries() ([]db.Entry, error)
	Close() error
}

// app is what a command needs once config, logging and the store are up.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	kv     kvStore
	store  *task.Store
	closer io.Closer
}

// loadConfig applies command-line overrides on top of the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.Path = logFile
	}
	return cfg, nil
}

// openApp loads config, starts logging, opens the store and loads tasks.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return nil, err
	}

	var kv kvStore
	if memoryOnly {
		kv = db.NewMemory()
	} else {
		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			closer.Close()
			return nil, err
		}
		kv = database
	}

	adapter := task.NewAdapter(kv, cfg.Storage.TasksKey, logger)
	tasks, err := adapter.Load()
	if err != nil {
		kv.Close()
		closer.Close()
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	logger.Debug("loaded tasks", "count", len(tasks), "db", cfg.Database.Path)

	return &app{
		cfg:    cfg,
		logger: logger,
		kv:     kv,
		store:  task.NewStore(adapter, tasks),
		closer: closer,
	}, nil
}

// Close releases the store and the log file.
func (a *app) Close() error {
	return errors.Join(a.kv.Close(), a.closer.Close())
}
