package logging

import (
	"fmt"
	"sync"

	"digital.vasic.truthext/pkg/config"
)

// shared holds one Logger per distinct config.Logging.
var shared sync.Map

// New builds the logger selected by cfg. "console" with an
// Output path writes colored lines to stderr and JSON lines to
// the file.
func New(cfg config.Logging) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	switch cfg.Format {
	case "none", "":
		return NullLogger{}, nil
	case "json":
		return NewJSONLogger(LoggerConfig{
			OutputPath: cfg.Output,
			Level:      level,
		})
	case "console":
		console := NewConsoleLogger(nil, level)
		if cfg.Output == "" {
			return console, nil
		}
		file, err := NewJSONLogger(LoggerConfig{
			OutputPath: cfg.Output,
			Level:      level,
		})
		if err != nil {
			return nil, err
		}
		return NewMultiLogger(console, file), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// Shared returns the process-wide logger for cfg, building it
// with New on first use. Callers must not close it.
func Shared(cfg config.Logging) (Logger, error) {
	if l, ok := shared.Load(cfg); ok {
		return l.(Logger), nil
	}
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	actual, loaded := shared.LoadOrStore(cfg, l)
	if loaded {
		_ = l.Close()
	}
	return actual.(Logger), nil
}
