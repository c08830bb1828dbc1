// Package logger builds the program's logrus logger. The terminal belongs
// to the game screen, so logs go to a file unless told otherwise.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Special values for Config.File.
const (
	Stderr = "-"
	Off    = "off"
)

// Config selects the level, format and destination of the log.
type Config struct {
	Level  string `yaml:"level"`  // logrus level name, default "info"
	Format string `yaml:"format"` // "text" or "json"
	File   string `yaml:"file"`   // path, "-" for stderr, "off" to discard; empty means the state dir
}

// Validate reports an unusable level or format.
func (c Config) Validate() error {
	if c.Level != "" {
		if _, err := logrus.ParseLevel(c.Level); err != nil {
			return err
		}
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
		return nil
	}
	return fmt.Errorf("unknown log format %q", c.Format)
}

// New builds a logger from cfg. LOG_LEVEL and LOG_FORMAT in the environment
// override the configured values. The returned closer releases the log file
// and is never nil.
func New(cfg Config) (*logrus.Logger, io.Closer, error) {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.Level = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		cfg.Format = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	level := logrus.InfoLevel
	if cfg.Level != "" {
		level, _ = logrus.ParseLevel(cfg.Level)
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	out, closer, err := open(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(out)
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func open(file string) (io.Writer, io.Closer, error) {
	switch file {
	case Stderr:
		return os.Stderr, nopCloser{}, nil
	case Off:
		return io.Discard, nopCloser{}, nil
	case "":
		dir, err := stateDir()
		if err != nil {
			return nil, nil, err
		}
		file = filepath.Join(dir, "gridwalk.log")
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f, nil
}

// stateDir returns the directory for log files.
// Uses the XDG base directory layout: $XDG_STATE_HOME/gridwalk,
// defaulting to ~/.local/state/gridwalk.
func stateDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "gridwalk"), nil
}
