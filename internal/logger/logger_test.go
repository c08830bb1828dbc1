package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/sirupsen/logrus"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT"} {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestStateDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)

	dir, err := stateDir()
	if err != nil {
		t.Fatalf("stateDir returned error: %v", err)
	}
	testutil.AssertEqual(t, "dir", dir, filepath.Join(tmp, "gridwalk"))
}

func TestStateDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")

	dir, err := stateDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "state", "gridwalk")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestNewWritesToFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "run.log")
	log, closer, err := New(Config{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.WithField("turn", 3).Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"msg":"hello"`, `"turn":3`, `"level":"debug"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %s", out, want)
		}
	}
}

func TestNewDefaultsToStateDir(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)

	log, closer, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	testutil.AssertEqual(t, "level", log.GetLevel(), logrus.InfoLevel)
	if _, err := os.Stat(filepath.Join(tmp, "gridwalk", "gridwalk.log")); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	log, closer, err := New(Config{Level: "debug", File: Off})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	testutil.AssertEqual(t, "level", log.GetLevel(), logrus.WarnLevel)
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T; want JSON", log.Formatter)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"json", Config{Level: "trace", Format: "JSON"}, ""},
		{"bad level", Config{Level: "loud"}, "not a valid logrus Level"},
		{"bad format", Config{Format: "xml"}, "unknown log format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tc.wantErr)
		})
	}
}
