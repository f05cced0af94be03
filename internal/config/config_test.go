package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[log]
level = "debug"

[repl]
prompt = "lox> "
`)

	config, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Log.Level != "debug" {
		t.Errorf("Log level should be debug instead of %s", config.Log.Level)
	}
	if config.Log.Format != "text" {
		t.Errorf("Log format should keep its default instead of %s", config.Log.Format)
	}
	if config.REPL.Prompt != "lox> " {
		t.Errorf("Prompt should be 'lox> ' instead of %q", config.REPL.Prompt)
	}
	if config.REPL.History != ".glox_history" {
		t.Errorf("History should keep its default instead of %s", config.REPL.History)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[log\nlevel = ")

	if _, err := Load(path); err == nil {
		t.Error("Loading a malformed file should fail")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	config, path, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != "" && filepath.Dir(path) != root {
		// A glox.toml above the temp dir would be picked up, which is fine
		// as long as it is not ours.
		t.Logf("found unrelated config at %s", path)
	}
	if path == "" && *config != *Default() {
		t.Error("Default configuration expected when no file is found")
	}

	expected := writeConfig(t, root, `
[repl]
color = false
`)
	config, path, err = FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != expected {
		t.Errorf("Config path should be %s instead of %s", expected, path)
	}
	if config.REPL.Color {
		t.Error("Color should be disabled by the file")
	}
}

func TestLogger(t *testing.T) {
	config := Default()
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger, err := config.Logger()
	if err != nil {
		t.Fatal(err)
	}
	if logger.Level != logrus.DebugLevel {
		t.Errorf("Logger level should be debug instead of %s", logger.Level)
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Logger should format as json, got %T", logger.Formatter)
	}

	config.Log.Level = "loud"
	if _, err := config.Logger(); err == nil {
		t.Error("Unknown level should fail")
	}

	config.Log.Level = "info"
	config.Log.Format = "xml"
	if _, err := config.Logger(); err == nil {
		t.Error("Unknown format should fail")
	}
}
