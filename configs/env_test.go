package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	if err := os.WriteFile(file, []byte("CONTEXT_PATH=/weather\nPORT=9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONTEXT_PATH", "")
	os.Unsetenv("CONTEXT_PATH")
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	env := LoadEnv(file)
	if env.ContextPath != "/weather" || env.Port != "9090" {
		t.Errorf("LoadEnv() = %+v", env)
	}
	if env.ApplicationName == "" || env.PropertiesPath != "configs/application.yml" {
		t.Errorf("defaults not applied: %+v", env)
	}
}

func TestLoadEnvPrefersProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	if err := os.WriteFile(file, []byte("APPLICATION_NAME=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APPLICATION_NAME", "from-process")

	if env := LoadEnv(file); env.ApplicationName != "from-process" {
		t.Errorf("ApplicationName = %q", env.ApplicationName)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	env := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	if env.MessagesPath == "" {
		t.Error("expected defaults when the file is missing")
	}
}
