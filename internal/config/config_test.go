package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet(t *testing.T) {
	t.Setenv("RF_TEST_PRESENT", "  value  ")
	t.Setenv("RF_TEST_BLANK", "   ")

	if got := Get("RF_TEST_PRESENT", "fallback"); got != "value" {
		t.Errorf("Get(present) = %q, want value", got)
	}
	if got := Get("RF_TEST_BLANK", "fallback"); got != "fallback" {
		t.Errorf("Get(blank) = %q, want fallback", got)
	}
	if got := Get("RF_TEST_MISSING_VARIABLE", "fallback"); got != "fallback" {
		t.Errorf("Get(missing) = %q, want fallback", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("RF_DOTENV_NEW=from-file\nRF_DOTENV_SET=from-file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("RF_DOTENV_SET", "from-env")
	// Registered so t.Setenv restores the unset state after the test.
	t.Setenv("RF_DOTENV_NEW", "")
	os.Unsetenv("RF_DOTENV_NEW")

	LoadDotEnv(path)

	if got := os.Getenv("RF_DOTENV_NEW"); got != "from-file" {
		t.Errorf("RF_DOTENV_NEW = %q, want from-file", got)
	}
	if got := os.Getenv("RF_DOTENV_SET"); got != "from-env" {
		t.Errorf("RF_DOTENV_SET = %q, want existing value kept", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	// Must not panic or exit.
	LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
}
