package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	good := Config{
		OutputDir: "out",
		UserAgent: "secreports/1.0 (someone@example.com)",
		Forms:     []string{"10-K"},
	}
	if err := ValidateConfig(good); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := good
	bad.UserAgent = "  "
	if err := ValidateConfig(bad); err == nil {
		t.Fatalf("expected missing user agent to be rejected")
	}

	bad = good
	bad.Forms = nil
	if err := ValidateConfig(bad); err == nil {
		t.Fatalf("expected empty form list to be rejected")
	}

	bad = good
	bad.OutputDir = ""
	if err := ValidateConfig(bad); err == nil {
		t.Fatalf("expected missing output dir to be rejected")
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
output: /data/filings
userAgent: "from-file/1.0 (file@example.com)"
forms: ["10-K"]
cache:
  dir: /data/cache
fetch:
  maxAttempts: 5
verbose: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	defaults := Config{OutputDir: "sec_filings", UserAgent: "default-ua", Forms: []string{"10-K", "10-Q"}, MaxAttempts: 3}

	// All flags at defaults: every file value applies.
	cfg := defaults
	ApplyFileConfig(&cfg, fc, defaults)
	if cfg.OutputDir != "/data/filings" || cfg.UserAgent != "from-file/1.0 (file@example.com)" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if len(cfg.Forms) != 1 || cfg.Forms[0] != "10-K" {
		t.Fatalf("forms not applied: %v", cfg.Forms)
	}
	if cfg.CacheDir != "/data/cache" || cfg.MaxAttempts != 5 || !cfg.Verbose {
		t.Fatalf("remaining file values not applied: %+v", cfg)
	}

	// Explicit flag values survive the overlay.
	cfg = defaults
	cfg.OutputDir = "/explicit"
	cfg.Forms = []string{"10-Q"}
	ApplyFileConfig(&cfg, fc, defaults)
	if cfg.OutputDir != "/explicit" {
		t.Fatalf("explicit flag overridden: %q", cfg.OutputDir)
	}
	if len(cfg.Forms) != 1 || cfg.Forms[0] != "10-Q" {
		t.Fatalf("explicit forms overridden: %v", cfg.Forms)
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected missing-file error")
	}
}
