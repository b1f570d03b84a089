package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "http://radarr.local:7878/"
api_key = "secret"

[filter]
genre = "  Comedy  "
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}
	if resolved != path {
		t.Errorf("resolved path mismatch: got %q, want %q", resolved, path)
	}
	if cfg.Radarr.URL != "http://radarr.local:7878" {
		t.Errorf("trailing slash not trimmed: %q", cfg.Radarr.URL)
	}
	if cfg.Filter.Genre != "Comedy" {
		t.Errorf("genre not trimmed: %q", cfg.Filter.Genre)
	}
	if cfg.Radarr.TimeoutSeconds != defaultRadarrTimeout {
		t.Errorf("timeout default not applied: %d", cfg.Radarr.TimeoutSeconds)
	}
}

func TestLoadEnvFallbacks(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("RADARR_URL", "http://env.example:7878")
	t.Setenv("RADARR_API_KEY", "from-env")
	t.Setenv("KEEP_LIST_PATH", filepath.Join(t.TempDir(), "keep.json"))

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Radarr.URL != "http://env.example:7878" {
		t.Errorf("RADARR_URL fallback not applied: %q", cfg.Radarr.URL)
	}
	if cfg.Radarr.APIKey != "from-env" {
		t.Errorf("RADARR_API_KEY fallback not applied: %q", cfg.Radarr.APIKey)
	}
	if !filepath.IsAbs(cfg.KeepList.Path) {
		t.Errorf("keep list path not expanded: %q", cfg.KeepList.Path)
	}
}

func TestLoadConfigValueWinsOverEnv(t *testing.T) {
	path := writeConfig(t, `
[radarr]
api_key = "from-file"
`)
	t.Setenv("RADARR_API_KEY", "from-env")

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Radarr.APIKey != "from-file" {
		t.Errorf("config file value should win: got %q", cfg.Radarr.APIKey)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("RADARR_API_KEY", "")

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
	if !strings.Contains(err.Error(), "radarr.api_key") {
		t.Errorf("error should name the missing setting: %v", err)
	}
}

func TestLoadRejectsBadURL(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "not a url"
api_key = "secret"
`)

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	path := writeConfig(t, `
[radarr]
api_key = "secret"

[logging]
format = "xml"
`)

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if err := CreateSample(path); err == nil {
		t.Fatal("expected error when config already exists")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[radarr]") {
		t.Error("sample config should contain a [radarr] section")
	}
}
