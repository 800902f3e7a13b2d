package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/LightLine/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSpacingInches = 12
	cfg.Theme = "dark"
	cfg.RecentJobs = []string{"/tmp/a.lightline", "/tmp/b.lightline"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultSpacingInches != 12 {
		t.Errorf("expected DefaultSpacingInches=12, got %f", loaded.DefaultSpacingInches)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if len(loaded.RecentJobs) != 2 {
		t.Errorf("expected 2 recent jobs, got %d", len(loaded.RecentJobs))
	}
}

func TestSaveAndLoadAppConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := model.DefaultAppConfig()
	cfg.DefaultZoom = 19
	cfg.DefaultDrawingMode = model.DrawingFreehand
	cfg.DefaultPricing.SalePerFoot = 18

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "default_zoom: 19") {
		t.Errorf("expected YAML output, got:\n%s", data)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.DefaultZoom != 19 || loaded.DefaultDrawingMode != model.DrawingFreehand {
		t.Errorf("unexpected loaded config %+v", loaded)
	}
	if loaded.DefaultPricing.SalePerFoot != 18 {
		t.Errorf("expected SalePerFoot=18, got %f", loaded.DefaultPricing.SalePerFoot)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.DefaultZoom != model.DefaultAppConfig().DefaultZoom {
		t.Errorf("expected default zoom, got %d", cfg.DefaultZoom)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"light"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme=light, got %s", cfg.Theme)
	}
	if cfg.DefaultSpacingInches != 8 {
		t.Errorf("expected default spacing 8, got %f", cfg.DefaultSpacingInches)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should not be nil")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if filepath.Base(p) != "config.json" {
		t.Errorf("expected config.json, got %s", filepath.Base(p))
	}
	if filepath.Base(filepath.Dir(p)) != ".lightline" {
		t.Errorf("expected .lightline dir, got %s", filepath.Dir(p))
	}
}
