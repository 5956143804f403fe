package sort_analyzer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	test "testing"
	"time"
)

func TestDecodeToolConfig(t *test.T) {
	config, err := DecodeToolConfig(`
algorithms = ["bubble", "bubble-optimized"]
size_limit = 5000
export_path = "out"
items_per_line = 8
`)
	if err != nil {
		t.Fatalf("DecodeToolConfig returned error: %v", err)
	}

	algs, err := config.AlgorithmSet()
	if err != nil || len(algs) != 2 || algs[0] != BubbleClassic || algs[1] != BubbleOptimized {
		t.Errorf("AlgorithmSet = %v, %v", algs, err)
	}
	if config.SizeLimit != 5000 {
		t.Errorf("SizeLimit = %d", config.SizeLimit)
	}
	if config.ExportPath != "out.txt" {
		t.Errorf("ExportPath = %q, want out.txt", config.ExportPath)
	}
	if config.ItemsPerLine != 8 {
		t.Errorf("ItemsPerLine = %d", config.ItemsPerLine)
	}
	if config.PreviewCount != DefaultPreviewCount {
		t.Errorf("PreviewCount should keep its default, got %d", config.PreviewCount)
	}
	if config.ProgressInterval() != 250*time.Millisecond {
		t.Errorf("ProgressInterval = %v", config.ProgressInterval())
	}
}

func TestDecodeToolConfigInvalid(t *test.T) {
	if _, err := DecodeToolConfig(`algorithms = ["merge", "quick"]`); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := DecodeToolConfig(`size_limit = -1`); err == nil {
		t.Errorf("Expected an error for a negative size_limit")
	}
	if _, err := DecodeToolConfig(`size_limit = "lots"`); err == nil {
		t.Errorf("Expected a type error")
	}
}

func TestLoadToolConfig(t *test.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("algorithms = [\"merge\", \"insertion\"]\npreview_count = 5\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig returned error: %v", err)
	}
	if config.PreviewCount != 5 || len(config.Algorithms) != 2 {
		t.Errorf("Unexpected config: %+v", config)
	}
	if config.ExportPath != DefaultExportFilename {
		t.Errorf("ExportPath = %q", config.ExportPath)
	}

	if _, err := LoadToolConfig(filepath.Join(dir, "nope.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestDefaultToolConfig(t *test.T) {
	config := DefaultToolConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Default config does not validate: %v", err)
	}
	algs, _ := config.AlgorithmSet()
	if len(algs) != 3 {
		t.Errorf("Default algorithm set = %v", algs)
	}
}

func TestResolveToolConfig(t *test.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(wd)

	config, err := ResolveToolConfig(DefaultConfigPath)
	if err != nil {
		t.Fatalf("Missing default config should fall back, got %v", err)
	}
	if config.PreviewCount != DefaultPreviewCount {
		t.Errorf("Fallback config is not the default: %+v", config)
	}

	if _, err := ResolveToolConfig(filepath.Join(dir, "explicit.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("A missing explicit config should fail, got %v", err)
	}
}
