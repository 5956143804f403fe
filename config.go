package sort_analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ToolConfig is the shared config.toml read by every command.
type ToolConfig struct {
	Algorithms         []string `toml:"algorithms"`
	SizeLimit          int      `toml:"size_limit"`
	ExportPath         string   `toml:"export_path"`
	PreviewCount       int      `toml:"preview_count"`
	ItemsPerLine       int      `toml:"items_per_line"`
	ProgressIntervalMS int      `toml:"progress_interval_ms"`
}

func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		Algorithms:         []string{"bubble", "insertion", "merge"},
		ExportPath:         DefaultExportFilename,
		PreviewCount:       DefaultPreviewCount,
		ItemsPerLine:       DefaultItemsPerLine,
		ProgressIntervalMS: 250,
	}
}

// DecodeToolConfig decodes TOML on top of the defaults, so keys left out of
// the file keep their default values.
func DecodeToolConfig(text string) (*ToolConfig, error) {
	config := DefaultToolConfig()
	md, err := toml.Decode(text, config)
	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Ignoring unknown config key %q", key.String())
	}
	return config, config.Validate()
}

// LoadToolConfig reads path. The returned error wraps the os error, so a
// missing file can be detected with errors.Is(err, fs.ErrNotExist).
func LoadToolConfig(path string) (*ToolConfig, error) {
	conffile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to load config %s: %w", path, err)
	}
	defer conffile.Close()

	config := DefaultToolConfig()
	md, err := toml.NewDecoder(conffile).Decode(config)
	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Ignoring unknown config key %q in %s", key.String(), path)
	}
	return config, config.Validate()
}

// ResolveToolConfig is LoadToolConfig for the commands: when path is the
// default location and nothing is there, the defaults are used instead.
func ResolveToolConfig(path string) (*ToolConfig, error) {
	config, err := LoadToolConfig(path)
	if err != nil && path == DefaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return DefaultToolConfig(), nil
	}
	return config, err
}

func (c *ToolConfig) Validate() error {
	if _, err := c.AlgorithmSet(); err != nil {
		return err
	}
	if c.SizeLimit < 0 {
		return fmt.Errorf("size_limit cannot be negative: %d", c.SizeLimit)
	}
	if c.PreviewCount <= 0 {
		c.PreviewCount = DefaultPreviewCount
	}
	if c.ItemsPerLine <= 0 {
		c.ItemsPerLine = DefaultItemsPerLine
	}
	if c.ProgressIntervalMS <= 0 {
		c.ProgressIntervalMS = 250
	}
	c.ExportPath = ExportPath(c.ExportPath)
	return nil
}

// AlgorithmSet resolves the configured algorithm names.
func (c *ToolConfig) AlgorithmSet() ([]Algorithm, error) {
	algs := make([]Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("algorithms: %w", err)
		}
		algs = append(algs, a)
	}
	return algs, nil
}

func (c *ToolConfig) ProgressInterval() time.Duration {
	return time.Duration(c.ProgressIntervalMS) * time.Millisecond
}
