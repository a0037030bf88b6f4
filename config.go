package errpipeline

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file-loadable pipeline configuration used at the
// application's composition root.
type Config struct {
	DedupWindow     time.Duration `yaml:"dedup_window"`
	JournalPath     string        `yaml:"journal_path"`
	JournalCapacity int           `yaml:"journal_capacity"`
	Debug           bool          `yaml:"debug"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DedupWindow:     DefaultDedupWindow,
		JournalCapacity: 1000,
	}
}

// LoadConfig reads a YAML config file, applying defaults for unset fields.
// A missing file returns the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.DedupWindow <= 0 {
		cfg.DedupWindow = DefaultDedupWindow
	}
	if cfg.JournalCapacity <= 0 {
		cfg.JournalCapacity = 1000
	}
	return cfg, nil
}
