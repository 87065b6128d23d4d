package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/v2n/internal"
	tt "github.com/gnoswap-labs/v2n/internal/types"
)

// DefaultConfigPath is read when no configuration file is named.
const DefaultConfigPath = ".v2n.yaml"

// Config is the content of a configuration file.
type Config struct {
	Name     string      `yaml:"name"`
	Features tt.Features `yaml:"features"`
	Output   tt.Output   `yaml:"output"`
	CacheDir string      `yaml:"cache_dir,omitempty"`
}

// DefaultConfig enables every conversion and writes `<input>.new` files.
func DefaultConfig() Config {
	return Config{
		Name:     "v2n",
		Features: tt.DefaultFeatures(),
		Output:   tt.DefaultOutput(),
	}
}

// LoadConfig reads the configuration at path on top of the defaults.
// An empty path means DefaultConfigPath, which may be absent.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	optional := path == ""
	if optional {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}

	if config.Output.Suffix == "" {
		config.Output.Suffix = tt.DefaultOutputSuffix
	}
	return config, config.Validate()
}

// Validate rejects an output suffix that would make every output a source
// file itself, since directory runs and watch mode would convert it again.
func (c Config) Validate() error {
	if internal.HasSourceExtension(c.Output.Suffix) {
		return fmt.Errorf("output suffix %q must not end in a source extension %v", c.Output.Suffix, internal.SourceExtensions)
	}
	return nil
}

// WriteConfig stores config at path as YAML.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
