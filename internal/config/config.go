package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"quant-utilities/internal/portfolio"
	"quant-utilities/internal/split"
	"quant-utilities/internal/weights"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration (YAML) the CLI consumes.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Split     SplitConfig     `yaml:"split"`
	Filter    FilterConfig    `yaml:"filter"`
}

type DataConfig struct {
	// Path to the price/return CSV, resolved relative to the config file
	// when not absolute.
	Path string `yaml:"path"`

	// InputIsReturns marks the CSV as pre-computed simple returns
	// instead of price levels.
	InputIsReturns bool `yaml:"input_is_returns"`
}

type PortfolioConfig struct {
	// Scheme selects the weighting scheme: equal (default), fixed,
	// inverse_vol.
	Scheme  string    `yaml:"scheme"`
	Weights []float64 `yaml:"weights"` // fixed scheme row
	Window  int       `yaml:"window"`  // inverse_vol trailing window

	// NormalizeWeights defaults to true when omitted.
	NormalizeWeights *bool `yaml:"normalize_weights"`
}

type SplitConfig struct {
	NSplits            int     `yaml:"n_splits"`
	Embargo            float64 `yaml:"embargo"`
	DisallowEmptyTrain bool    `yaml:"disallow_empty_train"`
}

type FilterConfig struct {
	// Threshold is the CUSUM h parameter, in log-return units.
	Threshold float64 `yaml:"threshold"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and resolves paths, but does not validate.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.Data.Path != "" && !filepath.IsAbs(c.Data.Path) {
		// Prefer interpreting relative paths as relative to the config
		// file directory, falling back to the path as given (cwd).
		cand := filepath.Join(filepath.Dir(path), c.Data.Path)
		if _, err := os.Stat(cand); err == nil {
			c.Data.Path = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.Path == "" {
		return errors.New("data.path is required")
	}
	// Validate scheme and splitter params by constructing them.
	if _, err := weights.Build(c.SchemeParams()); err != nil {
		return fmt.Errorf("portfolio config invalid: %w", err)
	}
	if c.Split.NSplits != 0 {
		if _, err := split.NewEmbargo(c.Split.NSplits, c.Split.Embargo); err != nil {
			return fmt.Errorf("split config invalid: %w", err)
		}
	}
	if c.Filter.Threshold < 0 {
		return errors.New("filter.threshold must be >= 0")
	}
	return nil
}

func (c *Config) SchemeParams() weights.Params {
	return weights.Params{
		Name:   c.Portfolio.Scheme,
		Fixed:  c.Portfolio.Weights,
		Window: c.Portfolio.Window,
	}
}

func (c *Config) PortfolioOptions() portfolio.Options {
	opts := portfolio.DefaultOptions()
	opts.InputIsReturns = c.Data.InputIsReturns
	if c.Portfolio.NormalizeWeights != nil {
		opts.NormalizeWeights = *c.Portfolio.NormalizeWeights
	}
	return opts
}

// Splitter builds the configured embargo splitter.
func (c *Config) Splitter() (*split.Embargo, error) {
	var opts []split.Option
	if c.Split.DisallowEmptyTrain {
		opts = append(opts, split.DisallowEmptyTrain())
	}
	return split.NewEmbargo(c.Split.NSplits, c.Split.Embargo, opts...)
}
