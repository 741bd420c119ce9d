package utils

import (
	"encoding/json"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the console game
type Config struct {
	AllowedRows        []int         `json:"allowed_rows"`
	AllowedCols        []int         `json:"allowed_cols"`
	FrameDelay         time.Duration `json:"frame_delay"`
	ClearScreen        bool          `json:"clear_screen"`
	DefaultProbability float64       `json:"default_probability"`
	DetectCycles       bool          `json:"detect_cycles"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		AllowedRows:        []int{20, 30},
		AllowedCols:        []int{20, 30, 50},
		FrameDelay:         200 * time.Millisecond,
		ClearScreen:        true,
		DefaultProbability: 0.2,
		DetectCycles:       true,
	}
}

// Validate checks that the grid size sets are usable and the probability is in [0, 1]
func (c Config) Validate() error {
	if err := validateSizes("allowed_rows", c.AllowedRows); err != nil {
		return err
	}
	if err := validateSizes("allowed_cols", c.AllowedCols); err != nil {
		return err
	}
	if c.DefaultProbability < 0 || c.DefaultProbability > 1 {
		return errors.Errorf("[Validate] default_probability %v not in [0, 1]", c.DefaultProbability)
	}
	if c.FrameDelay < 0 {
		return errors.Errorf("[Validate] frame_delay %v is negative", c.FrameDelay)
	}
	return nil
}

func validateSizes(name string, sizes []int) error {
	if len(sizes) == 0 {
		return errors.Errorf("[Validate] %s must not be empty", name)
	}
	if slices.ContainsFunc(sizes, func(n int) bool { return n <= 0 }) {
		return errors.Errorf("[Validate] %s must be positive: %v", name, sizes)
	}
	return nil
}

// LoadConfig loads configuration from JSON file. Fields missing from the file
// keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.WithMessagef(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
