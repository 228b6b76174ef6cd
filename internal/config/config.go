// Package config loads the command line simulator's configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	pagesim "github.com/djdv/go-pagesim"
)

// Config describes a simulator invocation.
// Exactly one of Sequence or SequenceFile must be set.
type Config struct {
	Policy       string `toml:"policy"`
	SequenceFile string `toml:"sequence_file"`
	LogLevel     string `toml:"log_level"`
	// Textfile, if set, receives the run's metrics
	// in the Prometheus text exposition format.
	Textfile string `toml:"textfile"`
	Sequence []int  `toml:"sequence"`
	Frames   int    `toml:"frames"`
	// Compare runs every policy over the sequence, one after another.
	Compare bool `toml:"compare"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Policy:   pagesim.FIFO.String(),
		LogLevel: "info",
	}
}

// Load reads a TOML configuration file on top of [Default].
func Load(configPath string) (Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := toml.Unmarshal(content, &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Validate checks the configuration before any simulation step runs.
func (c Config) Validate() error {
	if c.Frames < pagesim.MinimumCapacity {
		return fmt.Errorf("%w: frames must be >=%d but %d was requested",
			pagesim.ErrInvalidConfiguration, pagesim.MinimumCapacity, c.Frames)
	}

	if !c.Compare {
		if _, err := pagesim.ParsePolicy(c.Policy); err != nil {
			return err
		}
	}

	if len(c.Sequence) == 0 && c.SequenceFile == "" {
		return fmt.Errorf("%w: no reference sequence given", pagesim.ErrInvalidConfiguration)
	}

	if len(c.Sequence) != 0 && c.SequenceFile != "" {
		return fmt.Errorf("%w: both sequence and sequence_file are set", pagesim.ErrInvalidConfiguration)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the slog level named by LogLevel.
// A blank LogLevel means [slog.LevelInfo].
func (c Config) Level() (slog.Level, error) {
	name := strings.TrimSpace(c.LogLevel)
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, errors.Join(pagesim.ErrInvalidConfiguration, err)
	}
	return level, nil
}

// References returns the reference sequence,
// reading and parsing SequenceFile if needed.
func (c Config) References() ([]int, error) {
	if c.SequenceFile == "" {
		return c.Sequence, nil
	}

	file, err := os.Open(c.SequenceFile)
	if err != nil {
		return nil, fmt.Errorf("open sequence file: %w", err)
	}
	defer file.Close()

	sequence, err := pagesim.ParseReferences(file)
	if err != nil {
		return nil, fmt.Errorf("parse sequence file %s: %w", c.SequenceFile, err)
	}

	return sequence, nil
}
