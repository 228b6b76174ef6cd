// Command pagesim runs a page replacement simulation
// and prints each step followed by a summary.
//
//	pagesim -frames 3 -policy lru -sequence "7 0 1 2 0 3 0 4"
//	pagesim -config sim.toml -compare
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	pagesim "github.com/djdv/go-pagesim"
	promexporter "github.com/djdv/go-pagesim/exporter/prometheus"
	"github.com/djdv/go-pagesim/internal/config"
	"github.com/djdv/go-pagesim/internal/report"
	"github.com/djdv/go-pagesim/stats"
)

func main() {
	var (
		configPath string
		sequence   string
		quiet      bool
		c          = config.Default()
	)
	flag.StringVar(&configPath, "config", "", "Path to a TOML configuration file")
	flag.IntVar(&c.Frames, "frames", c.Frames, "Number of page frames")
	flag.StringVar(&c.Policy, "policy", c.Policy, "Replacement policy (FIFO, LRU, MRU, Optimal)")
	flag.StringVar(&sequence, "sequence", "", "Whitespace separated page references")
	flag.StringVar(&c.SequenceFile, "file", c.SequenceFile, "File containing page references")
	flag.BoolVar(&c.Compare, "compare", c.Compare, "Run every policy over the sequence")
	flag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&c.Textfile, "textfile", c.Textfile, "Write Prometheus metrics to this file")
	flag.BoolVar(&quiet, "quiet", false, "Only print the summary")
	flag.Parse()

	if err := run(configPath, sequence, quiet, c); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, sequence string, quiet bool, flags config.Config) error {
	c, err := resolve(configPath, sequence, flags)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	references, err := c.References()
	if err != nil {
		return err
	}
	level, err := c.Level()
	if err != nil {
		return err
	}
	var (
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		sim    = simulator{
			frames:     c.Frames,
			references: references,
			logger:     logger,
			counters:   make(map[pagesim.Policy]*stats.Counter),
			out:        os.Stdout,
			quiet:      quiet,
		}
	)
	if c.Compare {
		err = sim.compare()
	} else {
		// Validate has already accepted the name.
		policy, _ := pagesim.ParsePolicy(c.Policy)
		err = sim.single(policy)
	}
	if err != nil {
		return err
	}
	if c.Textfile != "" {
		if err := writeMetrics(c.Textfile, sim.subsystems(c.Compare)); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// resolve layers explicitly set flags over the configuration file.
func resolve(configPath, sequence string, flags config.Config) (config.Config, error) {
	c := flags
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		c = loaded
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "frames":
				c.Frames = flags.Frames
			case "policy":
				c.Policy = flags.Policy
			case "file":
				c.SequenceFile = flags.SequenceFile
				c.Sequence = nil
			case "compare":
				c.Compare = flags.Compare
			case "log-level":
				c.LogLevel = flags.LogLevel
			case "textfile":
				c.Textfile = flags.Textfile
			}
		})
	}
	if sequence != "" {
		references, err := pagesim.ParseReferenceString(sequence)
		if err != nil {
			return config.Config{}, fmt.Errorf("parse sequence: %w", err)
		}
		c.Sequence = references
		c.SequenceFile = ""
	}
	return c, nil
}

type simulator struct {
	out        io.Writer
	logger     *slog.Logger
	counters   map[pagesim.Policy]*stats.Counter
	references []int
	frames     int
	quiet      bool
}

func (s simulator) simulate(policy pagesim.Policy) (report.Result, error) {
	sim, err := pagesim.New(s.frames, policy, s.references,
		pagesim.WithLogger(s.logger),
		pagesim.WithStats(s.counter(policy)),
	)
	if err != nil {
		return report.Result{}, fmt.Errorf("create simulation: %w", err)
	}
	steps, summary, err := sim.Run()
	if err != nil {
		return report.Result{}, fmt.Errorf("simulate %s: %w", policy, err)
	}
	s.logger.Info("simulation finished",
		slog.String("policy", policy.String()),
		slog.Int("faults", summary.Faults),
		slog.Float64("hit_ratio", summary.HitRatio),
		slog.String("digest", fmt.Sprintf("%016x", pagesim.Digest(steps))),
	)
	return report.Result{Steps: steps, Summary: summary, Policy: policy}, nil
}

func (s simulator) single(policy pagesim.Policy) error {
	result, err := s.simulate(policy)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.out, policy.Description()); err != nil {
		return err
	}
	if !s.quiet {
		report.Steps(s.out, s.frames, result.Steps)
		if err := report.Narrate(s.out, policy, result.Steps); err != nil {
			return err
		}
	}
	return report.Summary(s.out, result.Summary)
}

func (s simulator) compare() error {
	results := make([]report.Result, 0, len(pagesim.Policies()))
	for _, policy := range pagesim.Policies() {
		result, err := s.simulate(policy)
		if err != nil {
			return err
		}
		results = append(results, result)
	}
	report.Compare(s.out, results)
	return nil
}

// counter returns the statistics of policy,
// allocating them on first use.
func (s simulator) counter(policy pagesim.Policy) *stats.Counter {
	counter, ok := s.counters[policy]
	if !ok {
		counter = stats.NewCounter()
		s.counters[policy] = counter
	}
	return counter
}

// subsystems names each policy's counter for export.
// A single run is exported without a subsystem,
// a comparison under one subsystem per policy.
func (s simulator) subsystems(compare bool) map[string]*stats.Counter {
	named := make(map[string]*stats.Counter, len(s.counters))
	for policy, counter := range s.counters {
		subsystem := ""
		if compare {
			subsystem = strings.ToLower(policy.String())
		}
		named[subsystem] = counter
	}
	return named
}

func writeMetrics(path string, subsystems map[string]*stats.Counter) error {
	registry := prometheus.NewRegistry()
	for subsystem, counter := range subsystems {
		if err := registry.Register(
			promexporter.NewCollector("pagesim", subsystem, counter),
		); err != nil {
			return err
		}
	}
	return prometheus.WriteToTextfile(path, registry)
}
