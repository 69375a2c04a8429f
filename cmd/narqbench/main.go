// Program narqbench times the narq matchers against a naive scan and
// simd.Memmem on worst-case inputs, and writes one CSV file per experiment.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/creachadair/command"

	"github.com/coregx/narq/cmd/narqbench/config"
)

var (
	configPath = "narqbench.yml"
	verbose    bool
	flagSet    *flag.FlagSet
	flagVals   overrides
)

// overrides holds the flags that replace configuration file settings.
// Only flags given on the command line apply, so zero values can override.
type overrides struct {
	outDir    string
	seed      uint64
	epsilon   float64
	parallel  int
	prefilter bool
}

func (o *overrides) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.outDir, "out", "", "Output directory (overrides config)")
	fs.Uint64Var(&o.seed, "seed", 0, "Seed for Monte Carlo moduli (overrides config)")
	fs.Float64Var(&o.epsilon, "epsilon", 0, "Monte Carlo error bound (overrides config)")
	fs.IntVar(&o.parallel, "parallel", 0, "Concurrent sweeps for multi-needle search (overrides config)")
	fs.BoolVar(&o.prefilter, "prefilter", false, "Use the multi-needle prefilter (overrides config)")
}

// apply copies the flags that were set on fs into cfg.
func (o *overrides) apply(fs *flag.FlagSet, cfg *config.Settings) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutDir = o.outDir
		case "seed":
			cfg.Seed = o.seed
		case "epsilon":
			cfg.Epsilon = o.epsilon
		case "parallel":
			cfg.Parallelism = o.parallel
		case "prefilter":
			cfg.Prefilter = o.prefilter
		}
	})
}

type settings struct {
	*config.Settings
	Log *log.Logger
}

func main() {
	root := &command.C{
		Name: filepath.Base(os.Args[0]),
		Usage: `[options] <experiment>
help [<experiment>]`,
		Help: `Time substring search algorithms on worst-case inputs.

Needles have the form "aa...ab" and haystacks are runs of "a", so every
window of the haystack matches the needle except in its last byte. Each
experiment writes a CSV file named after it into the output directory.

Settings are read from the -config file if it exists; flags override it.`,

		SetFlags: func(env *command.Env, fs *flag.FlagSet) {
			if cf, ok := os.LookupEnv("NARQBENCH_CONFIG"); ok && cf != "" {
				configPath = cf
			}
			fs.StringVar(&configPath, "config", configPath, "Configuration file path")
			flagVals.bind(fs)
			flagSet = fs
			fs.BoolVar(&verbose, "v", false, "Log progress to stderr")
		},

		Init: func(env *command.Env) error {
			cfg, err := config.Load(os.ExpandEnv(configPath))
			if err != nil {
				return err
			}
			flagVals.apply(flagSet, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			s := env.Config.(*settings)
			s.Settings = cfg
			if verbose {
				s.Log = log.New(os.Stderr, "narqbench: ", log.Ltime)
			}
			return nil
		},

		Commands: []*command.C{
			experimentCommand("needle", "Vary the needle length against the largest haystack"),
			experimentCommand("haystack", "Vary the haystack length with the smallest needle"),
			experimentCommand("multi-needle", "Vary the needle count against the largest haystack"),
			experimentCommand("multi-haystack", "Vary needle count and haystack length"),
			{
				Name:  "all",
				Usage: "all",
				Help:  "Run every experiment in turn.",
				Run: func(env *command.Env, args []string) error {
					if len(args) != 0 {
						return env.Usagef("extra arguments: %q", args)
					}
					s := env.Config.(*settings)
					for _, name := range experimentNames {
						if err := runExperiment(s, name); err != nil {
							return err
						}
					}
					return nil
				},
			},
			command.HelpCommand(nil),
		},
	}
	if err := command.Execute(root.NewEnv(&settings{}), os.Args[1:]); err != nil {
		if errors.Is(err, command.ErrUsage) {
			os.Exit(2)
		}
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func experimentCommand(name, help string) *command.C {
	return &command.C{
		Name:  name,
		Usage: name,
		Help:  help + ".\nResults are written to " + name + ".csv in the output directory.",
		Run: func(env *command.Env, args []string) error {
			if len(args) != 0 {
				return env.Usagef("extra arguments: %q", args)
			}
			return runExperiment(env.Config.(*settings), name)
		},
	}
}

func runExperiment(s *settings, name string) error {
	r, err := newRunner(s.Settings, s.Log)
	if err != nil {
		return err
	}
	return r.run(name)
}
