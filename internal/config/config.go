// Package config binds the command-line surface to a Config value,
// layering pflag-parsed flags over an optional YAML/JSON config file read
// through viper, with flags taking precedence.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/schedulekit/timetable/internal/timetabling"
)

// Config is the fully resolved CLI surface.
type Config struct {
	Optimize          bool
	MaxTimeSeconds    float64
	PrintSolutions    timetabling.PrintMode
	Export            bool
	University        string
	Department        string
	Semester          string
	SearchAll         bool
	SearchForInvalids bool
	DataDir           string
	NumWorkers        int
	Debug             bool
}

// Parse builds a Config from argv (without the program name) plus an
// optional config file named by --config, following viper's own
// precedence: explicit flags win, the config file fills the rest, then the
// hard defaults set below.
func Parse(args []string) (Config, error) {
	fs := pflag.NewFlagSet("timetable", pflag.ContinueOnError)

	fs.BoolP("optimize", "o", true, "optimize the soft-constraint objective instead of stopping at first feasible")
	fs.Float64P("max-time", "m", 300, "solver wall-clock limit in seconds")
	fs.StringP("print-solutions", "p", "NONE", "NONE, BEST or ALL")
	fs.BoolP("export", "e", false, "write the JSON report")
	fs.StringP("university", "u", "", "university label for the report")
	fs.StringP("department", "d", "", "department label for the report")
	fs.StringP("semester", "s", "", "semester label for the report")
	fs.Bool("search-all", false, "debug: enumerate every feasible solution instead of optimizing")
	fs.Bool("search-for-invalids", false, "debug: validate every incumbent instead of printing it")
	fs.String("data-dir", "data", "directory holding the catalog JSON files")
	fs.Int("workers", 4, "solver worker thread count")
	fs.Bool("debug", false, "print per-teacher and per-cohort timetables")
	configFile := fs.String("config", "", "optional YAML/JSON config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parsing flags: %w", err)
	}

	v := viper.New()
	v.SetDefault("optimize", true)
	v.SetDefault("max-time", 300)
	v.SetDefault("print-solutions", "NONE")
	v.SetDefault("export", false)
	v.SetDefault("search-all", false)
	v.SetDefault("search-for-invalids", false)
	v.SetDefault("data-dir", "data")
	v.SetDefault("workers", 4)
	v.SetDefault("debug", false)

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", *configFile, err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	mode, err := timetabling.ParsePrintMode(v.GetString("print-solutions"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Optimize:          v.GetBool("optimize"),
		MaxTimeSeconds:    v.GetFloat64("max-time"),
		PrintSolutions:    mode,
		Export:            v.GetBool("export"),
		University:        v.GetString("university"),
		Department:        v.GetString("department"),
		Semester:          v.GetString("semester"),
		SearchAll:         v.GetBool("search-all"),
		SearchForInvalids: v.GetBool("search-for-invalids"),
		DataDir:           v.GetString("data-dir"),
		NumWorkers:        v.GetInt("workers"),
		Debug:             v.GetBool("debug"),
	}, nil
}

// RunConfig narrows Config to what timetabling.Run needs.
func (c Config) RunConfig() timetabling.Config {
	return timetabling.Config{
		Optimize:          c.Optimize,
		MaxTimeSeconds:    c.MaxTimeSeconds,
		NumWorkers:        c.NumWorkers,
		PrintSolutions:    c.PrintSolutions,
		Debug:             c.Debug,
		SearchAll:         c.SearchAll,
		SearchForInvalids: c.SearchForInvalids,
	}
}
