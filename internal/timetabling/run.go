package timetabling

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/hardconstraints"
	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/softconstraints"
	"github.com/schedulekit/timetable/internal/timeslotindex"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// PrintMode selects how much of the search the Printer callback reports
// to the console (the -p/--print-solutions flag).
type PrintMode int

const (
	PrintNone PrintMode = iota
	PrintBest
	PrintAll
)

// ParsePrintMode accepts the three spellings the CLI surface exposes.
func ParsePrintMode(s string) (PrintMode, error) {
	switch s {
	case "NONE", "none", "":
		return PrintNone, nil
	case "BEST", "best":
		return PrintBest, nil
	case "ALL", "all":
		return PrintAll, nil
	default:
		return PrintNone, fmt.Errorf("unknown print-solutions mode %q", s)
	}
}

// Config configures one Run.
type Config struct {
	Optimize          bool
	MaxTimeSeconds    float64
	NumWorkers        int
	PrintSolutions    PrintMode
	Debug             bool
	SearchAll         bool
	SearchForInvalids bool
}

// BuildError wraps a structural model-building failure. Plausibility
// findings from Catalog.PlausibilityCheck are logged, not wrapped in this
// error, since they do not by themselves abort the build.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string { return fmt.Sprintf("building model: %v", e.Err) }
func (e *BuildError) Unwrap() error { return e.Err }

// Outcome is everything a caller needs to report one completed search:
// the terminal status, the extracted solution (nil on
// Infeasible/ModelInvalid, or on Unknown with no incumbent), the raw
// solver Result, and the solution-count / invalid-count the chosen
// callback tracked.
type Outcome struct {
	Status         solverapi.Status
	Solution       *solution.Solution
	Result         solverapi.Result
	SolutionCount  int
	InvalidCount   int // only meaningful when Config.SearchForInvalids is set
	Diagnostics    []domain.Diagnostic
}

// Run builds the CP-SAT model for cat and performs one search: variables
// first, then the hard constraints, then the soft-constraint objective
// when Optimize is set, then one Solve call with the callback selected by
// cfg's debug flags.
func Run(log *zap.SugaredLogger, cat *domain.Catalog, cfg Config) (Outcome, error) {
	diagnostics := cat.PlausibilityCheck()
	for _, d := range diagnostics {
		log.Warnw("plausibility check", "entity", d.EntityKind, "id", d.EntityID, "message", d.Message)
	}

	idx := timeslotindex.Build(cat.Timeslots, cat.TimeslotsPerDay())
	model := solverapi.NewCpSatModel()
	vars := varfactory.Build(model, cat, idx)

	hardconstraints.New(model, cat, idx, vars).AddAll()

	if cfg.Optimize && !cfg.SearchAll {
		obj := softconstraints.New(model, cat, idx, vars).BuildObjective()
		model.Minimize(obj)
	}

	opts := solverapi.SolveOptions{
		MaxTimeSeconds: cfg.MaxTimeSeconds,
		NumWorkers:     cfg.NumWorkers,
		SearchAll:      cfg.SearchAll,
	}

	var printer *Printer
	var validating *ValidatingSearch
	var counter *Counter

	switch {
	case cfg.SearchAll:
		counter = &Counter{}
		opts.Callback = counter
	case cfg.SearchForInvalids:
		validating = &ValidatingSearch{Cat: cat, Idx: idx, Vars: vars, Log: log}
		opts.Callback = validating
	default:
		printer = &Printer{
			Cat: cat, Idx: idx, Vars: vars, Log: log,
			PrintEvery: cfg.PrintSolutions == PrintAll,
			Optimize:   cfg.Optimize,
			Debug:      cfg.Debug,
		}
		opts.Callback = printer
	}

	result, err := model.Solve(opts)
	if err != nil {
		return Outcome{Status: solverapi.StatusModelInvalid, Diagnostics: diagnostics}, &BuildError{Err: err}
	}

	out := Outcome{Status: result.Status, Result: result, Diagnostics: diagnostics}

	switch {
	case validating != nil:
		out.SolutionCount = validating.SolutionCount()
		out.InvalidCount = validating.InvalidCount()
		out.Solution = validating.LastSolution()
	case counter != nil:
		out.SolutionCount = counter.SolutionCount()
	case printer != nil:
		out.SolutionCount = printer.SolutionCount()
		out.Solution = printer.LastSolution()
		if cfg.PrintSolutions != PrintNone {
			printer.PrintTimeTable()
		}
	}

	log.Infow("search finished",
		"status", result.Status.String(),
		"objective", result.ObjectiveValue,
		"wall_time", result.WallTime,
		"conflicts", result.NumConflicts,
		"branches", result.NumBranches,
		"solutions", out.SolutionCount,
	)

	return out, nil
}
