package timetabling

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/timeslotindex"
	"github.com/schedulekit/timetable/internal/validator"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// Printer is the normal-search solution callback. When PrintEvery is set
// it prints every incumbent's console timetable; otherwise it prints the
// progression of the objective value as a proportional bar.
type Printer struct {
	Cat        *domain.Catalog
	Idx        *timeslotindex.Index
	Vars       *varfactory.Tables
	Log        *zap.SugaredLogger
	PrintEvery bool
	Optimize   bool
	Debug      bool

	count    int
	startOV  float64
	lastSol  *solution.Solution
}

var _ solverapi.SolutionCallback = (*Printer)(nil)

// OnSolution is called for every incumbent the solver reports.
func (p *Printer) OnSolution(r solverapi.ValueReader) {
	p.count++
	p.lastSol = solution.Extract(r, p.count, p.Cat, p.Vars)

	if p.PrintEvery {
		printTimeTable(p.lastSol, p.Idx, p.count, false, false)
		return
	}
	if p.count == 1 && p.Optimize {
		p.startOV = r.ObjectiveValue()
		fmt.Println("Objective Value Progression:")
	}
	if p.Optimize && p.startOV != 0 {
		barLen := int(75 * (r.ObjectiveValue() / p.startOV))
		if barLen < 0 {
			barLen = 0
		}
		bar := ""
		for i := 0; i < barLen; i++ {
			bar += "_"
		}
		fmt.Printf("%s %d (Solution: %d)\n", bar, int64(r.ObjectiveValue()), p.count)
	}
}

// SolutionCount reports how many incumbents were seen.
func (p *Printer) SolutionCount() int { return p.count }

// LastSolution returns the most recently extracted incumbent, if any.
func (p *Printer) LastSolution() *solution.Solution { return p.lastSol }

// PrintTimeTable prints the last incumbent seen, called once after search
// ends; in debug mode it also breaks the timetable out per-teacher and
// per-cohort, matching TimeTablePrinter.PrintTimeTable.
func (p *Printer) PrintTimeTable() {
	if p.lastSol == nil {
		return
	}
	printTimeTable(p.lastSol, p.Idx, p.count, p.Debug, p.Debug)
}

// ValidatingSearch is the debug "search for invalids" callback: it
// extracts and validates every incumbent, counting and printing the ones
// the validator rejects.
type ValidatingSearch struct {
	Cat  *domain.Catalog
	Idx  *timeslotindex.Index
	Vars *varfactory.Tables
	Log  *zap.SugaredLogger

	count        int
	invalidCount int
	lastSol      *solution.Solution
	lastResult   validator.Result
}

var _ solverapi.SolutionCallback = (*ValidatingSearch)(nil)

func (v *ValidatingSearch) OnSolution(r solverapi.ValueReader) {
	v.count++
	sol := solution.Extract(r, v.count, v.Cat, v.Vars)
	v.lastSol = sol
	v.lastResult = validator.Validate(sol, v.Cat, v.Idx)
	if !v.lastResult.Valid() {
		printTimeTable(sol, v.Idx, v.count, false, false)
		for _, f := range v.lastResult.Failures {
			v.Log.Debugw("invalid incumbent", "solution", v.count, "rule", f.Rule, "detail", f.Detail)
		}
		v.invalidCount++
	}
}

// SolutionCount reports how many incumbents were checked.
func (v *ValidatingSearch) SolutionCount() int { return v.count }

// InvalidCount reports how many incumbents the validator rejected; a
// nonzero count after a search is always an encoder bug.
func (v *ValidatingSearch) InvalidCount() int { return v.invalidCount }

// LastSolution returns the most recently extracted incumbent, if any.
func (v *ValidatingSearch) LastSolution() *solution.Solution { return v.lastSol }

// LastResult returns the Validator's verdict on the most recent incumbent.
func (v *ValidatingSearch) LastResult() validator.Result { return v.lastResult }

// Counter is the rudimentary SEARCH_ALL callback: it only counts.
type Counter struct {
	count int
}

var _ solverapi.SolutionCallback = (*Counter)(nil)

func (c *Counter) OnSolution(solverapi.ValueReader) { c.count++ }

// SolutionCount reports how many incumbents were enumerated.
func (c *Counter) SolutionCount() int { return c.count }
