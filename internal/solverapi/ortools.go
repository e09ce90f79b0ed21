package solverapi

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	"google.golang.org/protobuf/proto"
)

// cpSatModel is the cpmodel-backed implementation of Model. It is the only
// file in this module that imports cpmodel directly.
//
// intVars and boolVars record every decision variable created through this
// Model, and objective records the last Minimize() argument; Solve needs
// both to emulate per-incumbent reporting on top of a binding whose
// SolveCpModelWithParameters only ever returns one terminal response per
// call (see solveWithIncumbentCallbacks/solveEnumerateAll below).
type cpSatModel struct {
	b *cpmodel.CpModelBuilder

	intVars   []cpmodel.IntVar
	boolVars  []cpmodel.BoolVar
	objective *LinearExpr
}

// NewCpSatModel returns a fresh, empty Model backed by CP-SAT.
func NewCpSatModel() Model {
	return &cpSatModel{b: cpmodel.NewCpModelBuilder()}
}

func domainOf(intervals [][2]int64) cpmodel.Domain {
	if len(intervals) == 0 {
		return cpmodel.NewDomain(0, 0)
	}
	d := cpmodel.NewDomain(intervals[0][0], intervals[0][1])
	for _, iv := range intervals[1:] {
		d = d.UnionWithDomain(cpmodel.NewDomain(iv[0], iv[1]))
	}
	return d
}

func (m *cpSatModel) NewIntVar(dom [][2]int64, name string) IntVar {
	v := m.b.NewIntVarFromDomain(domainOf(dom)).WithName(name)
	m.intVars = append(m.intVars, v)
	return IntVar{handle: v}
}

func (m *cpSatModel) NewBoolVar(name string) BoolVar {
	v := m.b.NewBoolVar().WithName(name)
	m.boolVars = append(m.boolVars, v)
	return BoolVar{handle: v}
}

func (m *cpSatModel) NewConstant(value int64) IntVar {
	return IntVar{handle: m.b.NewConstant(value)}
}

func (m *cpSatModel) AsIntVar(b BoolVar) IntVar {
	return IntVar{handle: cpmodel.IntVar(bv(b))}
}

func iv(v IntVar) cpmodel.IntVar   { return v.handle.(cpmodel.IntVar) }
func bv(b BoolVar) cpmodel.BoolVar { return b.handle.(cpmodel.BoolVar) }
func itv(i IntervalVar) cpmodel.IntervalVar { return i.handle.(cpmodel.IntervalVar) }

func asLinear(a LinearArgument) cpmodel.LinearArgument {
	e := a.asExpr()
	le := cpmodel.NewLinearExpr()
	for _, t := range e.terms {
		if t.isBool {
			le = le.AddTerm(bv(t.b), t.coeff)
		} else {
			le = le.AddTerm(iv(t.v), t.coeff)
		}
	}
	if e.constant != 0 {
		le = le.AddConstant(e.constant)
	}
	return le
}

type cpConstraint struct{ c cpmodel.Constraint }

func (c cpConstraint) OnlyEnforceIf(lits ...Literal) Constraint {
	ls := make([]cpmodel.Literal, len(lits))
	for i, l := range lits {
		lit := cpmodel.Literal(bv(l.v))
		if l.neg {
			lit = lit.Not()
		}
		ls[i] = lit
	}
	c.c.OnlyEnforceIf(ls...)
	return c
}

func (m *cpSatModel) AddEquality(a, b LinearArgument) Constraint {
	return cpConstraint{m.b.AddEquality(asLinear(a), asLinear(b))}
}
func (m *cpSatModel) AddNotEqual(a, b LinearArgument) Constraint {
	return cpConstraint{m.b.AddNotEqual(asLinear(a), asLinear(b))}
}
func (m *cpSatModel) AddLessOrEqual(a, b LinearArgument) Constraint {
	return cpConstraint{m.b.AddLessOrEqual(asLinear(a), asLinear(b))}
}
func (m *cpSatModel) AddLessThan(a, b LinearArgument) Constraint {
	return cpConstraint{m.b.AddLessThan(asLinear(a), asLinear(b))}
}

func (m *cpSatModel) AddAllDifferent(vars ...IntVar) Constraint {
	cv := make([]cpmodel.IntVar, len(vars))
	for i, v := range vars {
		cv[i] = iv(v)
	}
	return cpConstraint{m.b.AddAllDifferent(cv...)}
}

func toLiterals(lits []Literal) []cpmodel.Literal {
	out := make([]cpmodel.Literal, len(lits))
	for i, l := range lits {
		lit := cpmodel.Literal(bv(l.v))
		if l.neg {
			lit = lit.Not()
		}
		out[i] = lit
	}
	return out
}

func (m *cpSatModel) AddBoolOr(lits ...Literal) Constraint {
	return cpConstraint{m.b.AddBoolOr(toLiterals(lits)...)}
}
func (m *cpSatModel) AddBoolAnd(lits ...Literal) Constraint {
	return cpConstraint{m.b.AddBoolAnd(toLiterals(lits)...)}
}
func (m *cpSatModel) AddImplication(antecedent, consequent Literal) Constraint {
	return cpConstraint{m.b.AddImplication(toLiterals([]Literal{antecedent})[0], toLiterals([]Literal{consequent})[0])}
}

func (m *cpSatModel) AddMinEquality(target IntVar, vars []IntVar) Constraint {
	cv := make([]cpmodel.LinearArgument, len(vars))
	for i, v := range vars {
		cv[i] = iv(v)
	}
	return cpConstraint{m.b.AddMinEquality(iv(target), cv...)}
}
func (m *cpSatModel) AddMaxEquality(target IntVar, vars []IntVar) Constraint {
	cv := make([]cpmodel.LinearArgument, len(vars))
	for i, v := range vars {
		cv[i] = iv(v)
	}
	return cpConstraint{m.b.AddMaxEquality(iv(target), cv...)}
}
func (m *cpSatModel) AddModuloEquality(target, v IntVar, mod int64) Constraint {
	return cpConstraint{m.b.AddModuloEquality(iv(target), iv(v), m.b.NewConstant(mod))}
}

func (m *cpSatModel) NewInterval(start IntVar, size int64, name string) IntervalVar {
	end := m.b.NewIntVarFromDomain(cpmodel.NewDomain(0, int64(1)<<40)).WithName(name + "_end")
	interval := m.b.NewIntervalVar(iv(start), m.b.NewConstant(size), end).WithName(name)
	return IntervalVar{handle: interval}
}

func (m *cpSatModel) AddNoOverlap(intervals ...IntervalVar) Constraint {
	cv := make([]cpmodel.IntervalVar, len(intervals))
	for i, v := range intervals {
		cv[i] = itv(v)
	}
	return cpConstraint{m.b.AddNoOverlap(cv...)}
}

func (m *cpSatModel) AddForbiddenAssignments(vars []BoolVar, tuples [][]int64) Constraint {
	cv := make([]cpmodel.IntVar, len(vars))
	for i, v := range vars {
		cv[i] = cpmodel.IntVar(bv(v))
	}
	return cpConstraint{m.b.AddForbiddenAssignments(cv, tuples)}
}

func (m *cpSatModel) Minimize(expr *LinearExpr) {
	m.objective = expr
	m.b.Minimize(asLinear(expr))
}

// Solve dispatches to the search mode opts asks for. The cpmodel binding
// only exposes SolveCpModelWithParameters, which returns a single terminal
// response per call and has no per-incumbent callback hook; a model with
// no objective has exactly one incumbent anyway (the first feasible
// solution), so only the optimizing and enumerating modes need to emulate
// repeated reporting — see solveWithIncumbentCallbacks and
// solveEnumerateAll.
func (m *cpSatModel) Solve(opts SolveOptions) (Result, error) {
	switch {
	case opts.SearchAll:
		return m.solveEnumerateAll(opts)
	case m.objective != nil:
		return m.solveWithIncumbentCallbacks(opts)
	default:
		return m.solveOnce(opts)
	}
}

func solveParameters(maxTimeSeconds float64, workers int) *cmpb.SatParameters {
	params := &cmpb.SatParameters{MaxTimeInSeconds: proto.Float64(maxTimeSeconds)}
	if workers > 0 {
		params.NumSearchWorkers = proto.Int32(int32(workers))
	}
	return params
}

func statusOf(response *cmpb.CpSolverResponse) Status {
	switch response.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		return StatusOptimal
	case cmpb.CpSolverStatus_FEASIBLE:
		return StatusFeasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		return StatusInfeasible
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return StatusModelInvalid
	default:
		return StatusUnknown
	}
}

func resultFrom(status Status, response *cmpb.CpSolverResponse) Result {
	return Result{
		Status:         status,
		ObjectiveValue: response.GetObjectiveValue(),
		WallTime:       response.GetWallTime(),
		NumBooleans:    response.GetNumBooleans(),
		NumConflicts:   response.GetNumConflicts(),
		NumBranches:    response.GetNumBranches(),
	}
}

// solveOnce runs a single search and reports at most one incumbent: the
// shape every non-optimizing, non-enumerating search has anyway.
func (m *cpSatModel) solveOnce(opts SolveOptions) (Result, error) {
	model, err := m.b.Model()
	if err != nil {
		return Result{Status: StatusModelInvalid}, fmt.Errorf("building cp model: %w", err)
	}

	response, err := cpmodel.SolveCpModelWithParameters(model, solveParameters(opts.MaxTimeSeconds, opts.NumWorkers))
	if err != nil {
		log.Errorf("cp-sat solve failed: %v", err)
		return Result{Status: StatusUnknown}, err
	}

	status := statusOf(response)
	if opts.Callback != nil && (status == StatusOptimal || status == StatusFeasible) {
		opts.Callback.OnSolution(responseReader{response: response})
	}
	return resultFrom(status, response), nil
}

// solveWithIncumbentCallbacks emulates per-incumbent reporting for an
// optimizing search: solve, report the incumbent just found, then add a
// strict objective-improvement bound and solve again, until the tightened
// model turns infeasible — which proves the last incumbent reported was
// optimal — or the time budget runs out.
func (m *cpSatModel) solveWithIncumbentCallbacks(opts SolveOptions) (Result, error) {
	remaining := opts.MaxTimeSeconds
	var best *cmpb.CpSolverResponse
	var bestStatus Status

	for {
		model, err := m.b.Model()
		if err != nil {
			return Result{Status: StatusModelInvalid}, fmt.Errorf("building cp model: %w", err)
		}

		response, err := cpmodel.SolveCpModelWithParameters(model, solveParameters(remaining, opts.NumWorkers))
		if err != nil {
			log.Errorf("cp-sat solve failed: %v", err)
			if best != nil {
				return resultFrom(bestStatus, best), nil
			}
			return Result{Status: StatusUnknown}, err
		}
		remaining -= response.GetWallTime()

		switch status := statusOf(response); status {
		case StatusModelInvalid:
			return resultFrom(StatusModelInvalid, response), nil
		case StatusInfeasible:
			if best == nil {
				return resultFrom(StatusInfeasible, response), nil
			}
			return resultFrom(StatusOptimal, best), nil
		case StatusOptimal, StatusFeasible:
			best, bestStatus = response, status
			if opts.Callback != nil {
				opts.Callback.OnSolution(responseReader{response: response})
			}
			if remaining <= 0 {
				return resultFrom(status, response), nil
			}
			bound := int64(math.Round(response.GetObjectiveValue()))
			m.b.AddLessThan(asLinear(m.objective), m.b.NewConstant(bound))
		default:
			return resultFrom(StatusUnknown, response), nil
		}
	}
}

// solveEnumerateAll is the --search-all debug mode's exhaustive
// enumeration: solve, report the incumbent, forbid the exact joint
// assignment just found with a no-good cut over every decision variable
// this Model ever created, and repeat until the tightened model is
// infeasible (every solution has been visited) or the time budget runs
// out. Forced to a single search worker so the enumeration order is
// deterministic.
func (m *cpSatModel) solveEnumerateAll(opts SolveOptions) (Result, error) {
	remaining := opts.MaxTimeSeconds
	var best *cmpb.CpSolverResponse
	var bestStatus Status

	for {
		model, err := m.b.Model()
		if err != nil {
			return Result{Status: StatusModelInvalid}, fmt.Errorf("building cp model: %w", err)
		}

		response, err := cpmodel.SolveCpModelWithParameters(model, solveParameters(remaining, 1))
		if err != nil {
			log.Errorf("cp-sat solve failed: %v", err)
			if best != nil {
				return resultFrom(bestStatus, best), nil
			}
			return Result{Status: StatusUnknown}, err
		}
		remaining -= response.GetWallTime()

		switch status := statusOf(response); status {
		case StatusModelInvalid:
			return resultFrom(StatusModelInvalid, response), nil
		case StatusInfeasible:
			if best == nil {
				return resultFrom(StatusInfeasible, response), nil
			}
			return resultFrom(StatusOptimal, best), nil
		case StatusOptimal, StatusFeasible:
			best, bestStatus = response, status
			if opts.Callback != nil {
				opts.Callback.OnSolution(responseReader{response: response})
			}
			if remaining <= 0 {
				return resultFrom(status, response), nil
			}
			m.forbidCurrentAssignment(response)
		default:
			return resultFrom(StatusUnknown, response), nil
		}
	}
}

// forbidCurrentAssignment adds a no-good cut ruling out the exact joint
// assignment response reports, over every decision variable created
// through NewIntVar/NewBoolVar, so the next solve in solveEnumerateAll is
// forced to find a genuinely different solution.
func (m *cpSatModel) forbidCurrentAssignment(response *cmpb.CpSolverResponse) {
	var differs []cpmodel.Literal
	for _, v := range m.intVars {
		value := cpmodel.SolutionIntegerValue(response, v)
		eq := cpmodel.Literal(m.b.NewBoolVar())
		m.b.AddEquality(v, m.b.NewConstant(value)).OnlyEnforceIf(eq)
		m.b.AddNotEqual(v, m.b.NewConstant(value)).OnlyEnforceIf(eq.Not())
		differs = append(differs, eq.Not())
	}
	for _, b := range m.boolVars {
		lit := cpmodel.Literal(b)
		if cpmodel.SolutionBooleanValue(response, b) {
			differs = append(differs, lit.Not())
		} else {
			differs = append(differs, lit)
		}
	}
	if len(differs) > 0 {
		m.b.AddBoolOr(differs...)
	}
}

// responseReader adapts a single terminal cpmodel response into a
// ValueReader for one reported incumbent.
type responseReader struct {
	response *cmpb.CpSolverResponse
}

func (r responseReader) Value(v IntVar) int64 {
	return cpmodel.SolutionIntegerValue(r.response, iv(v))
}
func (r responseReader) BoolValue(b BoolVar) bool {
	return cpmodel.SolutionBooleanValue(r.response, bv(b))
}
func (r responseReader) ObjectiveValue() float64 { return r.response.GetObjectiveValue() }
