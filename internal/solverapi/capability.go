// Package solverapi is the narrow capability surface the rest of this
// module depends on for constraint solving. Every other package under
// internal/ talks to a Model, never to the underlying CP-SAT library
// directly; ortools.go is the only place
// github.com/google/or-tools/ortools/sat/go/cpmodel is imported.
package solverapi

// IntVar is an opaque handle to an integer decision variable.
type IntVar struct{ handle any }

// BoolVar is an opaque handle to a boolean decision variable.
type BoolVar struct{ handle any }

// IntervalVar is an opaque handle to an interval variable, used for
// no-overlap reasoning over room/time blocks.
type IntervalVar struct{ handle any }

// LinearExpr is a linear combination of IntVar/BoolVar/constants, built
// incrementally with NewLinearExpr and its AddTerm/AddConstant methods.
type LinearExpr struct {
	terms    []linearTerm
	constant int64
}

type linearTerm struct {
	v      IntVar
	coeff  int64
	isBool bool
	b      BoolVar
}

// NewLinearExpr starts an empty linear expression.
func NewLinearExpr() *LinearExpr { return &LinearExpr{} }

// AddTerm appends coeff*v.
func (e *LinearExpr) AddTerm(v IntVar, coeff int64) *LinearExpr {
	e.terms = append(e.terms, linearTerm{v: v, coeff: coeff})
	return e
}

// AddBoolTerm appends coeff*b, treating b as 0/1.
func (e *LinearExpr) AddBoolTerm(b BoolVar, coeff int64) *LinearExpr {
	e.terms = append(e.terms, linearTerm{isBool: true, b: b, coeff: coeff})
	return e
}

// AddConstant adds a fixed offset.
func (e *LinearExpr) AddConstant(c int64) *LinearExpr {
	e.constant += c
	return e
}

// Literal is either a BoolVar or its negation, accepted by AddBoolOr,
// AddBoolAnd and OnlyEnforceIf.
type Literal struct {
	v   BoolVar
	neg bool
}

// Lit wraps a BoolVar as a positive literal.
func Lit(b BoolVar) Literal { return Literal{v: b} }

// Not returns the negated literal.
func (l Literal) Not() Literal { return Literal{v: l.v, neg: !l.neg} }

// Constraint is returned by every Add* call so callers can chain
// OnlyEnforceIf, including AddNoOverlap and AddAllDifferent.
type Constraint interface {
	OnlyEnforceIf(lits ...Literal) Constraint
}

// Status is the terminal state of one search.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusFeasible
	StatusInfeasible
	StatusModelInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusModelInvalid:
		return "MODEL_INVALID"
	default:
		return "UNKNOWN"
	}
}

// ValueReader is handed to a SolutionCallback for one incumbent; it is only
// valid for the duration of the callback invocation.
type ValueReader interface {
	Value(v IntVar) int64
	BoolValue(b BoolVar) bool
	ObjectiveValue() float64
}

// SolutionCallback is invoked at most once per incumbent found during
// search: each improving incumbent when optimizing, each distinct solution
// when SearchAll is set. Invocations are serialized by the solver.
type SolutionCallback interface {
	OnSolution(r ValueReader)
}

// SolveOptions configures one search.
type SolveOptions struct {
	MaxTimeSeconds float64
	NumWorkers     int
	SearchAll      bool // enumerate every feasible solution instead of optimizing
	Callback       SolutionCallback
}

// Result is the outcome of one Solve call.
type Result struct {
	Status         Status
	ObjectiveValue float64
	WallTime       float64
	NumBooleans    int64
	NumConflicts   int64
	NumBranches    int64
}

// Model is the solving capability surface: every operation the encoders
// need from a CP-SAT backend, and nothing else.
type Model interface {
	// NewIntVar creates an integer variable ranging over the union of the
	// given closed intervals (a finite set expressed as sorted,
	// non-overlapping [lo,hi] pairs; a singleton value is [v,v]).
	NewIntVar(domain [][2]int64, name string) IntVar
	NewBoolVar(name string) BoolVar
	NewConstant(value int64) IntVar

	// AsIntVar views a BoolVar as the 0/1 IntVar CP-SAT represents it as
	// internally; used where a boolean must feed AddMaxEquality or similar
	// integer-only helpers.
	AsIntVar(b BoolVar) IntVar

	AddEquality(a, b LinearArgument) Constraint
	AddNotEqual(a, b LinearArgument) Constraint
	AddLessOrEqual(a, b LinearArgument) Constraint
	AddLessThan(a, b LinearArgument) Constraint

	AddAllDifferent(vars ...IntVar) Constraint
	AddBoolOr(lits ...Literal) Constraint
	AddBoolAnd(lits ...Literal) Constraint
	AddImplication(antecedent Literal, consequent Literal) Constraint

	AddMinEquality(target IntVar, vars []IntVar) Constraint
	AddMaxEquality(target IntVar, vars []IntVar) Constraint
	AddModuloEquality(target IntVar, v IntVar, mod int64) Constraint

	// NewInterval creates an interval variable [start, start+size).
	NewInterval(start IntVar, size int64, name string) IntervalVar
	AddNoOverlap(intervals ...IntervalVar) Constraint

	// AddForbiddenAssignments rules out every row of `tuples` as a joint
	// assignment of `vars` (vars are boolean, tuples are 0/1 rows).
	AddForbiddenAssignments(vars []BoolVar, tuples [][]int64) Constraint

	Minimize(expr *LinearExpr)

	Solve(opts SolveOptions) (Result, error)
}

// LinearArgument is anything AddEquality/AddLessOrEqual/etc. accept on
// either side: a single IntVar/BoolVar, a constant, or a built LinearExpr.
type LinearArgument interface {
	asExpr() *LinearExpr
}

func (v IntVar) asExpr() *LinearExpr { return NewLinearExpr().AddTerm(v, 1) }
func (b BoolVar) asExpr() *LinearExpr { return NewLinearExpr().AddBoolTerm(b, 1) }
func (e *LinearExpr) asExpr() *LinearExpr { return e }

// Const wraps a plain integer so it can be passed wherever a
// LinearArgument is expected.
type Const int64

func (c Const) asExpr() *LinearExpr { return NewLinearExpr().AddConstant(int64(c)) }
