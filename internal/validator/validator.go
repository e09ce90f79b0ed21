// Package validator independently re-checks every hard scheduling rule
// against a concrete solution.Solution, without consulting any CP-SAT
// variable. It is the oracle half of the system: whatever the encoders
// claim to enforce, this package re-derives from catalog data and the
// extracted placements alone. Validate accumulates every failure instead
// of short-circuiting so a broken encoder shows all of its damage at once.
package validator

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/timeslotindex"
)

// Failure is one rule violation found in a solution.
type Failure struct {
	Rule   string
	Detail string
}

func (f Failure) String() string { return fmt.Sprintf("[%s] %s", f.Rule, f.Detail) }

// Result accumulates every failure found by Validate.
type Result struct {
	Failures []Failure
}

// Valid reports whether no rule was violated.
func (r Result) Valid() bool { return len(r.Failures) == 0 }

func (r *Result) add(rule, format string, args ...any) {
	r.Failures = append(r.Failures, Failure{Rule: rule, Detail: fmt.Sprintf(format, args...)})
}

// Validate runs every hard-rule check against sol and returns every
// failure found (empty Result means the solution is valid).
func Validate(sol *solution.Solution, cat *domain.Catalog, idx *timeslotindex.Index) Result {
	var r Result
	validateTeacherTime(&r, sol, cat)
	validateRoomTime(&r, sol, cat)
	validateCohortTime(&r, sol, cat)
	validateStudyDays(&r, sol, cat)
	validateLessonShape(&r, sol, cat)
	validateRoomNotAvailable(&r, sol, cat)
	validateTeacherNotAvailable(&r, sol, cat)
	validateForenoon(&r, sol, cat, idx)
	validateAllInOneBlock(&r, sol, cat, idx)
	validateBlocksOnlyInSameRoom(&r, sol, cat)
	validateMaxLessonsPerDayTeacher(&r, sol, cat, idx)
	validateMaxLecturesPerDayTeacher(&r, sol, cat, idx)
	validateMaxLessonsPerDayCohort(&r, sol, cat, idx)
	validateOneLessonPerDayPerCourse(&r, sol, cat)
	validateGivenTimeslots(&r, sol, cat)
	validateOneCoursePerDayPerTeacher(&r, sol, cat)
	validateMaxLecturesAsBlock(&r, sol, cat, idx)
	validateSameTimeLessons(&r, sol, cat)
	validateConsecutiveLessons(&r, sol, cat)
	return r
}

func sameTimeSetIncludingSelf(cat *domain.Catalog, l domain.Lesson) map[int]bool {
	out := map[int]bool{l.ID: true}
	others, _ := cat.SameTimeGroup(l.ID)
	for _, o := range others {
		out[o.ID] = true
	}
	return out
}
