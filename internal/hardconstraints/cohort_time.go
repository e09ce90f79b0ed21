package hardconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
)

// AddCohortUniqueness ensures a cohort never has to be in two places at
// once: whole-cohort lessons never collide, no part-cohort lesson collides
// with a whole-cohort lesson, and parallel part-cohort lessons are either
// all from one course or limited to one lesson per course (with no
// multi-slot lessons among them, so every student can rotate through all
// parallel groups).
func (e *Encoder) AddCohortUniqueness() {
	for _, cohort := range e.Cat.Cohorts {
		whole := e.Cat.WholeCohortLessonsOfCohort(cohort.ID)
		part := e.Cat.PartCohortLessonsOfCohort(cohort.ID)

		wholeVars := dedupStarts(e.Vars, whole)
		if len(wholeVars) > 1 {
			e.Model.AddAllDifferent(wholeVars...)
		}

		for _, pl := range part {
			combined := dedupStarts(e.Vars, append(append([]domain.Lesson{}, whole...), pl))
			if len(combined) > 1 {
				e.Model.AddAllDifferent(combined...)
			}
		}

		e.addPartCohortParallelism(cohort, part)
	}
}

func (e *Encoder) addPartCohortParallelism(cohort domain.Cohort, part []domain.Lesson) {
	if len(part) == 0 {
		return
	}

	courseIDs := uniqueCourseIDs(part)
	var multiBlock []domain.Lesson
	for _, l := range part {
		if l.TimeslotSize > 1 {
			multiBlock = append(multiBlock, l)
		}
	}

	for _, ts := range e.Idx.All() {
		courseTakePlace := make([]solverapi.BoolVar, len(courseIDs))
		anyUsed := false
		for i, courseID := range courseIDs {
			var slotBools []solverapi.BoolVar
			for _, l := range part {
				if l.CourseID != courseID {
					continue
				}
				if b, ok := e.Vars.Lessons[l.ID].SlotBool[ts.ID]; ok {
					slotBools = append(slotBools, b)
				}
			}
			b := e.Model.NewBoolVar(fmt.Sprintf("cohort%d_course%d_at%d", cohort.ID, courseID, ts.ID))
			courseTakePlace[i] = b
			if len(slotBools) > 0 {
				ivars := make([]solverapi.IntVar, len(slotBools))
				for j, sb := range slotBools {
					ivars[j] = e.Model.AsIntVar(sb)
				}
				e.Model.AddMaxEquality(e.Model.AsIntVar(b), ivars)
				anyUsed = true
			} else {
				e.Model.AddEquality(b, solverapi.Const(0))
			}
		}
		if !anyUsed {
			continue
		}

		boolV := e.Model.NewBoolVar(fmt.Sprintf("cohort%d_parallel_case_%d", cohort.ID, ts.ID))
		sumTakePlace := solverapi.NewLinearExpr()
		for _, b := range courseTakePlace {
			sumTakePlace.AddBoolTerm(b, 1)
		}
		e.Model.AddLessOrEqual(sumTakePlace, solverapi.Const(1)).OnlyEnforceIf(solverapi.Lit(boolV))

		sumPart := solverapi.NewLinearExpr()
		for _, l := range part {
			if b, ok := e.Vars.Lessons[l.ID].SlotBool[ts.ID]; ok {
				sumPart.AddBoolTerm(b, 1)
			}
		}
		sumTakePlace2 := solverapi.NewLinearExpr()
		for _, b := range courseTakePlace {
			sumTakePlace2.AddBoolTerm(b, 1)
		}
		e.Model.AddEquality(sumPart, sumTakePlace2).OnlyEnforceIf(solverapi.Lit(boolV).Not())

		sumMulti := solverapi.NewLinearExpr()
		for _, l := range multiBlock {
			if b, ok := e.Vars.Lessons[l.ID].SlotBool[ts.ID]; ok {
				sumMulti.AddBoolTerm(b, 1)
			}
		}
		e.Model.AddEquality(sumMulti, solverapi.Const(0)).OnlyEnforceIf(solverapi.Lit(boolV).Not())
	}
}

func uniqueCourseIDs(lessons []domain.Lesson) []int {
	seen := make(map[int]bool)
	var out []int
	for _, l := range lessons {
		if !seen[l.CourseID] {
			seen[l.CourseID] = true
			out = append(out, l.CourseID)
		}
	}
	return out
}
