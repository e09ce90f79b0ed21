package hardconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
)

// AddMaxLessonsPerDayCohort caps a cohort's total lesson-timeslots on any
// one day: the whole-cohort load plus, per course with part-cohort
// lessons, one course's worth of part-cohort load.
func (e *Encoder) AddMaxLessonsPerDayCohort() {
	for _, cohort := range e.Cat.Cohorts {
		wholeCounted := e.countedWholeCohortLessonsForCohort(cohort.ID)
		part := e.Cat.PartCohortLessonsOfCohort(cohort.ID)
		if len(wholeCounted) == 0 && len(part) == 0 {
			continue
		}

		partByCourse := make(map[int][]domain.Lesson)
		var courseOrder []int
		for _, l := range part {
			if _, ok := partByCourse[l.CourseID]; !ok {
				courseOrder = append(courseOrder, l.CourseID)
			}
			partByCourse[l.CourseID] = append(partByCourse[l.CourseID], l)
		}

		for w := domain.Mon; w <= domain.Fri; w++ {
			sum := sumSizedDayBools(e.Vars, wholeCounted, w)

			for _, courseID := range courseOrder {
				lessons := partByCourse[courseID]
				dayBools := make([]solverapi.IntVar, len(lessons))
				for i, l := range lessons {
					dayBools[i] = e.Model.AsIntVar(e.Vars.Lessons[l.ID].DayBool[w])
				}
				takesPlace := e.Model.NewBoolVar(fmt.Sprintf("cohort%d_course%d_takesplace_%s", cohort.ID, courseID, w))
				e.Model.AddMaxEquality(e.Model.AsIntVar(takesPlace), dayBools)
				// Part-cohort lessons of one course are assumed equal
				// length; any member's size is the course's.
				sum.AddBoolTerm(takesPlace, int64(lessons[0].TimeslotSize))
			}

			e.Model.AddLessOrEqual(sum, intConst(cohort.MaxLessonsPerDay))
		}
	}
}
