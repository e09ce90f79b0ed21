package hardconstraints

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
)

// AddMaxLessonsPerDayCourse spreads a course across the week: outside of
// all-in-one-block courses, part-cohort lessons, and same-time-group
// members, a course may not have two of its lessons on the same day.
func (e *Encoder) AddMaxLessonsPerDayCourse() {
	for _, course := range e.Cat.Courses {
		if course.AllInOneBlock {
			continue
		}
		var eligible []domain.Lesson
		for _, l := range e.Cat.LessonsOfCourse(course.ID) {
			if !l.WholeSemesterGroup {
				continue
			}
			if _, grouped := e.Cat.SameTimeGroup(l.ID); grouped {
				continue
			}
			eligible = append(eligible, l)
		}
		if len(eligible) < 2 {
			continue
		}
		for w := domain.Mon; w <= domain.Fri; w++ {
			sum := solverapi.NewLinearExpr()
			for _, l := range eligible {
				sum.AddBoolTerm(e.Vars.Lessons[l.ID].DayBool[w], 1)
			}
			e.Model.AddLessOrEqual(sum, intConst(1))
		}
	}
}
