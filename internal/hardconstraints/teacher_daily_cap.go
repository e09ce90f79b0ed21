package hardconstraints

import "github.com/schedulekit/timetable/internal/domain"

// AddMaxLessonsPerDayTeacher caps a teacher's total lesson-timeslots on
// any one day at max_lessons_per_day.
func (e *Encoder) AddMaxLessonsPerDayTeacher() {
	for _, teacher := range e.Cat.Teachers {
		counted := e.countedLessonsForTeacher(teacher.ID)
		if len(counted) == 0 {
			continue
		}
		tv := e.Vars.Teachers[teacher.ID]
		for w := domain.Mon; w <= domain.Fri; w++ {
			sum := sumSizedDayBools(e.Vars, counted, w)
			e.Model.AddLessOrEqual(sum, intConst(tv.MaxLessonsPerDay))
		}
	}
}
