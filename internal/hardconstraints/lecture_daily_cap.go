package hardconstraints

import "github.com/schedulekit/timetable/internal/domain"

// AddMaxLecturesPerDayTeacher caps a teacher's lecture-timeslots on any
// one day, using the same longest-of-same-time-group counted-set
// semantics as the general daily cap. Must run after
// AddMaxLecturesAsBlockTeacher so it reads the reduced cap.
func (e *Encoder) AddMaxLecturesPerDayTeacher() {
	for _, teacher := range e.Cat.Teachers {
		var lectures []domain.Lesson
		for _, l := range e.countedLessonsForTeacher(teacher.ID) {
			course, _ := e.Cat.Course(l.CourseID)
			if course.IsLecture {
				lectures = append(lectures, l)
			}
		}
		if len(lectures) == 0 {
			continue
		}
		tv := e.Vars.Teachers[teacher.ID]
		for w := domain.Mon; w <= domain.Fri; w++ {
			sum := sumSizedDayBools(e.Vars, lectures, w)
			e.Model.AddLessOrEqual(sum, intConst(tv.MaxLecturesPerDay))
		}
	}
}
