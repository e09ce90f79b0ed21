package hardconstraints

import "github.com/schedulekit/timetable/internal/solverapi"

// AddTeacherStudyDay ensures every teacher with study-day choices gets at
// least one of the two chosen weekdays free of lessons.
func (e *Encoder) AddTeacherStudyDay() {
	for _, teacher := range e.Cat.Teachers {
		if !teacher.HasStudyDay() {
			continue
		}
		lessons := e.Cat.LessonsOfTeacher(teacher.ID)
		if len(lessons) == 0 {
			continue
		}
		tv := e.Vars.Teachers[teacher.ID]

		for _, l := range lessons {
			lv := e.Vars.Lessons[l.ID]
			e.Model.AddNotEqual(lv.Weekday, solverapi.Const(int64(teacher.StudyDay1))).
				OnlyEnforceIf(solverapi.Lit(tv.StudyDay1Bool))

			if tv.HasStudyDay2 {
				e.Model.AddNotEqual(lv.Weekday, solverapi.Const(int64(teacher.StudyDay2))).
					OnlyEnforceIf(solverapi.Lit(tv.StudyDay2Bool))
			}
		}

		if tv.HasStudyDay2 {
			e.Model.AddBoolOr(solverapi.Lit(tv.StudyDay1Bool), solverapi.Lit(tv.StudyDay2Bool))
		} else {
			e.Model.AddBoolOr(solverapi.Lit(tv.StudyDay1Bool))
		}
	}
}
