package softconstraints

import "github.com/schedulekit/timetable/internal/solverapi"

// addFreeDayPenalties charges LessonsOnFreeDayPenalty for every lesson of
// a cohort that lands on the cohort's wished free day.
func (e *Encoder) addFreeDayPenalties(obj *solverapi.LinearExpr) {
	for _, cohort := range e.Cat.Cohorts {
		if !cohort.HasFreeDay() {
			continue
		}
		for _, l := range e.Cat.LessonsOfCohort(cohort.ID) {
			lv := e.Vars.Lessons[l.ID]
			if b, ok := lv.DayBool[cohort.FreeDay]; ok {
				obj.AddBoolTerm(b, LessonsOnFreeDayPenalty)
			}
		}
	}
}
