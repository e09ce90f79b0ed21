package validator

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
)

// validateStudyDays checks that every teacher with study-day choices has at
// least one of the two chosen weekdays free of lessons.
func validateStudyDays(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, teacher := range cat.Teachers {
		if !teacher.HasStudyDay() {
			continue
		}
		used := make(map[domain.Weekday]bool)
		for _, l := range cat.LessonsOfTeacher(teacher.ID) {
			for _, ts := range sol.TimeslotsOf(l.ID) {
				used[ts.Weekday] = true
			}
		}
		free1 := !used[teacher.StudyDay1]
		free2 := !used[teacher.StudyDay2]
		if !free1 && !free2 {
			r.add("study-day", "teacher %d has lessons on both study days", teacher.ID)
		}
	}
}
