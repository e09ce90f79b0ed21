package validator

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
)

// validateLessonShape checks that every lesson occupies exactly
// TimeslotSize contiguous slots on one weekday.
func validateLessonShape(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, l := range cat.Lessons {
		slots := sol.TimeslotsOf(l.ID)
		if len(slots) != l.TimeslotSize {
			r.add("lesson-shape", "lesson %d occupies %d slots, want %d", l.ID, len(slots), l.TimeslotSize)
			continue
		}
		if len(slots) == 0 {
			continue
		}
		wd := slots[0].Weekday
		for i, ts := range slots {
			if ts.Weekday != wd {
				r.add("lesson-shape", "lesson %d spans more than one weekday", l.ID)
				break
			}
			if i > 0 && ts.NumberInDay != slots[i-1].NumberInDay+1 {
				r.add("lesson-shape", "lesson %d is not a contiguous block", l.ID)
				break
			}
		}
	}
}
