package validator

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/timeslotindex"
)

// validateAllInOneBlock checks that an all-in-one-block course's lessons,
// taken together, occupy one contiguous gap-free span on a single weekday.
func validateAllInOneBlock(r *Result, sol *solution.Solution, cat *domain.Catalog, _ *timeslotindex.Index) {
	for _, course := range cat.Courses {
		if !course.AllInOneBlock {
			continue
		}
		lessons := cat.LessonsOfCourse(course.ID)
		var all []domain.Timeslot
		for _, l := range lessons {
			all = append(all, sol.TimeslotsOf(l.ID)...)
		}
		if len(all) <= 1 {
			continue
		}
		wd := all[0].Weekday
		min, max := all[0].NumberInDay, all[0].NumberInDay
		for _, ts := range all[1:] {
			if ts.Weekday != wd {
				r.add("course-block", "course %d's all-in-one-block lessons span more than one weekday", course.ID)
				wd = -1
				break
			}
			if ts.NumberInDay < min {
				min = ts.NumberInDay
			}
			if ts.NumberInDay > max {
				max = ts.NumberInDay
			}
		}
		if wd == -1 {
			continue
		}
		if max-min+1 != len(all) {
			r.add("course-block", "course %d's all-in-one-block lessons are not a contiguous block", course.ID)
		}
	}
}

// validateBlocksOnlyInSameRoom checks the companion rule: every lesson of
// an all-in-one-block course lands in the same room.
func validateBlocksOnlyInSameRoom(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, course := range cat.Courses {
		if !course.AllInOneBlock {
			continue
		}
		lessons := cat.LessonsOfCourse(course.ID)
		if len(lessons) < 2 {
			continue
		}
		first, ok := sol.RoomOf(lessons[0].ID)
		if !ok {
			continue
		}
		for _, l := range lessons[1:] {
			room, ok := sol.RoomOf(l.ID)
			if ok && room.ID != first.ID {
				r.add("course-block", "course %d's block lessons are split across rooms %d and %d", course.ID, first.ID, room.ID)
			}
		}
	}
}
