package validator

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
)

// validateRoomNotAvailable checks that a lesson never occupies one of its
// assigned room's blocked timeslots.
func validateRoomNotAvailable(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, l := range cat.Lessons {
		room, ok := sol.RoomOf(l.ID)
		if !ok || len(room.NotAvailableTimeslotIDs) == 0 {
			continue
		}
		blocked := toSet(room.NotAvailableTimeslotIDs)
		for _, ts := range sol.TimeslotsOf(l.ID) {
			if blocked[ts.ID] {
				r.add("room-not-available", "lesson %d placed in room %d at blocked slot %d", l.ID, room.ID, ts.ID)
			}
		}
	}
}

// validateTeacherNotAvailable confirms no extracted placement lands on one
// of a teacher's blocked slots. The encoders handle this by narrowing the
// start-slot domains, so a failure here means extraction went wrong, not
// just encoding.
func validateTeacherNotAvailable(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, teacher := range cat.Teachers {
		if len(teacher.NotAvailableTimeslotIDs) == 0 {
			continue
		}
		blocked := toSet(teacher.NotAvailableTimeslotIDs)
		for _, l := range cat.LessonsOfTeacher(teacher.ID) {
			for _, ts := range sol.TimeslotsOf(l.ID) {
				if blocked[ts.ID] {
					r.add("teacher-not-available", "teacher %d placed at blocked slot %d by lesson %d", teacher.ID, ts.ID, l.ID)
				}
			}
		}
	}
}

func toSet(ids []int) map[int]bool {
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
