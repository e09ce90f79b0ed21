package validator

import (
	"sort"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
)

// validateTeacherTime checks that no teacher is booked into two lessons at
// the same timeslot. Lessons that explicitly take place at the same time
// share their start slots, so collisions inside one same-time group are
// not violations.
func validateTeacherTime(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, teacher := range cat.Teachers {
		occupied := make(map[int]int) // slot id -> lesson id already seen
		for _, l := range cat.LessonsOfTeacher(teacher.ID) {
			group := sameTimeSetIncludingSelf(cat, l)
			for _, ts := range sol.TimeslotsOf(l.ID) {
				other, ok := occupied[ts.ID]
				if ok && other != l.ID && !group[other] {
					r.add("teacher-time", "teacher %d double-booked at slot %d (lessons %d and %d)", teacher.ID, ts.ID, other, l.ID)
					continue
				}
				occupied[ts.ID] = l.ID
			}
		}
	}
}

// validateRoomTime checks that no room hosts two lessons at the same
// timeslot, again excepting lessons of one same-time group, which are
// allowed to share a room on purpose.
func validateRoomTime(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, slotID := range sol.AllTimeslotIDs() {
		seen := make(map[int]domain.Lesson) // room id -> lesson
		for _, p := range sol.PlacementsAt(slotID) {
			other, ok := seen[p.Room.ID]
			if ok && other.ID != p.Lesson.ID {
				group := sameTimeSetIncludingSelf(cat, other)
				if !group[p.Lesson.ID] {
					r.add("room-time", "room %d double-booked at slot %d (lessons %d and %d)", p.Room.ID, slotID, other.ID, p.Lesson.ID)
					continue
				}
			}
			seen[p.Room.ID] = p.Lesson
		}
	}
}

// validateCohortTime checks that a cohort never has to be in two places at
// once. More than one lesson at a slot is fine in exactly two situations:
// every lesson at the slot is a part-cohort lesson (parallel lab groups),
// or the lessons all belong to one same-time group. In the part-cohort
// case, no course may contribute two lessons to the same slot unless those
// two are themselves same-time partners.
func validateCohortTime(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, cohort := range cat.Cohorts {
		occupied := make(map[int][]domain.Lesson)
		for _, l := range cat.LessonsOfCohort(cohort.ID) {
			for _, ts := range sol.TimeslotsOf(l.ID) {
				occupied[ts.ID] = append(occupied[ts.ID], l)
			}
		}
		slotIDs := make([]int, 0, len(occupied))
		for slotID := range occupied {
			slotIDs = append(slotIDs, slotID)
		}
		sort.Ints(slotIDs)
		for _, slotID := range slotIDs {
			lessons := occupied[slotID]
			if len(lessons) < 2 {
				continue
			}

			allPart := true
			for _, l := range lessons {
				if l.WholeSemesterGroup {
					allPart = false
					break
				}
			}

			if !allPart && !allSameGroup(cat, lessons) {
				r.add("cohort-time", "cohort %d attends %d lessons at slot %d", cohort.ID, len(lessons), slotID)
				continue
			}

			if allPart {
				perCourse := make(map[int]domain.Lesson)
				for _, l := range lessons {
					prev, ok := perCourse[l.CourseID]
					if ok && !sameTimeSetIncludingSelf(cat, prev)[l.ID] {
						r.add("cohort-time", "cohort %d has two lessons of course %d at slot %d", cohort.ID, l.CourseID, slotID)
					}
					perCourse[l.CourseID] = l
				}
			}
		}
	}
}

// allSameGroup reports whether every lesson in the set belongs to a single
// same-time equivalence class (a legitimate shared start, not a collision).
func allSameGroup(cat *domain.Catalog, lessons []domain.Lesson) bool {
	if len(lessons) == 0 {
		return true
	}
	group := sameTimeSetIncludingSelf(cat, lessons[0])
	for _, l := range lessons[1:] {
		if !group[l.ID] {
			return false
		}
	}
	return true
}
