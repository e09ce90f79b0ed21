package hardconstraints

import "github.com/schedulekit/timetable/internal/domain"

// countedLessonsForTeacher builds the set of lessons that count toward a
// teacher's daily load: every lesson taught by the teacher that belongs to
// no same-time group, plus the single longest lesson of each same-time
// group that intersects the teacher (one of its members is taught by the
// teacher). This avoids counting a shared same-time block once per member
// lesson.
func (e *Encoder) countedLessonsForTeacher(teacherID int) []domain.Lesson {
	seenGroup := make(map[int]bool)
	var out []domain.Lesson
	for _, l := range e.Cat.LessonsOfTeacher(teacherID) {
		others, grouped := e.Cat.SameTimeGroup(l.ID)
		if !grouped {
			out = append(out, l)
			continue
		}
		full := append([]domain.Lesson{l}, others...)
		key := groupKey(full)
		if seenGroup[key] {
			continue
		}
		seenGroup[key] = true
		out = append(out, longestOfGroup(full))
	}
	return out
}

// countedWholeCohortLessonsForCohort builds the analogous counted set for
// a cohort's whole-cohort lessons: ungrouped whole-cohort lessons, plus
// one representative per intersecting same-time group. The tie-break on
// the representative prefers the part-cohort reading: a whole-cohort
// member of a mixed group is only the representative when it is strictly
// longer than every part-cohort sibling in the group, otherwise the
// per-course part-cohort day term already counts it and it is dropped here
// to avoid double counting.
func (e *Encoder) countedWholeCohortLessonsForCohort(cohortID int) []domain.Lesson {
	seenGroup := make(map[int]bool)
	var out []domain.Lesson
	for _, l := range e.Cat.WholeCohortLessonsOfCohort(cohortID) {
		others, grouped := e.Cat.SameTimeGroup(l.ID)
		if !grouped {
			out = append(out, l)
			continue
		}
		full := append([]domain.Lesson{l}, others...)
		key := groupKey(full)
		if seenGroup[key] {
			continue
		}
		seenGroup[key] = true

		rep := longestOfGroupPreferPartCohort(full)
		if rep.WholeSemesterGroup {
			out = append(out, rep)
		}
		// If the representative turned out to be a part-cohort lesson, the
		// whole-cohort side contributes nothing for this group; the
		// per-course part-cohort day term covers it instead.
	}
	return out
}

func groupKey(lessons []domain.Lesson) int {
	key := lessons[0].ID
	for _, l := range lessons[1:] {
		if l.ID < key {
			key = l.ID
		}
	}
	return key
}

// longestOfGroupPreferPartCohort picks the longest lesson in the group;
// ties are broken in favor of a part-cohort lesson.
func longestOfGroupPreferPartCohort(lessons []domain.Lesson) domain.Lesson {
	best := lessons[0]
	for _, l := range lessons[1:] {
		if l.TimeslotSize > best.TimeslotSize {
			best = l
			continue
		}
		if l.TimeslotSize == best.TimeslotSize && best.WholeSemesterGroup && !l.WholeSemesterGroup {
			best = l
		}
	}
	return best
}
