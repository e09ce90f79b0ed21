package validator

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/timeslotindex"
)

// capOrDefault substitutes the catalog-wide default when an entity's cap
// was never set (hand-built catalogs skip the loader's defaulting).
func capOrDefault(cap, def int) int {
	if cap <= 0 {
		return def
	}
	return cap
}

// onDay reports whether any of the lesson's extracted slots fall on weekday w.
func onDay(sol *solution.Solution, l domain.Lesson, w domain.Weekday) bool {
	for _, ts := range sol.TimeslotsOf(l.ID) {
		if ts.Weekday == w {
			return true
		}
	}
	return false
}

// countedDayLoad sums timeslot sizes for the lessons present on weekday w,
// counting each same-time group once at the size of its longest member
// (the group shares one block of slots, so counting every member would
// overstate the load).
func countedDayLoad(sol *solution.Solution, cat *domain.Catalog, lessons []domain.Lesson, w domain.Weekday) int {
	total := 0
	groupMax := make(map[int]int) // group key (lowest member id) -> longest size seen
	for _, l := range lessons {
		if !onDay(sol, l, w) {
			continue
		}
		others, grouped := cat.SameTimeGroup(l.ID)
		if !grouped {
			total += l.TimeslotSize
			continue
		}
		key := l.ID
		for _, o := range others {
			if o.ID < key {
				key = o.ID
			}
		}
		if l.TimeslotSize > groupMax[key] {
			groupMax[key] = l.TimeslotSize
		}
	}
	for _, size := range groupMax {
		total += size
	}
	return total
}

// validateMaxLessonsPerDayTeacher checks every teacher's daily load against
// max_lessons_per_day (the catalog's own cap; the encoder-side lecture-cap
// reduction never touches this field).
func validateMaxLessonsPerDayTeacher(r *Result, sol *solution.Solution, cat *domain.Catalog, _ *timeslotindex.Index) {
	for _, teacher := range cat.Teachers {
		lessons := cat.LessonsOfTeacher(teacher.ID)
		if len(lessons) == 0 {
			continue
		}
		limit := capOrDefault(teacher.MaxLessonsPerDay, domain.DefaultMaxLessonsPerDayTeacher)
		for w := domain.Mon; w <= domain.Fri; w++ {
			if load := countedDayLoad(sol, cat, lessons, w); load > limit {
				r.add("max-lessons-per-day-teacher", "teacher %d has %d lesson-slots on %s, cap is %d", teacher.ID, load, w, limit)
			}
		}
	}
}

// validateMaxLecturesPerDayTeacher checks the per-day lecture-count cap.
func validateMaxLecturesPerDayTeacher(r *Result, sol *solution.Solution, cat *domain.Catalog, _ *timeslotindex.Index) {
	for _, teacher := range cat.Teachers {
		var lectures []domain.Lesson
		for _, l := range cat.LessonsOfTeacher(teacher.ID) {
			course, _ := cat.Course(l.CourseID)
			if course.IsLecture {
				lectures = append(lectures, l)
			}
		}
		if len(lectures) == 0 {
			continue
		}
		limit := capOrDefault(teacher.MaxLecturesPerDay, domain.DefaultMaxLecturesPerDayTeacher)
		for w := domain.Mon; w <= domain.Fri; w++ {
			if load := countedDayLoad(sol, cat, lectures, w); load > limit {
				r.add("max-lectures-per-day-teacher", "teacher %d has %d lecture-slots on %s, cap is %d", teacher.ID, load, w, limit)
			}
		}
	}
}

// validateMaxLessonsPerDayCohort checks every cohort's daily load: the
// whole-cohort lessons counted like a teacher's (same-time groups once),
// plus each course's part-cohort lessons counted once per day regardless of
// how many parallel groups of it run.
func validateMaxLessonsPerDayCohort(r *Result, sol *solution.Solution, cat *domain.Catalog, _ *timeslotindex.Index) {
	for _, cohort := range cat.Cohorts {
		whole := cat.WholeCohortLessonsOfCohort(cohort.ID)
		part := cat.PartCohortLessonsOfCohort(cohort.ID)
		if len(whole) == 0 && len(part) == 0 {
			continue
		}
		for w := domain.Mon; w <= domain.Fri; w++ {
			load := countedDayLoad(sol, cat, whole, w)

			perCourse := make(map[int]int) // course id -> largest part lesson on this day
			for _, l := range part {
				if !onDay(sol, l, w) {
					continue
				}
				if l.TimeslotSize > perCourse[l.CourseID] {
					perCourse[l.CourseID] = l.TimeslotSize
				}
			}
			for _, size := range perCourse {
				load += size
			}

			if limit := capOrDefault(cohort.MaxLessonsPerDay, domain.DefaultMaxLessonsPerDayCohort); load > limit {
				r.add("max-lessons-per-day-cohort", "cohort %d has %d lesson-slots on %s, cap is %d", cohort.ID, load, w, limit)
			}
		}
	}
}

// validateOneLessonPerDayPerCourse checks that outside all-in-one-block
// courses, a course never has two whole-cohort, ungrouped lessons on the
// same day: the number of distinct weekdays used must equal the number of
// such lessons.
func validateOneLessonPerDayPerCourse(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, course := range cat.Courses {
		if course.AllInOneBlock {
			continue
		}
		var eligible []domain.Lesson
		for _, l := range cat.LessonsOfCourse(course.ID) {
			if !l.WholeSemesterGroup {
				continue
			}
			if _, grouped := cat.SameTimeGroup(l.ID); grouped {
				continue
			}
			eligible = append(eligible, l)
		}
		if len(eligible) < 2 {
			continue
		}
		seen := make(map[domain.Weekday]int)
		for _, l := range eligible {
			slots := sol.TimeslotsOf(l.ID)
			if len(slots) == 0 {
				continue
			}
			// All slots of one lesson share a weekday, so the first is enough.
			w := slots[0].Weekday
			if other, ok := seen[w]; ok && other != l.ID {
				r.add("one-lesson-per-day-course", "course %d has two lessons on %s (lessons %d and %d)", course.ID, w, other, l.ID)
			}
			seen[w] = l.ID
		}
	}
}
