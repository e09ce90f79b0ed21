package validator

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/timeslotindex"
)

// validateForenoon checks that a forenoon-only course never occupies a slot
// past the forenoon window.
func validateForenoon(r *Result, sol *solution.Solution, cat *domain.Catalog, idx *timeslotindex.Index) {
	for _, course := range cat.Courses {
		if !course.OnlyForenoon {
			continue
		}
		for _, l := range cat.LessonsOfCourse(course.ID) {
			for _, ts := range sol.TimeslotsOf(l.ID) {
				if !idx.IsForenoon(ts.ID) {
					r.add("forenoon", "course %d lesson %d occupies an afternoon slot %d", course.ID, l.ID, ts.ID)
				}
			}
		}
	}
}

// validateGivenTimeslots checks that a lesson with an explicit
// available-timeslot restriction occupies only slots from that set.
func validateGivenTimeslots(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, l := range cat.Lessons {
		if len(l.AvailableTimeslotIDs) == 0 {
			continue
		}
		allowed := toSet(l.AvailableTimeslotIDs)
		for _, ts := range sol.TimeslotsOf(l.ID) {
			if !allowed[ts.ID] {
				r.add("given-timeslots", "lesson %d occupies slot %d outside its allowed set", l.ID, ts.ID)
			}
		}
	}
}

// validateOneCoursePerDayPerTeacher checks that a teacher never teaches two
// distinct one-per-day courses on the same weekday.
func validateOneCoursePerDayPerTeacher(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, teacher := range cat.Teachers {
		byDay := make(map[domain.Weekday]map[int]bool)
		for _, l := range cat.LessonsOfTeacher(teacher.ID) {
			course, _ := cat.Course(l.CourseID)
			if !course.OnePerDayPerTeacher {
				continue
			}
			for _, ts := range sol.TimeslotsOf(l.ID) {
				if byDay[ts.Weekday] == nil {
					byDay[ts.Weekday] = make(map[int]bool)
				}
				byDay[ts.Weekday][course.ID] = true
			}
		}
		for w := domain.Mon; w <= domain.Fri; w++ {
			if courses := byDay[w]; len(courses) > 1 {
				r.add("one-course-per-day-teacher", "teacher %d teaches %d one-per-day courses on %s", teacher.ID, len(courses), w)
			}
		}
	}
}

// validateMaxLecturesAsBlock checks that no run of consecutive lecture
// slots for one teacher on one day exceeds max_lectures_as_block.
func validateMaxLecturesAsBlock(r *Result, sol *solution.Solution, cat *domain.Catalog, idx *timeslotindex.Index) {
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
		for w := domain.Mon; w <= domain.Fri; w++ {
			occupied := make(map[int]bool)
			for _, l := range lectures {
				for _, ts := range sol.TimeslotsOf(l.ID) {
					if ts.Weekday == w {
						occupied[ts.NumberInDay] = true
					}
				}
			}
			run, maxRun := 0, 0
			for n := 1; n <= idx.SlotsPerDay(); n++ {
				if occupied[n] {
					run++
					if run > maxRun {
						maxRun = run
					}
				} else {
					run = 0
				}
			}
			if limit := capOrDefault(teacher.MaxLecturesAsBlock, domain.DefaultMaxLecturesAsBlockTeacher); maxRun > limit {
				r.add("lecture-block", "teacher %d has a %d-slot lecture block on %s, cap is %d", teacher.ID, maxRun, w, limit)
			}
		}
	}
}
