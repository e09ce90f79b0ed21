package hardconstraints

import "github.com/schedulekit/timetable/internal/domain"

// AddOneCoursePerDayPerTeacher keeps a teacher from teaching two different
// one-per-day courses on the same day.
func (e *Encoder) AddOneCoursePerDayPerTeacher() {
	for _, teacher := range e.Cat.Teachers {
		courses := e.onePerDayCoursesOf(teacher.ID)
		for i := 0; i < len(courses); i++ {
			for j := i + 1; j < len(courses); j++ {
				li := e.onePerDayLessonsOf(teacher.ID, courses[i])
				lj := e.onePerDayLessonsOf(teacher.ID, courses[j])
				for _, a := range li {
					for _, b := range lj {
						lva, lvb := e.Vars.Lessons[a.ID], e.Vars.Lessons[b.ID]
						e.Model.AddNotEqual(lva.Weekday, lvb.Weekday)
					}
				}
			}
		}
	}
}

// onePerDayCoursesOf returns the distinct one_per_day_per_teacher courses
// the teacher teaches at least one lesson of, ascending by course id.
func (e *Encoder) onePerDayCoursesOf(teacherID int) []domain.Course {
	seen := make(map[int]bool)
	var out []domain.Course
	for _, l := range e.Cat.LessonsOfTeacher(teacherID) {
		course, _ := e.Cat.Course(l.CourseID)
		if !course.OnePerDayPerTeacher || seen[course.ID] {
			continue
		}
		seen[course.ID] = true
		out = append(out, course)
	}
	return out
}

// onePerDayLessonsOf returns the teacher's lessons of the course, or just
// the first (lowest id) if the course is all-in-one-block: its lessons all
// land on one day anyway, so one representative is enough.
func (e *Encoder) onePerDayLessonsOf(teacherID int, course domain.Course) []domain.Lesson {
	var out []domain.Lesson
	for _, l := range e.Cat.LessonsOfCourse(course.ID) {
		for _, tid := range l.TeacherIDs {
			if tid == teacherID {
				out = append(out, l)
				break
			}
		}
	}
	if course.AllInOneBlock && len(out) > 1 {
		return out[:1]
	}
	return out
}
