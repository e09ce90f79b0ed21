package loader

import "github.com/schedulekit/timetable/internal/domain"

// lessonRecord mirrors one entry of lessons.json. SameTimeGroup is
// carried through as the raw string key; Catalog resolves it into the
// symmetric, transitively-closed equivalence classes.
type lessonRecord struct {
	ID                    int    `json:"id"`
	CourseID              int    `json:"course_id"`
	TimeslotSize          int    `json:"timeslot_size"`
	WholeSemesterGroup    bool   `json:"whole_semester_group"`
	TeacherIDs            []int  `json:"teacher_ids"`
	AvailableTimeslotIDs  []int  `json:"available_timeslot_ids"`
	SameTimeGroup         string `json:"same_time_group"`
	ConsecutiveToLessonID int    `json:"consecutive_to_lesson_id"`
}

func loadLessons(path string) ([]domain.Lesson, error) {
	var records []lessonRecord
	if err := decodeJSON(path, &records); err != nil {
		return nil, err
	}

	lessons := make([]domain.Lesson, 0, len(records))
	for _, l := range records {
		lessons = append(lessons, domain.Lesson{
			ID:                    l.ID,
			CourseID:              l.CourseID,
			TimeslotSize:          l.TimeslotSize,
			WholeSemesterGroup:    l.WholeSemesterGroup,
			TeacherIDs:            l.TeacherIDs,
			AvailableTimeslotIDs:  l.AvailableTimeslotIDs,
			SameTimeGroup:         l.SameTimeGroup,
			ConsecutiveToLessonID: l.ConsecutiveToLessonID,
		})
	}
	return lessons, nil
}
