package loader

import "github.com/schedulekit/timetable/internal/domain"

// teacherRecord mirrors one entry of teachers.json.
type teacherRecord struct {
	ID                      int    `json:"id"`
	Abbreviation            string `json:"abbreviation"`
	StudyDay1               string `json:"study_day_1"`
	StudyDay2               string `json:"study_day_2"`
	MaxLessonsPerDay        int    `json:"max_lessons_per_day"`
	MaxLecturesPerDay       int    `json:"max_lectures_per_day"`
	MaxLecturesAsBlock      int    `json:"max_lectures_as_block"`
	AvoidFreeDayGaps        bool   `json:"avoid_free_day_gaps"`
	NotAvailableTimeslotIDs []int  `json:"not_available_timeslots"`
}

func loadTeachers(path string) ([]domain.Teacher, error) {
	var records []teacherRecord
	if err := decodeJSON(path, &records); err != nil {
		return nil, err
	}

	teachers := make([]domain.Teacher, 0, len(records))
	for _, t := range records {
		studyDay1, ok := domain.ParseWeekday(t.StudyDay1)
		if !ok {
			return nil, badWeekday("teacher", t.ID, "study_day_1", t.StudyDay1)
		}
		studyDay2, ok := domain.ParseWeekday(t.StudyDay2)
		if !ok {
			return nil, badWeekday("teacher", t.ID, "study_day_2", t.StudyDay2)
		}

		maxLessonsPerDay := t.MaxLessonsPerDay
		if maxLessonsPerDay <= 0 {
			maxLessonsPerDay = domain.DefaultMaxLessonsPerDayTeacher
		}
		maxLecturesPerDay := t.MaxLecturesPerDay
		if maxLecturesPerDay <= 0 {
			maxLecturesPerDay = domain.DefaultMaxLecturesPerDayTeacher
		}
		maxLecturesAsBlock := t.MaxLecturesAsBlock
		if maxLecturesAsBlock <= 0 {
			maxLecturesAsBlock = domain.DefaultMaxLecturesAsBlockTeacher
		}

		teachers = append(teachers, domain.Teacher{
			ID:                      t.ID,
			Abbreviation:            t.Abbreviation,
			StudyDay1:               studyDay1,
			StudyDay2:               studyDay2,
			MaxLessonsPerDay:        maxLessonsPerDay,
			MaxLecturesPerDay:       maxLecturesPerDay,
			MaxLecturesAsBlock:      maxLecturesAsBlock,
			AvoidFreeDayGaps:        t.AvoidFreeDayGaps,
			NotAvailableTimeslotIDs: t.NotAvailableTimeslotIDs,
		})
	}
	return teachers, nil
}
