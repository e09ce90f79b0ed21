package loader

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
)

// courseRecord mirrors one entry of courses.json.
type courseRecord struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	OnlyForenoon        bool   `json:"only_forenoon"`
	AllInOneBlock       bool   `json:"all_in_one_block"`
	IsLecture           bool   `json:"is_lecture"`
	OnePerDayPerTeacher bool   `json:"one_per_day_per_teacher"`
	PossibleRoomIDs     []int  `json:"possible_room_ids"`
	CohortIDs           []int  `json:"cohort_ids"`
}

var courseTypes = map[string]domain.CourseType{
	string(domain.CourseTypeLecture):  domain.CourseTypeLecture,
	string(domain.CourseTypeTutorial): domain.CourseTypeTutorial,
	string(domain.CourseTypeLab):      domain.CourseTypeLab,
}

func loadCourses(path string) ([]domain.Course, error) {
	var records []courseRecord
	if err := decodeJSON(path, &records); err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(records))
	for _, c := range records {
		courseType, ok := courseTypes[c.Type]
		if !ok {
			return nil, fmt.Errorf("course %d: unknown type %q", c.ID, c.Type)
		}

		courses = append(courses, domain.Course{
			ID:                  c.ID,
			Name:                c.Name,
			Type:                courseType,
			OnlyForenoon:        c.OnlyForenoon,
			AllInOneBlock:       c.AllInOneBlock,
			IsLecture:           c.IsLecture,
			OnePerDayPerTeacher: c.OnePerDayPerTeacher,
			PossibleRoomIDs:     c.PossibleRoomIDs,
			CohortIDs:           c.CohortIDs,
		})
	}
	return courses, nil
}
