package loader

import "github.com/schedulekit/timetable/internal/domain"

// cohortRecord mirrors one entry of cohorts.json.
type cohortRecord struct {
	ID               int    `json:"id"`
	Abbreviation     string `json:"abbreviation"`
	MaxLessonsPerDay int    `json:"max_lessons_per_day"`
	FreeDay          string `json:"free_day"`
}

func loadCohorts(path string) ([]domain.Cohort, error) {
	var records []cohortRecord
	if err := decodeJSON(path, &records); err != nil {
		return nil, err
	}

	cohorts := make([]domain.Cohort, 0, len(records))
	for _, c := range records {
		freeDay, ok := domain.ParseWeekday(c.FreeDay)
		if !ok {
			return nil, badWeekday("cohort", c.ID, "free_day", c.FreeDay)
		}

		maxLessonsPerDay := c.MaxLessonsPerDay
		if maxLessonsPerDay <= 0 {
			maxLessonsPerDay = domain.DefaultMaxLessonsPerDayCohort
		}

		cohorts = append(cohorts, domain.Cohort{
			ID:               c.ID,
			Abbreviation:     c.Abbreviation,
			MaxLessonsPerDay: maxLessonsPerDay,
			FreeDay:          freeDay,
		})
	}
	return cohorts, nil
}
