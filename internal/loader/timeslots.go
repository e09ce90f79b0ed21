package loader

import (
	"os"

	"github.com/schedulekit/timetable/internal/domain"
)

// timeslotRecord mirrors one entry of the optional timeslots.json.
type timeslotRecord struct {
	ID          int    `json:"id"`
	Weekday     string `json:"weekday"`
	NumberInDay int    `json:"number_in_day"`
}

// loadTimeslots reads timeslots.json if present; otherwise it synthesizes
// the canonical Monday..Friday grid at slotsPerDay slots per day, matching
// domain.SlotID's contiguous numbering.
func loadTimeslots(path string, slotsPerDay int) ([]domain.Timeslot, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return synthesizeGrid(slotsPerDay), nil
	}

	var records []timeslotRecord
	if err := decodeJSON(path, &records); err != nil {
		return nil, err
	}

	timeslots := make([]domain.Timeslot, 0, len(records))
	for _, r := range records {
		weekday, ok := domain.ParseWeekday(r.Weekday)
		if !ok || weekday == domain.NoWeekday {
			return nil, badWeekday("timeslot", r.ID, "weekday", r.Weekday)
		}
		timeslots = append(timeslots, domain.Timeslot{
			ID:          r.ID,
			Weekday:     weekday,
			NumberInDay: r.NumberInDay,
		})
	}
	return timeslots, nil
}

func synthesizeGrid(slotsPerDay int) []domain.Timeslot {
	var timeslots []domain.Timeslot
	for day := domain.Mon; day <= domain.Fri; day++ {
		for n := 1; n <= slotsPerDay; n++ {
			timeslots = append(timeslots, domain.Timeslot{
				ID:          domain.SlotID(day, n, slotsPerDay),
				Weekday:     day,
				NumberInDay: n,
			})
		}
	}
	return timeslots
}
