package loader

import "github.com/schedulekit/timetable/internal/domain"

// roomRecord mirrors one entry of rooms.json.
type roomRecord struct {
	ID                      int    `json:"id"`
	Name                    string `json:"name"`
	NotAvailableTimeslotIDs []int  `json:"not_available_timeslots"`
}

func loadRooms(path string) ([]domain.Room, error) {
	var records []roomRecord
	if err := decodeJSON(path, &records); err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, 0, len(records))
	for _, r := range records {
		rooms = append(rooms, domain.Room{
			ID:                      r.ID,
			Name:                    r.Name,
			NotAvailableTimeslotIDs: r.NotAvailableTimeslotIDs,
		})
	}
	return rooms, nil
}
