package solution

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// Extract builds a Solution from one feasible incumbent by walking every
// lesson's slot variables and room variable, adding one placement per
// occupied slot.
func Extract(reader solverapi.ValueReader, index int, cat *domain.Catalog, vars *varfactory.Tables) *Solution {
	sol := New(index, reader.ObjectiveValue(), cat)

	for _, lesson := range cat.Lessons {
		lv := vars.Lessons[lesson.ID]
		roomID := int(reader.Value(lv.Room))
		room, _ := cat.Room(roomID)

		for _, t := range lv.Start {
			slotID := int(reader.Value(t))
			ts, ok := cat.Timeslot(slotID)
			if !ok {
				continue
			}
			sol.Add(lesson, room, ts)
		}
	}

	sol.Finalize()
	return sol
}
