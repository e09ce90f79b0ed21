package hardconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/solverapi"
)

// AddRoomNotAvailable keeps lessons out of a room's blocked timeslots.
// Room choice is a decision variable, so this cannot be folded into the
// start-slot domain the way teacher unavailability is; it is gated by an
// in-room literal instead.
func (e *Encoder) AddRoomNotAvailable() {
	for _, room := range e.Cat.Rooms {
		if len(room.NotAvailableTimeslotIDs) == 0 {
			continue
		}
		for _, lesson := range e.Cat.Lessons {
			if !e.effectiveRoomIDs(lesson.CourseID)[room.ID] {
				continue
			}
			lv := e.Vars.Lessons[lesson.ID]

			inRoom := e.Model.NewBoolVar(fmt.Sprintf("in_r%d_l%d", room.ID, lesson.ID))
			e.Model.AddEquality(lv.Room, solverapi.Const(int64(room.ID))).OnlyEnforceIf(solverapi.Lit(inRoom))
			e.Model.AddNotEqual(lv.Room, solverapi.Const(int64(room.ID))).OnlyEnforceIf(solverapi.Lit(inRoom).Not())

			for _, slotID := range room.NotAvailableTimeslotIDs {
				for _, t := range lv.Start {
					e.Model.AddNotEqual(t, solverapi.Const(int64(slotID))).OnlyEnforceIf(solverapi.Lit(inRoom))
				}
			}
		}
	}
}
