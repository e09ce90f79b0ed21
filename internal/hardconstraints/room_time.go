package hardconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
)

// AddRoomUniqueness ensures no two lessons that end up in the same room
// occupy overlapping time. The room choice is itself a decision variable,
// so the time constraints are gated behind a per-pair same-room literal.
func (e *Encoder) AddRoomUniqueness() {
	lessons := e.Cat.Lessons
	for i := 0; i < len(lessons); i++ {
		for j := i + 1; j < len(lessons); j++ {
			li, lj := lessons[i], lessons[j]
			if !e.roomsOverlap(li, lj) {
				continue
			}
			if e.sameGroup(li.ID, lj.ID) {
				continue
			}
			e.addRoomPairConstraint(li, lj)
		}
	}
}

func (e *Encoder) effectiveRoomIDs(courseID int) map[int]bool {
	course, _ := e.Cat.Course(courseID)
	out := make(map[int]bool)
	if len(course.PossibleRoomIDs) == 0 {
		for _, r := range e.Cat.Rooms {
			out[r.ID] = true
		}
		return out
	}
	for _, id := range course.PossibleRoomIDs {
		out[id] = true
	}
	return out
}

func (e *Encoder) roomsOverlap(a, b domain.Lesson) bool {
	ra := e.effectiveRoomIDs(a.CourseID)
	rb := e.effectiveRoomIDs(b.CourseID)
	for id := range ra {
		if rb[id] {
			return true
		}
	}
	return false
}

func (e *Encoder) sameGroup(a, b int) bool {
	others, ok := e.Cat.SameTimeGroup(a)
	if !ok {
		return false
	}
	return containsLesson(others, b)
}

func (e *Encoder) addRoomPairConstraint(li, lj domain.Lesson) {
	lvi, lvj := e.Vars.Lessons[li.ID], e.Vars.Lessons[lj.ID]

	sameRoom := e.Model.NewBoolVar(fmt.Sprintf("sameroom_%d_%d", li.ID, lj.ID))
	e.Model.AddEquality(lvi.Room, lvj.Room).OnlyEnforceIf(solverapi.Lit(sameRoom))
	e.Model.AddNotEqual(lvi.Room, lvj.Room).OnlyEnforceIf(solverapi.Lit(sameRoom).Not())

	if li.TimeslotSize > 1 && lj.TimeslotSize > 1 {
		e.Model.AddNoOverlap(*lvi.Interval, *lvj.Interval).OnlyEnforceIf(solverapi.Lit(sameRoom))
		return
	}

	for k := 0; k < li.TimeslotSize; k++ {
		for l := 0; l < lj.TimeslotSize; l++ {
			e.Model.AddNotEqual(lvi.Start[k], lvj.Start[l]).OnlyEnforceIf(solverapi.Lit(sameRoom))
		}
	}
}
