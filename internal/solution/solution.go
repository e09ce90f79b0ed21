// Package solution holds the materialized result of one feasible search
// state and the extraction logic that builds it from solver variable
// values. A Solution is three parallel lookups over the same placements:
// by timeslot, by lesson to room, and by lesson to its ordered slots.
package solution

import (
	"sort"

	"github.com/schedulekit/timetable/internal/domain"
)

// Placement is one (lesson, room) occupying one timeslot, the unit the
// per-slot map holds.
type Placement struct {
	Lesson domain.Lesson
	Room   domain.Room
}

// Solution is a read-only view of one feasible assignment plus a reference
// to the Entity Graph it was built against.
type Solution struct {
	Index          int
	ObjectiveValue float64
	Catalog        *domain.Catalog

	bySlot    map[int][]Placement
	roomOf    map[int]domain.Room
	slotsOf   map[int][]domain.Timeslot
}

// New builds an empty Solution ready to receive placements.
func New(index int, objectiveValue float64, cat *domain.Catalog) *Solution {
	return &Solution{
		Index:          index,
		ObjectiveValue: objectiveValue,
		Catalog:        cat,
		bySlot:         make(map[int][]Placement),
		roomOf:         make(map[int]domain.Room),
		slotsOf:        make(map[int][]domain.Timeslot),
	}
}

// Add records that lesson occupies timeslot in room. Called once per
// occupied slot, by the Extractor.
func (s *Solution) Add(lesson domain.Lesson, room domain.Room, timeslot domain.Timeslot) {
	s.bySlot[timeslot.ID] = append(s.bySlot[timeslot.ID], Placement{Lesson: lesson, Room: room})
	s.roomOf[lesson.ID] = room
	s.slotsOf[lesson.ID] = append(s.slotsOf[lesson.ID], timeslot)
}

// Finalize sorts each per-lesson slot list and per-slot placement list
// into a deterministic order; called once after every Add.
func (s *Solution) Finalize() {
	for id := range s.slotsOf {
		sort.Slice(s.slotsOf[id], func(i, j int) bool { return s.slotsOf[id][i].ID < s.slotsOf[id][j].ID })
	}
	for id := range s.bySlot {
		sort.Slice(s.bySlot[id], func(i, j int) bool { return s.bySlot[id][i].Lesson.ID < s.bySlot[id][j].Lesson.ID })
	}
}

// PlacementsAt returns every (lesson, room) occupying the given timeslot,
// ascending by lesson id.
func (s *Solution) PlacementsAt(timeslotID int) []Placement {
	return s.bySlot[timeslotID]
}

// RoomOf returns the room a lesson was assigned to.
func (s *Solution) RoomOf(lessonID int) (domain.Room, bool) {
	r, ok := s.roomOf[lessonID]
	return r, ok
}

// TimeslotsOf returns a lesson's occupied timeslots, ascending by id.
func (s *Solution) TimeslotsOf(lessonID int) []domain.Timeslot {
	return s.slotsOf[lessonID]
}

// AllTimeslotIDs returns every timeslot id that has at least one placement,
// ascending.
func (s *Solution) AllTimeslotIDs() []int {
	ids := make([]int, 0, len(s.bySlot))
	for id := range s.bySlot {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
