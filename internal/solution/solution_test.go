package solution

import (
	"testing"

	"github.com/schedulekit/timetable/internal/domain"
)

func TestAddAndFinalizeOrdersDeterministically(t *testing.T) {
	cat := domain.NewCatalog(nil, nil, nil, nil, nil, nil)
	sol := New(1, 12.5, cat)

	l1 := domain.Lesson{ID: 1, TimeslotSize: 2}
	l2 := domain.Lesson{ID: 2, TimeslotSize: 1}
	room := domain.Room{ID: 1, Name: "R1"}
	ts1 := domain.Timeslot{ID: 3, Weekday: domain.Mon, NumberInDay: 3}
	ts2 := domain.Timeslot{ID: 2, Weekday: domain.Mon, NumberInDay: 2}
	ts3 := domain.Timeslot{ID: 2, Weekday: domain.Mon, NumberInDay: 2}

	// Add out of order to exercise Finalize's sort.
	sol.Add(l1, room, ts1)
	sol.Add(l1, room, ts2)
	sol.Add(l2, room, ts3)
	sol.Finalize()

	slots := sol.TimeslotsOf(1)
	if len(slots) != 2 || slots[0].ID != 2 || slots[1].ID != 3 {
		t.Fatalf("expected lesson 1's slots sorted ascending by id, got %+v", slots)
	}

	placements := sol.PlacementsAt(2)
	if len(placements) != 2 || placements[0].Lesson.ID != 1 || placements[1].Lesson.ID != 2 {
		t.Fatalf("expected placements at slot 2 ordered by lesson id, got %+v", placements)
	}

	gotRoom, ok := sol.RoomOf(1)
	if !ok || gotRoom.ID != 1 {
		t.Fatalf("expected lesson 1 in room 1, got %+v ok=%v", gotRoom, ok)
	}

	if sol.Index != 1 || sol.ObjectiveValue != 12.5 {
		t.Fatalf("Index/ObjectiveValue not preserved: %+v", sol)
	}
}

func TestAllTimeslotIDsAscending(t *testing.T) {
	cat := domain.NewCatalog(nil, nil, nil, nil, nil, nil)
	sol := New(0, 0, cat)
	room := domain.Room{ID: 1}
	sol.Add(domain.Lesson{ID: 1}, room, domain.Timeslot{ID: 9})
	sol.Add(domain.Lesson{ID: 2}, room, domain.Timeslot{ID: 1})
	sol.Finalize()

	ids := sol.AllTimeslotIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 9 {
		t.Fatalf("expected ascending [1, 9], got %v", ids)
	}
}

func TestRoomOfMissingLessonReturnsFalse(t *testing.T) {
	cat := domain.NewCatalog(nil, nil, nil, nil, nil, nil)
	sol := New(0, 0, cat)
	if _, ok := sol.RoomOf(42); ok {
		t.Fatalf("expected no room recorded for a lesson never added")
	}
	if slots := sol.TimeslotsOf(42); slots != nil {
		t.Fatalf("expected nil slots for a lesson never added, got %+v", slots)
	}
}
