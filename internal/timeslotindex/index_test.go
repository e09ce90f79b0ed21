package timeslotindex

import (
	"testing"

	"github.com/schedulekit/timetable/internal/domain"
)

func grid(slotsPerDay int) []domain.Timeslot {
	var out []domain.Timeslot
	id := 1
	for w := domain.Mon; w <= domain.Fri; w++ {
		for n := 1; n <= slotsPerDay; n++ {
			out = append(out, domain.Timeslot{ID: id, Weekday: w, NumberInDay: n})
			id++
		}
	}
	return out
}

func TestBuildOrdersCanonically(t *testing.T) {
	// Feed timeslots in shuffled order; Build must still report them in
	// (weekday, number_in_day) order regardless of input order.
	shuffled := []domain.Timeslot{
		{ID: 7, Weekday: domain.Tue, NumberInDay: 1},
		{ID: 1, Weekday: domain.Mon, NumberInDay: 1},
		{ID: 2, Weekday: domain.Mon, NumberInDay: 2},
	}
	idx := Build(shuffled, 6)
	all := idx.All()
	if len(all) != 3 || all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 7 {
		t.Fatalf("expected canonical order 1,2,7, got %+v", all)
	}
}

func TestDayPartitionsBySlotsPerDay(t *testing.T) {
	idx := Build(grid(6), 6)
	mon := idx.Day(domain.Mon)
	if len(mon) != 6 {
		t.Fatalf("expected 6 Monday slots, got %d", len(mon))
	}
	for i, ts := range mon {
		if ts.NumberInDay != i+1 {
			t.Fatalf("Monday slots not in NumberInDay order: %+v", mon)
		}
	}
	days := idx.Days()
	if len(days) != domain.WeekdaysPerWeek {
		t.Fatalf("expected %d day groups, got %d", domain.WeekdaysPerWeek, len(days))
	}
}

func TestForenoonIsFirstThreeSlotsOfEachDay(t *testing.T) {
	idx := Build(grid(6), 6)
	for w := domain.Mon; w <= domain.Fri; w++ {
		for _, ts := range idx.Day(w) {
			want := ts.NumberInDay <= domain.ForenoonSlotCount
			if got := idx.IsForenoon(ts.ID); got != want {
				t.Fatalf("IsForenoon(%d) = %v, want %v", ts.ID, got, want)
			}
		}
	}
	forenoonIDs := idx.ForenoonSlotIDs()
	if len(forenoonIDs) != domain.WeekdaysPerWeek*domain.ForenoonSlotCount {
		t.Fatalf("expected %d forenoon slots total, got %d", domain.WeekdaysPerWeek*domain.ForenoonSlotCount, len(forenoonIDs))
	}
}

func TestSlotIDMatchesDomainSlotID(t *testing.T) {
	idx := Build(grid(6), 6)
	if got := idx.SlotID(domain.Wed, 3); got != domain.SlotID(domain.Wed, 3, 6) {
		t.Fatalf("Index.SlotID diverged from domain.SlotID: %d vs %d", got, domain.SlotID(domain.Wed, 3, 6))
	}
}
