// Package timeslotindex derives the cheap, pure-arithmetic facts about the
// weekly grid that every other encoder repeatedly needs: canonical
// ordering, per-weekday partitions, and the forenoon/afternoon split.
package timeslotindex

import (
	"sort"

	"github.com/schedulekit/timetable/internal/domain"
)

// Index is an immutable view over a Catalog's Timeslots.
type Index struct {
	all         []domain.Timeslot
	byWeekday   map[domain.Weekday][]domain.Timeslot
	forenoon    map[int]bool
	slotsPerDay int
}

// Build computes an Index from the catalog's timeslots. slotsPerDay fixes
// the width of a day (used for slot-id arithmetic); the forenoon set is
// always the first domain.ForenoonSlotCount slots of each day. Pass
// domain.DefaultTimeslotsPerDay when the catalog does not override it.
func Build(timeslots []domain.Timeslot, slotsPerDay int) *Index {
	ix := &Index{
		all:         append([]domain.Timeslot(nil), timeslots...),
		byWeekday:   make(map[domain.Weekday][]domain.Timeslot),
		forenoon:    make(map[int]bool),
		slotsPerDay: slotsPerDay,
	}
	sort.Slice(ix.all, func(i, j int) bool {
		if ix.all[i].Weekday != ix.all[j].Weekday {
			return ix.all[i].Weekday < ix.all[j].Weekday
		}
		return ix.all[i].NumberInDay < ix.all[j].NumberInDay
	})
	for _, t := range ix.all {
		ix.byWeekday[t.Weekday] = append(ix.byWeekday[t.Weekday], t)
		if t.NumberInDay <= domain.ForenoonSlotCount {
			ix.forenoon[t.ID] = true
		}
	}
	return ix
}

// All returns every timeslot in canonical id order.
func (ix *Index) All() []domain.Timeslot { return ix.all }

// Day returns the slots of one weekday, NumberInDay ascending.
func (ix *Index) Day(w domain.Weekday) []domain.Timeslot { return ix.byWeekday[w] }

// Days returns the five per-weekday groups, Monday first.
func (ix *Index) Days() [][]domain.Timeslot {
	out := make([][]domain.Timeslot, 0, domain.WeekdaysPerWeek)
	for w := domain.Mon; w <= domain.Fri; w++ {
		out = append(out, ix.byWeekday[w])
	}
	return out
}

// IsForenoon reports whether a slot id falls within the first
// domain.ForenoonSlotCount slots of its day.
func (ix *Index) IsForenoon(slotID int) bool { return ix.forenoon[slotID] }

// ForenoonSlotIDs returns every slot id considered forenoon, across all days.
func (ix *Index) ForenoonSlotIDs() []int {
	ids := make([]int, 0, len(ix.forenoon))
	for _, t := range ix.all {
		if ix.forenoon[t.ID] {
			ids = append(ids, t.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

// SlotsPerDay is the configured width of one day.
func (ix *Index) SlotsPerDay() int { return ix.slotsPerDay }

// WeekdayIndex returns w as a 1..5 index (identity for this
// representation, kept as a named accessor for readability at call sites).
func (ix *Index) WeekdayIndex(w domain.Weekday) int { return int(w) }

// SlotID computes the canonical contiguous id for a weekday/number-in-day pair.
func (ix *Index) SlotID(weekday domain.Weekday, numberInDay int) int {
	return domain.SlotID(weekday, numberInDay, ix.slotsPerDay)
}
