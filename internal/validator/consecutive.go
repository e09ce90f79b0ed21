package validator

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
)

// validateConsecutiveLessons checks that every consecutive-lessons edge
// (L, L') has L' starting on L's weekday in the slot immediately after L's
// last slot.
func validateConsecutiveLessons(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, pair := range cat.ConsecutivePairs() {
		from, to := pair[0], pair[1]
		fromSlots := sol.TimeslotsOf(from.ID)
		toSlots := sol.TimeslotsOf(to.ID)
		if len(fromSlots) == 0 || len(toSlots) == 0 {
			continue
		}
		last := fromSlots[len(fromSlots)-1]
		first := toSlots[0]
		if first.Weekday != last.Weekday || first.NumberInDay != last.NumberInDay+1 {
			r.add("consecutive", "lesson %d does not immediately follow lesson %d", to.ID, from.ID)
		}
	}
}

// validateSameTimeLessons checks that every same-time group actually starts
// together. Members may differ in size, so only the start slot is compared;
// the shared prefix then follows from each lesson's own contiguity.
func validateSameTimeLessons(r *Result, sol *solution.Solution, cat *domain.Catalog) {
	for _, group := range cat.AllSameTimeGroups() {
		if len(group) < 2 {
			continue
		}
		refSlots := sol.TimeslotsOf(group[0].ID)
		if len(refSlots) == 0 {
			continue
		}
		for _, l := range group[1:] {
			slots := sol.TimeslotsOf(l.ID)
			if len(slots) == 0 || slots[0].ID != refSlots[0].ID {
				r.add("same-time", "lessons %d and %d do not start at the same slot", group[0].ID, l.ID)
			}
		}
	}
}
