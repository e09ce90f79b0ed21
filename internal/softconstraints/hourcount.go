package softconstraints

import "github.com/schedulekit/timetable/internal/solverapi"

// addHourPenalties penalizes lessons landing on the unpopular hours of the
// day: the first hour lightly, the fifth and sixth progressively harder.
func (e *Encoder) addHourPenalties(obj *solverapi.LinearExpr) {
	e.addNthHourPenalty(obj, 1, FirstHourPenalty)
	e.addNthHourPenalty(obj, 5, FifthHourPenalty)
	e.addNthHourPenalty(obj, 6, SixthHourPenalty)
}

func (e *Encoder) addNthHourPenalty(obj *solverapi.LinearExpr, hourNumber, weight int) {
	var slotIDs []int
	for _, ts := range e.Idx.All() {
		if ts.NumberInDay == hourNumber {
			slotIDs = append(slotIDs, ts.ID)
		}
	}
	for _, l := range e.Cat.Lessons {
		lv := e.Vars.Lessons[l.ID]
		for _, slotID := range slotIDs {
			if b, ok := lv.SlotBool[slotID]; ok {
				obj.AddBoolTerm(b, int64(weight))
			}
		}
	}
}
