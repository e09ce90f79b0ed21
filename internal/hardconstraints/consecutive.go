package hardconstraints

import "github.com/schedulekit/timetable/internal/solverapi"

// AddConsecutiveLessons makes every consecutive-lessons pair (L, L') start
// L' on L's weekday in the slot immediately after L's last slot.
func (e *Encoder) AddConsecutiveLessons() {
	for _, pair := range e.Cat.ConsecutivePairs() {
		from, to := pair[0], pair[1]
		lvFrom, lvTo := e.Vars.Lessons[from.ID], e.Vars.Lessons[to.ID]

		e.Model.AddEquality(lvFrom.Weekday, lvTo.Weekday)

		lastOfFrom := lvFrom.Start[len(lvFrom.Start)-1]
		e.Model.AddEquality(lvTo.Start[0], solverapi.NewLinearExpr().AddTerm(lastOfFrom, 1).AddConstant(1))
	}
}
