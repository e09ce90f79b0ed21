package hardconstraints

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// sumSizedDayBools builds the per-day load expression every daily cap
// shares: the sum of timeslot_size times the weekday boolean over a
// counted set of lessons.
func sumSizedDayBools(t *varfactory.Tables, lessons []domain.Lesson, w domain.Weekday) *solverapi.LinearExpr {
	expr := solverapi.NewLinearExpr()
	for _, l := range lessons {
		lv := t.Lessons[l.ID]
		expr.AddBoolTerm(lv.DayBool[w], int64(l.TimeslotSize))
	}
	return expr
}

func intConst(v int) solverapi.Const { return solverapi.Const(int64(v)) }
