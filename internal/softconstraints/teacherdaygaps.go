package softconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
)

// addTeacherDayGapPenalties counts, for teachers with AvoidFreeDayGaps and
// at least two lessons, the free weekdays wedged between working days
// (gap sizes 1..3) and adds their weighted sum to the objective.
func (e *Encoder) addTeacherDayGapPenalties(obj *solverapi.LinearExpr) {
	weights := map[int]int{1: OneDayGapPenalty, 2: TwoDayGapPenalty, 3: ThreeDayGapPenalty}

	for _, teacher := range e.Cat.Teachers {
		if !teacher.AvoidFreeDayGaps {
			continue
		}
		lessons := e.Cat.LessonsOfTeacher(teacher.ID)
		if len(lessons) < 2 {
			continue
		}

		working := make(map[domain.Weekday]solverapi.BoolVar, domain.WeekdaysPerWeek)
		for w := domain.Mon; w <= domain.Fri; w++ {
			dayVars := make([]solverapi.IntVar, len(lessons))
			for i, l := range lessons {
				dayVars[i] = e.Model.AsIntVar(e.Vars.Lessons[l.ID].DayBool[w])
			}
			b := e.Model.NewBoolVar(fmt.Sprintf("teacher%d_working_%s", teacher.ID, w))
			e.Model.AddMaxEquality(e.Model.AsIntVar(b), dayVars)
			working[w] = b
		}

		for gapSize := 1; gapSize <= 3; gapSize++ {
			count := e.countTeacherDayGaps(teacher.ID, working, gapSize)
			obj.AddTerm(count, int64(weights[gapSize]))
		}
	}
}

// countTeacherDayGaps counts, for one gap size, the number of interior
// weekdays where a run of exactly that many non-working days is
// bracketed by working days on both sides. Day gaps can only start on the
// second weekday and must leave room for the trailing working day.
func (e *Encoder) countTeacherDayGaps(teacherID int, working map[domain.Weekday]solverapi.BoolVar, gapSize int) solverapi.IntVar {
	var gaps []solverapi.BoolVar
	for d := 1; d+gapSize < domain.WeekdaysPerWeek; d++ {
		before := working[domain.Weekday(d)]
		after := working[domain.Weekday(d+gapSize+1)]

		gap := e.Model.NewBoolVar(fmt.Sprintf("teacher%d_daygap%d_%d", teacherID, gapSize, d))
		andVars := []solverapi.IntVar{e.Model.AsIntVar(before)}
		for k := 1; k <= gapSize; k++ {
			mid := working[domain.Weekday(d+k)]
			notMid := e.Model.NewBoolVar(fmt.Sprintf("teacher%d_daygap%d_%d_not%d", teacherID, gapSize, d, k))
			e.Model.AddEquality(e.Model.AsIntVar(notMid), solverapi.NewLinearExpr().AddTerm(e.Model.AsIntVar(mid), -1).AddConstant(1))
			andVars = append(andVars, e.Model.AsIntVar(notMid))
		}
		andVars = append(andVars, e.Model.AsIntVar(after))
		e.Model.AddMinEquality(e.Model.AsIntVar(gap), andVars)
		gaps = append(gaps, gap)
	}

	count := e.Model.NewIntVar([][2]int64{{0, int64(len(gaps))}}, fmt.Sprintf("teacher%d_daygap%dcount", teacherID, gapSize))
	if len(gaps) == 0 {
		e.Model.AddEquality(count, solverapi.Const(0))
		return count
	}
	sum := solverapi.NewLinearExpr()
	for _, g := range gaps {
		sum.AddBoolTerm(g, 1)
	}
	e.Model.AddEquality(count, sum)
	return count
}
