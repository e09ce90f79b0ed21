package hardconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// AddMaxLecturesAsBlockTeacher forbids lecture-occupancy day patterns with
// a run of consecutive lectures longer than the teacher's (possibly
// reduced) max_lectures_as_block, or more lecture slots than
// max_lectures_per_day. It reduces the caps in place first, so it must run
// before AddMaxLecturesPerDayTeacher, which reads the reduced values off
// TeacherVars.
func (e *Encoder) AddMaxLecturesAsBlockTeacher() {
	slotsPerDay := e.Idx.SlotsPerDay()
	for _, teacher := range e.Cat.Teachers {
		tv := e.Vars.Teachers[teacher.ID]
		if len(tv.LectureAtSlot) == 0 {
			continue
		}

		reduceTeacherLectureCaps(tv)

		forbidden := forbiddenLectureShapes(slotsPerDay, tv.MaxLecturesPerDay, tv.MaxLecturesAsBlock)
		if len(forbidden) == 0 {
			continue
		}

		for w := domain.Mon; w <= domain.Fri; w++ {
			vars := e.teacherDayLectureVars(teacher.ID, w)
			e.Model.AddForbiddenAssignments(vars, forbidden)
		}
	}
}

// reduceTeacherLectureCaps tightens (max_per_day, max_block) in place:
// clamp max_block to max_per_day first, then walk max_per_day down through
// 6 -> 5 -> 4 -> 3 one stage at a time, each stage only reducing further
// when the block cap leaves no room at that level. The reduction is a
// staged cascade, not a general formula: a (3,2) or (4,3) teacher passes
// through every stage unreduced even though block < per_day.
func reduceTeacherLectureCaps(tv *varfactory.TeacherVars) {
	if tv.MaxLecturesAsBlock > tv.MaxLecturesPerDay {
		tv.MaxLecturesAsBlock = tv.MaxLecturesPerDay
	}

	if tv.MaxLecturesPerDay == 6 {
		if tv.MaxLecturesAsBlock != 6 {
			tv.MaxLecturesPerDay = 5
		}
	}

	if tv.MaxLecturesPerDay == 5 {
		if tv.MaxLecturesAsBlock < 3 {
			tv.MaxLecturesPerDay = 4
		}
	}

	if tv.MaxLecturesPerDay == 4 {
		if tv.MaxLecturesAsBlock < 2 {
			tv.MaxLecturesPerDay = 3
		}
	}
}

// forbiddenLectureShapes enumerates every 0/1 pattern of width slotsPerDay
// whose longest run of 1s exceeds maxBlock, or whose total count of 1s
// exceeds maxPerDay, as rows ready for AddForbiddenAssignments.
func forbiddenLectureShapes(slotsPerDay, maxPerDay, maxBlock int) [][]int64 {
	var out [][]int64
	total := 1 << uint(slotsPerDay)
	for p := 0; p < total; p++ {
		count := 0
		run := 0
		maxRun := 0
		row := make([]int64, slotsPerDay)
		for i := 0; i < slotsPerDay; i++ {
			bit := (p >> uint(i)) & 1
			row[i] = int64(bit)
			if bit == 1 {
				count++
				run++
				if run > maxRun {
					maxRun = run
				}
			} else {
				run = 0
			}
		}
		if maxRun > maxBlock || count > maxPerDay {
			out = append(out, row)
		}
	}
	return out
}

func (e *Encoder) teacherDayLectureVars(teacherID int, w domain.Weekday) []solverapi.BoolVar {
	tv := e.Vars.Teachers[teacherID]
	day := e.Idx.Day(w)
	vars := make([]solverapi.BoolVar, len(day))
	for i, ts := range day {
		if b, ok := tv.LectureAtSlot[ts.ID]; ok {
			vars[i] = b
			continue
		}
		zero := e.Model.NewBoolVar(fmt.Sprintf("nolect_t%d_s%d", teacherID, ts.ID))
		e.Model.AddEquality(zero, solverapi.Const(0))
		vars[i] = zero
	}
	return vars
}
