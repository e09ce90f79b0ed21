package hardconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/solverapi"
)

// AddCourseAllInOneBlock forces an all-in-one-block course's lessons into
// one contiguous range on a single day, all in the same room.
func (e *Encoder) AddCourseAllInOneBlock() {
	slotsPerDay := e.Idx.SlotsPerDay()
	for _, course := range e.Cat.Courses {
		if !course.AllInOneBlock {
			continue
		}
		lessons := e.Cat.LessonsOfCourse(course.ID)
		blocksize := 0
		var allStarts []solverapi.IntVar
		for _, l := range lessons {
			blocksize += l.TimeslotSize
			allStarts = append(allStarts, e.Vars.Lessons[l.ID].Start...)
		}
		if blocksize <= 1 {
			continue
		}

		lastStart := slotsPerDay + 1 - blocksize
		minVar := e.Model.NewIntVar([][2]int64{{1, int64(len(e.Cat.Timeslots))}}, fmt.Sprintf("blockmin_%d", course.ID))
		maxVar := e.Model.NewIntVar([][2]int64{{1, int64(len(e.Cat.Timeslots))}}, fmt.Sprintf("blockmax_%d", course.ID))
		e.Model.AddMinEquality(minVar, allStarts)
		e.Model.AddMaxEquality(maxVar, allStarts)
		// max - min == blocksize - 1: combined with every individual lesson
		// already being a contiguous run and the uniqueness rules keeping
		// lessons from overlapping, this forces the whole span to be
		// gap-free.
		e.Model.AddEquality(maxVar, solverapi.NewLinearExpr().AddTerm(minVar, 1).AddConstant(int64(blocksize-1)))

		minHour := e.Model.NewIntVar([][2]int64{{1, int64(lastStart)}}, fmt.Sprintf("blockminhour_%d", course.ID))
		e.Model.AddModuloEquality(minHour, minVar, int64(slotsPerDay))

		for i := 1; i < len(lessons); i++ {
			e.Model.AddEquality(e.Vars.Lessons[lessons[i-1].ID].Room, e.Vars.Lessons[lessons[i].ID].Room)
		}
	}
}
