// Package varfactory creates the CP-SAT decision variables for every
// Lesson and attaches them, by entity id, to side-tables the downstream
// encoders read from. Entities themselves stay untouched; the tables are
// the only mutable state the model build produces.
package varfactory

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
)

// LessonVars is the per-lesson side-table entry: the decision and helper
// variables attached to one Lesson by identity.
type LessonVars struct {
	Lesson domain.Lesson

	Room IntVar

	// Start holds Lesson.TimeslotSize consecutive slot variables. For
	// lessons sharing a same-time group, this is a prefix view into the
	// group's shared vector, never an independently created vector.
	Start []solverapi.IntVar

	Weekday solverapi.IntVar // W(L)
	Hour    solverapi.IntVar // H(L)

	// DayBool maps weekday -> D_d(L).
	DayBool map[domain.Weekday]solverapi.BoolVar

	// SlotBool maps a global timeslot id -> B_s(L), with an entry for every
	// global slot; slots the Start vector cannot reach are fixed false.
	SlotBool map[int]solverapi.BoolVar

	// Interval is non-nil only for lessons of size >= 2; a size-1 lesson
	// needs no overlap interval.
	Interval *solverapi.IntervalVar
}

type IntVar = solverapi.IntVar

// TeacherVars is the per-teacher side-table entry.
type TeacherVars struct {
	Teacher domain.Teacher

	// StudyDay1Bool/StudyDay2Bool mark which study-day choice is realized.
	// StudyDay2Bool is the zero value (unused) when the teacher's two
	// study days coincide.
	StudyDay1Bool solverapi.BoolVar
	StudyDay2Bool solverapi.BoolVar
	HasStudyDay2  bool

	// LectureAtSlot maps a global timeslot id -> LectAt(teacher, slot).
	LectureAtSlot map[int]solverapi.BoolVar

	// MaxLecturesPerDay / MaxLecturesAsBlock start as the Teacher's own
	// values and may be reduced in place by the lecture-block encoder's
	// pre-reduction step; the per-day lecture cap must read these, not
	// domain.Teacher's original fields. MaxLessonsPerDay is carried here
	// for symmetry (with the loader default applied) but never reduced.
	MaxLessonsPerDay   int
	MaxLecturesPerDay  int
	MaxLecturesAsBlock int
}

// Tables bundles every side-table the encoders read from.
type Tables struct {
	Lessons  map[int]*LessonVars
	Teachers map[int]*TeacherVars
}
