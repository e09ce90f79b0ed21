// Package hardconstraints posts the hard scheduling rules against a built
// varfactory.Tables: time and room uniqueness, study days, availability,
// course blocks, consecutive lessons, the per-day caps, and the lecture
// shape rules. Each exported Add* function emits exactly one rule.
package hardconstraints

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/timeslotindex"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// Encoder bundles the model and tables every rule function reads from.
type Encoder struct {
	Model solverapi.Model
	Cat   *domain.Catalog
	Idx   *timeslotindex.Index
	Vars  *varfactory.Tables
}

// New returns an Encoder ready to post the hard rules.
func New(model solverapi.Model, cat *domain.Catalog, idx *timeslotindex.Index, vars *varfactory.Tables) *Encoder {
	return &Encoder{Model: model, Cat: cat, Idx: idx, Vars: vars}
}

// AddAll posts every hard rule. AddMaxLecturesAsBlockTeacher must run
// before AddMaxLecturesPerDayTeacher: the block encoder reduces the
// per-day lecture cap in place and the count cap reads the reduced value.
func (e *Encoder) AddAll() {
	e.AddTeacherUniqueness()
	e.AddCohortUniqueness()
	e.AddRoomUniqueness()
	e.AddTeacherStudyDay()
	e.AddRoomNotAvailable()
	e.AddCourseAllInOneBlock()
	e.AddConsecutiveLessons()
	e.AddMaxLecturesAsBlockTeacher()
	e.AddMaxLessonsPerDayTeacher()
	e.AddMaxLessonsPerDayCohort()
	e.AddMaxLessonsPerDayCourse()
	e.AddMaxLecturesPerDayTeacher()
	e.AddOneCoursePerDayPerTeacher()
}

// longestOfGroup returns the longest lesson of the group; the earliest
// member wins ties.
func longestOfGroup(lessons []domain.Lesson) domain.Lesson {
	best := lessons[0]
	for _, l := range lessons[1:] {
		if l.TimeslotSize > best.TimeslotSize {
			best = l
		}
	}
	return best
}

func containsLesson(lessons []domain.Lesson, id int) bool {
	for _, l := range lessons {
		if l.ID == id {
			return true
		}
	}
	return false
}
