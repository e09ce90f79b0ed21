package softconstraints

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/timeslotindex"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// Encoder bundles the model and tables the soft-constraint counters are
// built against, mirroring hardconstraints.Encoder.
type Encoder struct {
	Model solverapi.Model
	Cat   *domain.Catalog
	Idx   *timeslotindex.Index
	Vars  *varfactory.Tables
}

// New returns an Encoder ready to build the objective.
func New(model solverapi.Model, cat *domain.Catalog, idx *timeslotindex.Index, vars *varfactory.Tables) *Encoder {
	return &Encoder{Model: model, Cat: cat, Idx: idx, Vars: vars}
}

// BuildObjective posts every soft-constraint counter and returns the
// weighted-sum expression; the caller decides whether to hand it to
// Model.Minimize (the -o/--optimize flag controls that).
func (e *Encoder) BuildObjective() *solverapi.LinearExpr {
	obj := solverapi.NewLinearExpr()

	e.addStudyDayPreference(obj)
	e.addHourPenalties(obj)
	e.addCohortGapPenalties(obj)
	e.addTeacherDayGapPenalties(obj)
	e.addFreeDayPenalties(obj)

	return obj
}

func (e *Encoder) addStudyDayPreference(obj *solverapi.LinearExpr) {
	for _, teacher := range e.Cat.Teachers {
		if !teacher.HasStudyDay() || len(e.Cat.LessonsOfTeacher(teacher.ID)) == 0 {
			continue
		}
		tv := e.Vars.Teachers[teacher.ID]
		// studyDay1Bool.Not() * penalty: charged whenever the solver did
		// not realize the teacher's first-choice study day.
		obj.AddBoolTerm(tv.StudyDay1Bool, -PreferFirstStudyDayPenalty)
		obj.AddConstant(PreferFirstStudyDayPenalty)
	}
}
