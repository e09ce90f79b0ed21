package hardconstraints

import (
	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/varfactory"
)

// AddTeacherUniqueness ensures a teacher is never in two places at once:
// across all of a teacher's lessons, every occupied slot is distinct.
func (e *Encoder) AddTeacherUniqueness() {
	for _, teacher := range e.Cat.Teachers {
		vars := dedupStarts(e.Vars, e.Cat.LessonsOfTeacher(teacher.ID))
		if len(vars) > 1 {
			e.Model.AddAllDifferent(vars...)
		}
	}
}

// dedupStarts flattens every lesson's Start slice and removes variables that
// are shared (same-time-group members point at the same underlying IntVar),
// so AddAllDifferent is never handed the same variable twice.
func dedupStarts(t *varfactory.Tables, lessons []domain.Lesson) []solverapi.IntVar {
	seen := make(map[solverapi.IntVar]bool)
	var out []solverapi.IntVar
	for _, l := range lessons {
		lv := t.Lessons[l.ID]
		for _, v := range lv.Start {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
