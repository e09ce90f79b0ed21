package softconstraints

import (
	"fmt"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
)

// addCohortGapPenalties counts, per cohort, the free-timeslot gaps of
// sizes 1..4 between occupied slots of a day and adds their weighted sum
// to the objective.
func (e *Encoder) addCohortGapPenalties(obj *solverapi.LinearExpr) {
	weights := map[int]int{1: OneTimeslotGapPenalty, 2: TwoTimeslotGapPenalty, 3: ThreeTimeslotGapPenalty, 4: FourTimeslotGapPenalty}

	for _, cohort := range e.Cat.Cohorts {
		occupied := e.cohortOccupiedMap(cohort.ID)

		for gapSize := 1; gapSize <= 4; gapSize++ {
			count := e.countCohortGaps(cohort.ID, occupied, gapSize)
			obj.AddTerm(count, int64(weights[gapSize]))
		}
	}
}

// cohortOccupiedMap builds occupied(s) <-> OR of B_s over every lesson the
// cohort attends (whole- and part-cohort alike, matching
// SemesterGroup.getLessons()).
func (e *Encoder) cohortOccupiedMap(cohortID int) map[int]solverapi.BoolVar {
	lessons := e.Cat.LessonsOfCohort(cohortID)
	contributions := make(map[int][]solverapi.BoolVar)
	for _, l := range lessons {
		lv := e.Vars.Lessons[l.ID]
		for slotID, b := range lv.SlotBool {
			contributions[slotID] = append(contributions[slotID], b)
		}
	}

	occupied := make(map[int]solverapi.BoolVar, len(e.Idx.All()))
	for _, ts := range e.Idx.All() {
		bs := contributions[ts.ID]
		if len(bs) == 0 {
			zero := e.Model.NewBoolVar(fmt.Sprintf("cohort%d_unoccupied_%d", cohortID, ts.ID))
			e.Model.AddEquality(zero, solverapi.Const(0))
			occupied[ts.ID] = zero
			continue
		}
		if len(bs) == 1 {
			occupied[ts.ID] = bs[0]
			continue
		}
		b := e.Model.NewBoolVar(fmt.Sprintf("cohort%d_occupied_%d", cohortID, ts.ID))
		lits := make([]solverapi.Literal, len(bs))
		negLits := make([]solverapi.Literal, len(bs))
		for i, v := range bs {
			lits[i] = solverapi.Lit(v)
			negLits[i] = solverapi.Lit(v).Not()
		}
		e.Model.AddBoolOr(lits...).OnlyEnforceIf(solverapi.Lit(b))
		e.Model.AddBoolAnd(negLits...).OnlyEnforceIf(solverapi.Lit(b).Not())
		occupied[ts.ID] = b
	}
	return occupied
}

// countCohortGaps counts, for one gap size, the number of interior
// positions on any day where a run of exactly that many unoccupied slots
// is bracketed by occupied slots on both sides.
func (e *Encoder) countCohortGaps(cohortID int, occupied map[int]solverapi.BoolVar, gapSize int) solverapi.IntVar {
	var gaps []solverapi.BoolVar
	for w := domain.Mon; w <= domain.Fri; w++ {
		day := e.Idx.Day(w)
		// i indexes the first slot of the gap run, 0-based; need a slot
		// before (i-1) and after the run (i+gapSize) within the same day.
		for i := 1; i+gapSize < len(day); i++ {
			before := occupied[day[i-1].ID]
			after := occupied[day[i+gapSize].ID]

			gap := e.Model.NewBoolVar(fmt.Sprintf("cohort%d_gap%d_%s_%d", cohortID, gapSize, w, i))
			and := []solverapi.Literal{solverapi.Lit(before)}
			or := []solverapi.Literal{solverapi.Lit(before).Not()}
			for k := 0; k < gapSize; k++ {
				mid := occupied[day[i+k].ID]
				and = append(and, solverapi.Lit(mid).Not())
				or = append(or, solverapi.Lit(mid))
			}
			and = append(and, solverapi.Lit(after))
			or = append(or, solverapi.Lit(after).Not())

			e.Model.AddBoolAnd(and...).OnlyEnforceIf(solverapi.Lit(gap))
			e.Model.AddBoolOr(or...).OnlyEnforceIf(solverapi.Lit(gap).Not())
			gaps = append(gaps, gap)
		}
	}

	count := e.Model.NewIntVar([][2]int64{{0, int64(len(gaps))}}, fmt.Sprintf("cohort%d_gap%dcount", cohortID, gapSize))
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
