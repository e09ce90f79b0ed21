package varfactory

import (
	"fmt"
	"sort"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solverapi"
	"github.com/schedulekit/timetable/internal/timeslotindex"
)

// timeGroup is either a same-time equivalence class or a singleton
// wrapping one ungrouped lesson; both are built the same way so the rest
// of the factory never special-cases "no group".
type timeGroup struct {
	members []domain.Lesson
	maxSize int
}

// Build creates every decision and helper variable for the whole catalog
// and returns the filled side-tables.
func Build(model solverapi.Model, cat *domain.Catalog, idx *timeslotindex.Index) *Tables {
	t := &Tables{
		Lessons:  make(map[int]*LessonVars, len(cat.Lessons)),
		Teachers: make(map[int]*TeacherVars, len(cat.Teachers)),
	}

	for _, teacher := range cat.Teachers {
		t.Teachers[teacher.ID] = &TeacherVars{
			Teacher:            teacher,
			LectureAtSlot:      make(map[int]solverapi.BoolVar),
			MaxLessonsPerDay:   orDefault(teacher.MaxLessonsPerDay, domain.DefaultMaxLessonsPerDayTeacher),
			MaxLecturesPerDay:  orDefault(teacher.MaxLecturesPerDay, domain.DefaultMaxLecturesPerDayTeacher),
			MaxLecturesAsBlock: orDefault(teacher.MaxLecturesAsBlock, domain.DefaultMaxLecturesAsBlockTeacher),
		}
		if teacher.HasStudyDay() {
			s1 := model.NewBoolVar(fmt.Sprintf("studyday1_t%d", teacher.ID))
			tv := t.Teachers[teacher.ID]
			tv.StudyDay1Bool = s1
			if !teacher.StudyDaysCoincide() {
				tv.StudyDay2Bool = model.NewBoolVar(fmt.Sprintf("studyday2_t%d", teacher.ID))
				tv.HasStudyDay2 = true
			}
		}
	}

	for _, group := range groupLessons(cat) {
		buildGroup(model, cat, idx, t, group)
	}

	buildTeacherLectureAtSlotMap(model, cat, idx, t)

	return t
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// groupLessons partitions every lesson into same-time equivalence classes
// (size >= 2) or singleton groups, in deterministic order (lowest member id).
func groupLessons(cat *domain.Catalog) []timeGroup {
	grouped := make(map[int]bool)
	var groups []timeGroup
	for _, g := range cat.AllSameTimeGroups() {
		maxSize := 0
		for _, l := range g {
			grouped[l.ID] = true
			if l.TimeslotSize > maxSize {
				maxSize = l.TimeslotSize
			}
		}
		groups = append(groups, timeGroup{members: g, maxSize: maxSize})
	}
	for _, l := range cat.Lessons {
		if !grouped[l.ID] {
			groups = append(groups, timeGroup{members: []domain.Lesson{l}, maxSize: l.TimeslotSize})
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].members[0].ID < groups[j].members[0].ID })
	return groups
}

// admissibleSlots computes the admissible slot set for position i
// (0-based) of a group whose longest member spans maxSize slots: slots
// every involved teacher is available on, within the forenoon window for
// forenoon-only courses, within each member's own allowed set, and early
// enough in the day that the whole block still fits.
func admissibleSlots(cat *domain.Catalog, idx *timeslotindex.Index, group timeGroup, i int) []int {
	slotsPerDay := idx.SlotsPerDay()
	var candidates []domain.Timeslot
	for _, ts := range idx.All() {
		if ts.NumberInDay <= slotsPerDay-group.maxSize+i+1 {
			candidates = append(candidates, ts)
		}
	}

	onlyForenoon := false
	var availableRestriction map[int]bool
	for _, member := range group.members {
		course, _ := cat.Course(member.CourseID)
		if course.OnlyForenoon {
			onlyForenoon = true
		}
		if len(member.AvailableTimeslotIDs) > 0 {
			if availableRestriction == nil {
				availableRestriction = make(map[int]bool)
				for _, id := range member.AvailableTimeslotIDs {
					availableRestriction[id] = true
				}
			} else {
				// Intersect with this member's own restriction too.
				for id := range availableRestriction {
					found := false
					for _, other := range member.AvailableTimeslotIDs {
						if other == id {
							found = true
							break
						}
					}
					if !found {
						delete(availableRestriction, id)
					}
				}
			}
		}
	}

	teacherUnavailable := make(map[int]bool)
	for _, member := range group.members {
		for _, tid := range member.TeacherIDs {
			teacher, ok := cat.Teacher(tid)
			if !ok {
				continue
			}
			for _, slotID := range teacher.NotAvailableTimeslotIDs {
				teacherUnavailable[slotID] = true
			}
		}
	}

	var out []int
	for _, ts := range candidates {
		if teacherUnavailable[ts.ID] {
			continue
		}
		if onlyForenoon && !idx.IsForenoon(ts.ID) {
			continue
		}
		if availableRestriction != nil && !availableRestriction[ts.ID] {
			continue
		}
		out = append(out, ts.ID)
	}
	sort.Ints(out)
	return out
}

func toDomain(ids []int) [][2]int64 {
	if len(ids) == 0 {
		return [][2]int64{{0, 0}}
	}
	sort.Ints(ids)
	var intervals [][2]int64
	lo, hi := int64(ids[0]), int64(ids[0])
	for _, id := range ids[1:] {
		if int64(id) == hi+1 {
			hi = int64(id)
			continue
		}
		intervals = append(intervals, [2]int64{lo, hi})
		lo, hi = int64(id), int64(id)
	}
	intervals = append(intervals, [2]int64{lo, hi})
	return intervals
}

func buildGroup(model solverapi.Model, cat *domain.Catalog, idx *timeslotindex.Index, t *Tables, group timeGroup) {
	leadID := group.members[0].ID
	slotsPerDay := idx.SlotsPerDay()

	shared := make([]solverapi.IntVar, group.maxSize)
	for i := 0; i < group.maxSize; i++ {
		admissible := admissibleSlots(cat, idx, group, i)
		shared[i] = model.NewIntVar(toDomain(admissible), fmt.Sprintf("t%d_%d", leadID, i))
		if i > 0 {
			// t_{i+1} = t_i + 1 (consecutive slots within the same day).
			model.AddEquality(shared[i], solverapi.NewLinearExpr().AddTerm(shared[i-1], 1).AddConstant(1))
		}
	}

	weekday := model.NewIntVar([][2]int64{{1, int64(domain.WeekdaysPerWeek)}}, fmt.Sprintf("w%d", leadID))
	hour := model.NewIntVar([][2]int64{{1, int64(slotsPerDay)}}, fmt.Sprintf("h%d", leadID))
	// t_0 = (W-1)*slotsPerDay + H
	model.AddEquality(shared[0], solverapi.NewLinearExpr().
		AddTerm(weekday, int64(slotsPerDay)).
		AddTerm(hour, 1).
		AddConstant(-int64(slotsPerDay)))

	dayBool := make(map[domain.Weekday]solverapi.BoolVar, domain.WeekdaysPerWeek)
	var sumDay *solverapi.LinearExpr
	for w := domain.Mon; w <= domain.Fri; w++ {
		b := model.NewBoolVar(fmt.Sprintf("d%d_%s", leadID, w))
		dayBool[w] = b
		model.AddEquality(weekday, solverapi.Const(int64(w))).OnlyEnforceIf(solverapi.Lit(b))
		model.AddNotEqual(weekday, solverapi.Const(int64(w))).OnlyEnforceIf(solverapi.Lit(b).Not())
		if sumDay == nil {
			sumDay = solverapi.NewLinearExpr().AddBoolTerm(b, 1)
		} else {
			sumDay.AddBoolTerm(b, 1)
		}
	}
	model.AddEquality(sumDay, solverapi.Const(1))

	for _, member := range group.members {
		lv := &LessonVars{
			Lesson:   member,
			Start:    shared[:member.TimeslotSize],
			Weekday:  weekday,
			Hour:     hour,
			DayBool:  dayBool,
			SlotBool: make(map[int]solverapi.BoolVar),
		}

		course, _ := cat.Course(member.CourseID)
		roomIDs := course.PossibleRoomIDs
		if len(roomIDs) == 0 {
			for _, r := range cat.Rooms {
				roomIDs = append(roomIDs, r.ID)
			}
		}
		lv.Room = model.NewIntVar(toDomain(roomIDs), fmt.Sprintf("room%d", member.ID))

		buildSlotBools(model, idx, lv)

		if member.TimeslotSize >= 2 {
			// The interval starts one below the first occupied slot so that
			// no-overlap treats a shared endpoint as a collision.
			start0 := model.NewIntVar([][2]int64{{0, int64(len(idx.All()))}}, fmt.Sprintf("start0_%d", member.ID))
			model.AddEquality(start0, solverapi.NewLinearExpr().AddTerm(lv.Start[0], 1).AddConstant(-1))
			interval := model.NewInterval(start0, int64(member.TimeslotSize), fmt.Sprintf("iv%d", member.ID))
			lv.Interval = &interval
		}

		t.Lessons[member.ID] = lv
	}
}

// buildSlotBools builds the per-slot occupancy booleans for this lesson's
// own Start view: a direct selector for size-1 lessons, the disjunction of
// per-position selectors otherwise.
func buildSlotBools(model solverapi.Model, idx *timeslotindex.Index, lv *LessonVars) {
	reachable := make(map[int][]solverapi.BoolVar) // slot id -> selector literals across positions

	for i, tVar := range lv.Start {
		// The encoders need the full slot->bool map up front, so a selector
		// is created for every global slot; selectors on slots outside the
		// position's domain are simply fixed false by propagation.
		for _, ts := range idx.All() {
			sel := model.NewBoolVar(fmt.Sprintf("sel_%d_%d_%d", lv.Lesson.ID, i, ts.ID))
			model.AddEquality(tVar, solverapi.Const(int64(ts.ID))).OnlyEnforceIf(solverapi.Lit(sel))
			model.AddNotEqual(tVar, solverapi.Const(int64(ts.ID))).OnlyEnforceIf(solverapi.Lit(sel).Not())
			reachable[ts.ID] = append(reachable[ts.ID], sel)
		}
	}

	for _, ts := range idx.All() {
		slotID := ts.ID
		selectors := reachable[slotID]
		if len(selectors) == 1 {
			lv.SlotBool[slotID] = selectors[0]
			continue
		}
		b := model.NewBoolVar(fmt.Sprintf("occ_%d_%d", lv.Lesson.ID, slotID))
		lits := make([]solverapi.Literal, len(selectors))
		for i, s := range selectors {
			lits[i] = solverapi.Lit(s)
		}
		// b <-> OR(selectors): b implies at least one selector, and each
		// selector implies b.
		orWithB := append(append([]solverapi.Literal{}, lits...), solverapi.Lit(b).Not())
		model.AddBoolOr(orWithB...)
		for _, l := range lits {
			model.AddImplication(l, solverapi.Lit(b))
		}
		lv.SlotBool[slotID] = b
	}
}

func buildTeacherLectureAtSlotMap(model solverapi.Model, cat *domain.Catalog, idx *timeslotindex.Index, t *Tables) {
	for _, teacher := range cat.Teachers {
		tv := t.Teachers[teacher.ID]
		contributions := make(map[int][]solverapi.BoolVar)
		for _, lesson := range cat.LessonsOfTeacher(teacher.ID) {
			course, _ := cat.Course(lesson.CourseID)
			if !course.IsLecture {
				continue
			}
			lv := t.Lessons[lesson.ID]
			for _, ts := range idx.All() {
				if b, ok := lv.SlotBool[ts.ID]; ok {
					contributions[ts.ID] = append(contributions[ts.ID], b)
				}
			}
		}
		for _, ts := range idx.All() {
			slotID := ts.ID
			bs := contributions[slotID]
			if len(bs) == 0 {
				continue
			}
			if len(bs) == 1 {
				tv.LectureAtSlot[slotID] = bs[0]
				continue
			}
			// More than one of this teacher's lecture lessons can reach
			// this slot (distinct same-time groups, say); LectAt is true
			// iff any of them does.
			or := model.NewBoolVar(fmt.Sprintf("lectat_t%d_s%d", teacher.ID, slotID))
			lits := make([]solverapi.Literal, len(bs))
			for i, b := range bs {
				lits[i] = solverapi.Lit(b)
			}
			model.AddBoolOr(append(append([]solverapi.Literal{}, lits...), solverapi.Lit(or).Not())...)
			for _, l := range lits {
				model.AddImplication(l, solverapi.Lit(or))
			}
			tv.LectureAtSlot[slotID] = or
		}
	}
}
