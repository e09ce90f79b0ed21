package domain

import "testing"

func makeTimeslots() []Timeslot {
	var out []Timeslot
	id := 1
	for w := Mon; w <= Fri; w++ {
		for n := 1; n <= 6; n++ {
			out = append(out, Timeslot{ID: id, Weekday: w, NumberInDay: n})
			id++
		}
	}
	return out
}

func TestNewCatalogSortsByID(t *testing.T) {
	lessons := []Lesson{
		{ID: 2, CourseID: 1, TimeslotSize: 1, WholeSemesterGroup: true, TeacherIDs: []int{1}},
		{ID: 1, CourseID: 1, TimeslotSize: 1, WholeSemesterGroup: true, TeacherIDs: []int{1}},
	}
	courses := []Course{{ID: 1, Name: "Math", CohortIDs: []int{1}}}
	cat := NewCatalog(makeTimeslots(), nil, []Teacher{{ID: 1}}, []Cohort{{ID: 1}}, courses, lessons)

	if cat.Lessons[0].ID != 1 || cat.Lessons[1].ID != 2 {
		t.Fatalf("lessons not sorted ascending: %+v", cat.Lessons)
	}
	got := cat.LessonsOfCourse(1)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("LessonsOfCourse not ascending: %+v", got)
	}
}

func TestSameTimeGroupResolution(t *testing.T) {
	lessons := []Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 2, TeacherIDs: []int{1}, SameTimeGroup: "g1"},
		{ID: 2, CourseID: 2, TimeslotSize: 3, TeacherIDs: []int{2}, SameTimeGroup: "g1"},
		{ID: 3, CourseID: 3, TimeslotSize: 1, TeacherIDs: []int{1}},
	}
	courses := []Course{{ID: 1}, {ID: 2}, {ID: 3}}
	cat := NewCatalog(makeTimeslots(), nil, []Teacher{{ID: 1}, {ID: 2}}, nil, courses, lessons)

	others, ok := cat.SameTimeGroup(1)
	if !ok || len(others) != 1 || others[0].ID != 2 {
		t.Fatalf("expected lesson 1 grouped with lesson 2, got %+v ok=%v", others, ok)
	}
	if _, ok := cat.SameTimeGroup(3); ok {
		t.Fatalf("lesson 3 has no SameTimeGroup key and should not resolve to a group")
	}
	groups := cat.AllSameTimeGroups()
	if len(groups) != 1 || len(groups[0]) != 2 {
		t.Fatalf("expected exactly one group of size 2, got %+v", groups)
	}
	selfIncl := cat.SameTimeGroupIncludingSelf(1)
	if len(selfIncl) != 2 {
		t.Fatalf("expected self+1 other, got %d", len(selfIncl))
	}
}

func TestConsecutivePairs(t *testing.T) {
	lessons := []Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}, ConsecutiveToLessonID: 1},
	}
	cat := NewCatalog(makeTimeslots(), nil, []Teacher{{ID: 1}}, nil, []Course{{ID: 1}}, lessons)
	pairs := cat.ConsecutivePairs()
	if len(pairs) != 1 || pairs[0][0].ID != 1 || pairs[0][1].ID != 2 {
		t.Fatalf("expected one pair (1 -> 2), got %+v", pairs)
	}
}

func TestWholeAndPartCohortLessonSplit(t *testing.T) {
	lessons := []Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, WholeSemesterGroup: true, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 1, TimeslotSize: 1, WholeSemesterGroup: false, TeacherIDs: []int{1}},
	}
	courses := []Course{{ID: 1, CohortIDs: []int{1}}}
	cat := NewCatalog(makeTimeslots(), nil, []Teacher{{ID: 1}}, []Cohort{{ID: 1}}, courses, lessons)

	whole := cat.WholeCohortLessonsOfCohort(1)
	part := cat.PartCohortLessonsOfCohort(1)
	if len(whole) != 1 || whole[0].ID != 1 {
		t.Fatalf("expected only lesson 1 whole-cohort, got %+v", whole)
	}
	if len(part) != 1 || part[0].ID != 2 {
		t.Fatalf("expected only lesson 2 part-cohort, got %+v", part)
	}
}

func TestTimeslotsPerDayFallsBackWhenEmpty(t *testing.T) {
	cat := NewCatalog(nil, nil, nil, nil, nil, nil)
	if got := cat.TimeslotsPerDay(); got != DefaultTimeslotsPerDay {
		t.Fatalf("expected fallback %d, got %d", DefaultTimeslotsPerDay, got)
	}
	cat2 := NewCatalog(makeTimeslots(), nil, nil, nil, nil, nil)
	if got := cat2.TimeslotsPerDay(); got != 6 {
		t.Fatalf("expected 6 slots/day from synthesized grid, got %d", got)
	}
}
