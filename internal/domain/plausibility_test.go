package domain

import "testing"

func TestPlausibilityCheckFlagsOversizedLesson(t *testing.T) {
	teachers := []Teacher{{ID: 1, MaxLessonsPerDay: 3}}
	lessons := []Lesson{{ID: 1, CourseID: 1, TimeslotSize: 4, TeacherIDs: []int{1}}}
	cat := NewCatalog(makeTimeslots(), nil, teachers, nil, []Course{{ID: 1}}, lessons)

	diags := cat.PlausibilityCheck()
	found := false
	for _, d := range diags {
		if d.EntityKind == "Teacher" && d.EntityID == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Teacher diagnostic for a lesson longer than max_lessons_per_day, got %+v", diags)
	}
}

func TestPlausibilityCheckSilentOnReasonableLoad(t *testing.T) {
	teachers := []Teacher{{ID: 1, MaxLessonsPerDay: 5}}
	lessons := []Lesson{{ID: 1, CourseID: 1, TimeslotSize: 2, TeacherIDs: []int{1}}}
	cat := NewCatalog(makeTimeslots(), nil, teachers, nil, []Course{{ID: 1}}, lessons)

	diags := cat.PlausibilityCheck()
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics for a light, unconstrained load, got %+v", diags)
	}
}

func TestPlausibilityCheckFlagsOverlongAllInOneBlock(t *testing.T) {
	lessons := []Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 4, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 1, TimeslotSize: 4, TeacherIDs: []int{1}},
		{ID: 3, CourseID: 1, TimeslotSize: 4, TeacherIDs: []int{1}},
	}
	courses := []Course{{ID: 1, AllInOneBlock: true}}
	cat := NewCatalog(makeTimeslots(), nil, []Teacher{{ID: 1, MaxLessonsPerDay: 6}}, nil, courses, lessons)

	diags := cat.PlausibilityCheck()
	found := false
	for _, d := range diags {
		if d.EntityKind == "Course" && d.EntityID == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Course diagnostic for a block too long to fit in one day, got %+v", diags)
	}
}

func TestPlausibilityCheckFlagsForenoonOverflow(t *testing.T) {
	lessons := []Lesson{{ID: 1, CourseID: 1, TimeslotSize: 4, TeacherIDs: []int{1}}}
	courses := []Course{{ID: 1, OnlyForenoon: true}}
	cat := NewCatalog(makeTimeslots(), nil, []Teacher{{ID: 1, MaxLessonsPerDay: 6}}, nil, courses, lessons)

	diags := cat.PlausibilityCheck()
	found := false
	for _, d := range diags {
		if d.EntityKind == "Course" && d.EntityID == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a forenoon-overflow diagnostic, got %+v", diags)
	}
}
