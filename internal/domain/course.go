package domain

// Course is one subject offered to one or more cohorts, possibly split
// into several Lessons across the week.
type Course struct {
	ID                  int
	Name                string
	Type                CourseType
	OnlyForenoon        bool
	AllInOneBlock       bool
	IsLecture           bool
	OnePerDayPerTeacher bool
	PossibleRoomIDs     []int
	CohortIDs           []int

	// LessonIDs is populated by NewCatalog once Lessons are known; it is
	// not part of the loader's input record.
	LessonIDs []int
}

// HasRoomRestriction reports whether the course's room choice is
// constrained to a specific set (an empty set means any room is usable).
func (c Course) HasRoomRestriction() bool {
	return len(c.PossibleRoomIDs) > 0
}
