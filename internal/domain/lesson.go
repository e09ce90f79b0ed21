package domain

// Lesson is one occurrence of a Course: a fixed number of consecutive
// timeslots (TimeslotSize) on a single weekday, taught by one or more
// teachers. WholeSemesterGroup distinguishes lessons the whole cohort
// attends from "part-cohort" lessons (e.g. lab groups) that may run in
// parallel with other part-cohort lessons of different courses.
type Lesson struct {
	ID                    int
	CourseID              int
	TimeslotSize          int
	WholeSemesterGroup    bool
	TeacherIDs            []int

	// AvailableTimeslotIDs narrows the admissible start slots for this
	// lesson specifically; empty means "no lesson-local restriction".
	AvailableTimeslotIDs []int

	// SameTimeGroup is the raw equivalence-class key from the catalog; an
	// empty string means the lesson belongs to no same-time group. Lessons
	// sharing a non-empty key must start at the same slot (Catalog builds
	// the resolved, symmetric, transitively-closed groups from this key).
	SameTimeGroup string

	// ConsecutiveToLessonID, if non-zero, names the lesson this one must
	// start immediately after (same weekday, no gap). The relation is
	// stored on the successor and resolved into forward edges by Catalog.
	ConsecutiveToLessonID int
}
