package domain

// Room is a physical space lessons can be scheduled into. Rooms carry no
// capacity; the only constraint a room carries here is a set of timeslots
// it cannot be used in (e.g. maintenance, shared use outside the
// timetable).
type Room struct {
	ID                      int
	Name                    string
	NotAvailableTimeslotIDs []int
}

// Teacher is the instructor of one or more lessons. StudyDay1/2 are the
// teacher's chosen weekdays off, in preference order; NoWeekday means the
// slot is unset. Max* fields default per DefaultMaxLessonsPerDayTeacher etc.
// when the catalog omits them.
type Teacher struct {
	ID                      int
	Abbreviation            string
	StudyDay1               Weekday
	StudyDay2               Weekday
	MaxLessonsPerDay        int
	MaxLecturesPerDay       int
	MaxLecturesAsBlock      int
	AvoidFreeDayGaps        bool
	NotAvailableTimeslotIDs []int
}

// HasStudyDay reports whether the teacher has both study-day choices
// configured. The study-day rule only applies with both set; a single
// choice is ignored.
func (t Teacher) HasStudyDay() bool {
	return t.StudyDay1 != NoWeekday && t.StudyDay2 != NoWeekday
}

// StudyDaysCoincide reports whether both study-day choices name the same
// weekday, in which case only one study-day boolean is ever created.
func (t Teacher) StudyDaysCoincide() bool {
	return t.StudyDay1 != NoWeekday && t.StudyDay1 == t.StudyDay2
}
