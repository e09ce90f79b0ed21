package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedulekit/timetable/internal/domain"
	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/timeslotindex"
)

func grid(slotsPerDay int) []domain.Timeslot {
	var out []domain.Timeslot
	id := 1
	for w := domain.Mon; w <= domain.Fri; w++ {
		for n := 1; n <= slotsPerDay; n++ {
			out = append(out, domain.Timeslot{ID: id, Weekday: w, NumberInDay: n})
			id++
		}
	}
	return out
}

// place adds a contiguous block of n slots for lesson starting at startID.
func place(t *testing.T, sol *solution.Solution, cat *domain.Catalog, lessonID, roomID, startID, n int) {
	lesson, ok := cat.Lesson(lessonID)
	require.True(t, ok, "lesson %d must exist in catalog", lessonID)
	room, ok := cat.Room(roomID)
	require.True(t, ok, "room %d must exist in catalog", roomID)
	for i := 0; i < n; i++ {
		ts, ok := cat.Timeslot(startID + i)
		require.True(t, ok, "timeslot %d must exist in catalog", startID+i)
		sol.Add(lesson, room, ts)
	}
}

func TestValidateAcceptsCleanSolution(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1, MaxLessonsPerDay: 5}}
	rooms := []domain.Room{{ID: 1, Name: "R1"}}
	cohorts := []domain.Cohort{{ID: 1, MaxLessonsPerDay: 5}}
	courses := []domain.Course{{ID: 1, CohortIDs: []int{1}, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{{ID: 1, CourseID: 1, TimeslotSize: 1, WholeSemesterGroup: true, TeacherIDs: []int{1}}}
	cat := domain.NewCatalog(grid(6), rooms, teachers, cohorts, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 1)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.True(t, res.Valid(), "expected no failures, got %+v", res.Failures)
}

func TestValidateCatchesTeacherDoubleBooking(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1, MaxLessonsPerDay: 5}}
	rooms := []domain.Room{{ID: 1}, {ID: 2}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1, 2}}, {ID: 2, PossibleRoomIDs: []int{1, 2}}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 2, TimeslotSize: 1, TeacherIDs: []int{1}},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 1)
	place(t, sol, cat, 2, 2, 1, 1) // same slot, different room, same teacher
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "teacher-time")
}

func TestValidateAllowsSameTimeGroupSharedSlot(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}, {ID: 2}}
	rooms := []domain.Room{{ID: 1}, {ID: 2}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}, {ID: 2, PossibleRoomIDs: []int{2}}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}, SameTimeGroup: "g"},
		{ID: 2, CourseID: 2, TimeslotSize: 1, TeacherIDs: []int{2}, SameTimeGroup: "g"},
	}
	courses[0].CohortIDs = []int{1}
	courses[1].CohortIDs = []int{1}
	cohorts := []domain.Cohort{{ID: 1, MaxLessonsPerDay: 5}}
	lessons[0].WholeSemesterGroup = true
	lessons[1].WholeSemesterGroup = true
	cat := domain.NewCatalog(grid(6), rooms, teachers, cohorts, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 1)
	place(t, sol, cat, 2, 2, 1, 1)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.True(t, res.Valid(), "same-time group sharing a slot is legitimate, got %+v", res.Failures)
}

func TestValidateCatchesRoomDoubleBooking(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}, {ID: 2}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}, {ID: 2, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 2, TimeslotSize: 1, TeacherIDs: []int{2}},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 1)
	place(t, sol, cat, 2, 1, 1, 1)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "room-time")
}

func TestValidateCatchesLessonShapeGap(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{{ID: 1, CourseID: 1, TimeslotSize: 2, TeacherIDs: []int{1}}}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	lesson, _ := cat.Lesson(1)
	room, _ := cat.Room(1)
	ts1, _ := cat.Timeslot(1)
	ts3, _ := cat.Timeslot(3) // not adjacent to slot 1: gap at slot 2
	sol.Add(lesson, room, ts1)
	sol.Add(lesson, room, ts3)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "lesson-shape")
}

func TestValidateCatchesStudyDayViolation(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1, StudyDay1: domain.Mon, StudyDay2: domain.Fri, MaxLessonsPerDay: 5}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, domain.SlotID(domain.Mon, 1, 6), 1) // on study day 1
	place(t, sol, cat, 2, 1, domain.SlotID(domain.Fri, 1, 6), 1) // on study day 2 too -> no free study day
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "study-day")
}

func TestValidateAcceptsOneFreeStudyDay(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1, StudyDay1: domain.Mon, StudyDay2: domain.Fri, MaxLessonsPerDay: 5}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}}}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, domain.SlotID(domain.Mon, 2, 6), 1) // study day 1 used, study day 2 free
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.True(t, res.Valid(), "teacher has study day 2 free, expected valid, got %+v", res.Failures)
}

func TestValidateCatchesRoomNotAvailable(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1, NotAvailableTimeslotIDs: []int{1}}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}}}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 1)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "room-not-available")
}

func TestValidateCatchesForenoonViolation(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}, OnlyForenoon: true}}
	lessons := []domain.Lesson{{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}}}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, domain.SlotID(domain.Mon, 4, 6), 1) // 4th slot: afternoon
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "forenoon")
}

func TestValidateCatchesGivenTimeslotsViolation(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}, AvailableTimeslotIDs: []int{1, 2}}}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 5, 1) // slot 5 not in the allowed set
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "given-timeslots")
}

func TestValidateCatchesConsecutiveViolation(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}, ConsecutiveToLessonID: 1},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 1)
	place(t, sol, cat, 2, 1, 5, 1) // should be slot 2, not 5
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "consecutive")
}

func TestValidateAcceptsConsecutiveChain(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}, ConsecutiveToLessonID: 1},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 1)
	place(t, sol, cat, 2, 1, 2, 1)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.True(t, res.Valid(), "expected a properly chained consecutive pair to validate, got %+v", res.Failures)
}

func TestValidateCatchesAllInOneBlockSplit(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}, AllInOneBlock: true}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 2, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, 1, 2) // slots 1,2
	place(t, sol, cat, 2, 1, 4, 1) // slot 4: leaves a gap at slot 3
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "course-block")
}

func TestValidateCatchesOneCoursePerDayPerTeacherViolation(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1}}
	rooms := []domain.Room{{ID: 1}, {ID: 2}}
	courses := []domain.Course{
		{ID: 1, PossibleRoomIDs: []int{1}, OnePerDayPerTeacher: true},
		{ID: 2, PossibleRoomIDs: []int{2}, OnePerDayPerTeacher: true},
	}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 2, TimeslotSize: 1, TeacherIDs: []int{1}},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, domain.SlotID(domain.Mon, 1, 6), 1)
	place(t, sol, cat, 2, 2, domain.SlotID(domain.Mon, 2, 6), 1)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "one-course-per-day-teacher")
}

func TestValidateCatchesTeacherDailyCapViolation(t *testing.T) {
	teachers := []domain.Teacher{{ID: 1, MaxLessonsPerDay: 1}}
	rooms := []domain.Room{{ID: 1}, {ID: 2}}
	courses := []domain.Course{{ID: 1, PossibleRoomIDs: []int{1}}, {ID: 2, PossibleRoomIDs: []int{2}}}
	lessons := []domain.Lesson{
		{ID: 1, CourseID: 1, TimeslotSize: 1, TeacherIDs: []int{1}},
		{ID: 2, CourseID: 2, TimeslotSize: 1, TeacherIDs: []int{1}},
	}
	cat := domain.NewCatalog(grid(6), rooms, teachers, nil, courses, lessons)
	idx := timeslotindex.Build(cat.Timeslots, 6)

	sol := solution.New(0, 0, cat)
	place(t, sol, cat, 1, 1, domain.SlotID(domain.Mon, 1, 6), 1)
	place(t, sol, cat, 2, 2, domain.SlotID(domain.Mon, 2, 6), 1)
	sol.Finalize()

	res := Validate(sol, cat, idx)
	require.False(t, res.Valid())
	require.Contains(t, ruleNames(res), "max-lessons-per-day-teacher")
}

func ruleNames(res Result) []string {
	out := make([]string, 0, len(res.Failures))
	for _, f := range res.Failures {
		out = append(out, f.Rule)
	}
	return out
}
