package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedulekit/timetable/internal/domain"
)

func writeJSON(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadCatalogSynthesizesGridWhenTimeslotsMissing(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "rooms.json", `[{"id":1,"name":"R1","not_available_timeslots":[]}]`)
	writeJSON(t, dir, "teachers.json", `[{"id":1,"abbreviation":"AB","study_day_1":"","study_day_2":"","max_lessons_per_day":5,"max_lectures_per_day":3,"max_lectures_as_block":2,"avoid_free_day_gaps":false,"not_available_timeslots":[]}]`)
	writeJSON(t, dir, "cohorts.json", `[{"id":1,"abbreviation":"C1","max_lessons_per_day":5,"free_day":""}]`)
	writeJSON(t, dir, "courses.json", `[{"id":1,"name":"Math","type":"LECTURE","only_forenoon":false,"all_in_one_block":false,"is_lecture":true,"one_per_day_per_teacher":false,"possible_room_ids":[1],"cohort_ids":[1]}]`)
	writeJSON(t, dir, "lessons.json", `[{"id":1,"course_id":1,"timeslot_size":1,"whole_semester_group":true,"teacher_ids":[1],"available_timeslot_ids":[],"same_time_group":"","consecutive_to_lesson_id":0}]`)

	cat, err := LoadCatalog(dir, 6)
	require.NoError(t, err)
	require.Len(t, cat.Timeslots, 30, "expected a synthesized Mon-Fri x 6 grid")
	require.Len(t, cat.Rooms, 1)
	require.Len(t, cat.Teachers, 1)
	require.Len(t, cat.Cohorts, 1)
	require.Len(t, cat.Courses, 1)
	require.Len(t, cat.Lessons, 1)

	teacher, ok := cat.Teacher(1)
	require.True(t, ok)
	require.Equal(t, domain.NoWeekday, teacher.StudyDay1)
	require.Equal(t, 5, teacher.MaxLessonsPerDay)

	course, ok := cat.Course(1)
	require.True(t, ok)
	require.Equal(t, domain.CourseTypeLecture, course.Type)
	require.Equal(t, []int{1}, course.LessonIDs)
}

func TestLoadCatalogAppliesTeacherDefaults(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "rooms.json", `[]`)
	writeJSON(t, dir, "teachers.json", `[{"id":1,"abbreviation":"AB","study_day_1":"MO","study_day_2":"","max_lessons_per_day":0,"max_lectures_per_day":0,"max_lectures_as_block":0,"avoid_free_day_gaps":false,"not_available_timeslots":[]}]`)
	writeJSON(t, dir, "cohorts.json", `[]`)
	writeJSON(t, dir, "courses.json", `[]`)
	writeJSON(t, dir, "lessons.json", `[]`)

	cat, err := LoadCatalog(dir, 6)
	require.NoError(t, err)
	teacher, ok := cat.Teacher(1)
	require.True(t, ok)
	require.Equal(t, domain.DefaultMaxLessonsPerDayTeacher, teacher.MaxLessonsPerDay)
	require.Equal(t, domain.DefaultMaxLecturesPerDayTeacher, teacher.MaxLecturesPerDay)
	require.Equal(t, domain.DefaultMaxLecturesAsBlockTeacher, teacher.MaxLecturesAsBlock)
	require.Equal(t, domain.Mon, teacher.StudyDay1)
}

func TestLoadCatalogRejectsInvalidWeekday(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "rooms.json", `[]`)
	writeJSON(t, dir, "teachers.json", `[{"id":1,"abbreviation":"AB","study_day_1":"SU","study_day_2":"","max_lessons_per_day":5,"max_lectures_per_day":3,"max_lectures_as_block":2,"avoid_free_day_gaps":false,"not_available_timeslots":[]}]`)
	writeJSON(t, dir, "cohorts.json", `[]`)
	writeJSON(t, dir, "courses.json", `[]`)
	writeJSON(t, dir, "lessons.json", `[]`)

	_, err := LoadCatalog(dir, 6)
	require.Error(t, err)
}

func TestLoadCatalogRejectsUnknownCourseType(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "rooms.json", `[]`)
	writeJSON(t, dir, "teachers.json", `[]`)
	writeJSON(t, dir, "cohorts.json", `[]`)
	writeJSON(t, dir, "courses.json", `[{"id":1,"name":"X","type":"SEMINAR","only_forenoon":false,"all_in_one_block":false,"is_lecture":false,"one_per_day_per_teacher":false,"possible_room_ids":[],"cohort_ids":[]}]`)
	writeJSON(t, dir, "lessons.json", `[]`)

	_, err := LoadCatalog(dir, 6)
	require.Error(t, err)
}

func TestLoadCatalogReadsExplicitTimeslots(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "rooms.json", `[]`)
	writeJSON(t, dir, "teachers.json", `[]`)
	writeJSON(t, dir, "cohorts.json", `[]`)
	writeJSON(t, dir, "courses.json", `[]`)
	writeJSON(t, dir, "lessons.json", `[]`)
	writeJSON(t, dir, "timeslots.json", `[{"id":1,"weekday":"MO","number_in_day":1},{"id":2,"weekday":"MO","number_in_day":2}]`)

	cat, err := LoadCatalog(dir, 6)
	require.NoError(t, err)
	require.Len(t, cat.Timeslots, 2)
}
