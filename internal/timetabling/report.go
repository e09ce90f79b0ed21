package timetabling

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/schedulekit/timetable/internal/solution"
	"github.com/schedulekit/timetable/internal/timeslotindex"
)

// printTimeTable prints one solution's console report: the whole
// timetable, grouped by weekday then timeslot, and optionally broken out
// per-teacher and per-cohort.
func printTimeTable(sol *solution.Solution, idx *timeslotindex.Index, index int, perTeacher, perCohort bool) {
	fmt.Printf("\n\n<<< Solution %d: OV = %.0f >>>\n", index, sol.ObjectiveValue)

	maxLine := printWholeTimeTable(sol, idx)

	if perTeacher {
		printTeacherTimeTables(sol, idx, maxLine)
	}
	if perCohort {
		printCohortTimeTables(sol, idx, maxLine)
	}
	fmt.Println()
}

func printWholeTimeTable(sol *solution.Solution, idx *timeslotindex.Index) int {
	maxLine := 0
	for _, day := range idx.Days() {
		if len(day) == 0 {
			continue
		}
		fmt.Printf("------------------ %s ------------------\n", day[0].Weekday)
		for _, ts := range day {
			placements := sol.PlacementsAt(ts.ID)
			if len(placements) == 0 {
				continue
			}
			fmt.Println(ts)
			for _, p := range placements {
				line := lessonLine(sol, p)
				fmt.Println(line)
				if len(line) > maxLine {
					maxLine = len(line)
				}
			}
		}
	}
	fmt.Println(strings.Repeat("_", maxLine))
	return maxLine
}

func printTeacherTimeTables(sol *solution.Solution, idx *timeslotindex.Index, maxLine int) {
	cat := sol.Catalog
	for _, teacher := range cat.Teachers {
		fmt.Printf("TimeTable for Teacher %d %s:\n", teacher.ID, teacher.Abbreviation)
		own := make(map[int]bool)
		for _, l := range cat.LessonsOfTeacher(teacher.ID) {
			own[l.ID] = true
		}
		for _, day := range idx.Days() {
			if len(day) == 0 {
				continue
			}
			fmt.Printf("------------------ %s ------------------\n", day[0].Weekday)
			for _, ts := range day {
				for _, p := range sol.PlacementsAt(ts.ID) {
					if !own[p.Lesson.ID] {
						continue
					}
					fmt.Println(ts)
					fmt.Println(lessonLine(sol, p))
				}
			}
		}
		fmt.Println(strings.Repeat("_", maxLine))
	}
}

func printCohortTimeTables(sol *solution.Solution, idx *timeslotindex.Index, maxLine int) {
	cat := sol.Catalog
	for _, cohort := range cat.Cohorts {
		fmt.Printf("TimeTable for Cohort %d %s:\n", cohort.ID, cohort.Abbreviation)
		own := make(map[int]bool)
		for _, l := range cat.LessonsOfCohort(cohort.ID) {
			own[l.ID] = true
		}
		for _, day := range idx.Days() {
			if len(day) == 0 {
				continue
			}
			fmt.Printf("------------------ %s ------------------\n", day[0].Weekday)
			for _, ts := range day {
				for _, p := range sol.PlacementsAt(ts.ID) {
					if !own[p.Lesson.ID] {
						continue
					}
					fmt.Println(ts)
					fmt.Println(lessonLine(sol, p))
				}
			}
		}
		fmt.Println(strings.Repeat("_", maxLine))
	}
}

// lessonLine renders one lesson occupying one slot: course id, lesson id,
// size, part-cohort/lecture flags, room, teachers.
func lessonLine(sol *solution.Solution, p solution.Placement) string {
	l := p.Lesson
	cat := sol.Catalog
	course, _ := cat.Course(l.CourseID)

	partFlag, lectureFlag := "", ""
	if !l.WholeSemesterGroup {
		partFlag = "P"
	}
	if course.IsLecture {
		lectureFlag = "L"
	}

	var cohortIDs []string
	for _, id := range course.CohortIDs {
		cohortIDs = append(cohortIDs, fmt.Sprintf("%d", id))
	}

	var teacherLabels []string
	for _, tid := range l.TeacherIDs {
		teacher, _ := cat.Teacher(tid)
		teacherLabels = append(teacherLabels, fmt.Sprintf("%d", teacher.ID))
	}

	return fmt.Sprintf("  C:%d L:%d [%d] %-24s %1s %1s R:%-3s SG:%-8s T:%s",
		course.ID, l.ID, l.TimeslotSize, course.Name, partFlag, lectureFlag,
		p.Room.Name, strings.Join(cohortIDs, ","), strings.Join(teacherLabels, ","))
}

// TimeslotDetail is one occupied slot in the JSON report.
type TimeslotDetail struct {
	Weekday     string `json:"weekday"`
	NumberInDay int    `json:"number_in_day"`
}

// LessonEvent is one lesson occupying one slot.
type LessonEvent struct {
	LessonID int            `json:"lesson_id"`
	Room     string         `json:"room"`
	Time     TimeslotDetail `json:"time"`
}

// CourseSchedule groups every lesson of one course.
type CourseSchedule struct {
	CourseID   int           `json:"course_id"`
	CourseName string        `json:"course_name"`
	Events     []LessonEvent `json:"events"`
}

// FullReport is the top-level JSON document the -e/--export flag writes.
type FullReport struct {
	University string           `json:"university,omitempty"`
	Department string           `json:"department,omitempty"`
	Semester   string           `json:"semester,omitempty"`
	Status     string           `json:"status"`
	Objective  float64          `json:"objective_value"`
	Courses    []CourseSchedule `json:"courses"`
	Stats      struct {
		TotalCourses int `json:"total_courses"`
		TotalLessons int `json:"total_lessons"`
	} `json:"stats"`
}

// Labels carries the -u/-d/-s report labels.
type Labels struct {
	University string
	Department string
	Semester   string
}

// BuildReport assembles the JSON-serializable FullReport from a Solution;
// status is the caller's solverapi.Status.String().
func BuildReport(sol *solution.Solution, status string, labels Labels) FullReport {
	var report FullReport
	report.University = labels.University
	report.Department = labels.Department
	report.Semester = labels.Semester
	report.Status = status
	report.Objective = sol.ObjectiveValue

	cat := sol.Catalog
	byCourse := make(map[int][]LessonEvent)
	for _, l := range cat.Lessons {
		for _, ts := range sol.TimeslotsOf(l.ID) {
			room, _ := sol.RoomOf(l.ID)
			byCourse[l.CourseID] = append(byCourse[l.CourseID], LessonEvent{
				LessonID: l.ID,
				Room:     room.Name,
				Time: TimeslotDetail{
					Weekday:     ts.Weekday.String(),
					NumberInDay: ts.NumberInDay,
				},
			})
		}
	}

	var courseIDs []int
	for id := range byCourse {
		courseIDs = append(courseIDs, id)
	}
	sort.Ints(courseIDs)

	totalLessons := 0
	for _, id := range courseIDs {
		course, _ := cat.Course(id)
		events := byCourse[id]
		sort.Slice(events, func(i, j int) bool { return events[i].LessonID < events[j].LessonID })
		report.Courses = append(report.Courses, CourseSchedule{
			CourseID:   course.ID,
			CourseName: course.Name,
			Events:     events,
		})
		totalLessons += len(events)
	}
	report.Stats.TotalCourses = len(report.Courses)
	report.Stats.TotalLessons = totalLessons
	return report
}

// ExportJSON writes the report to path as indented JSON.
func ExportJSON(path string, report FullReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
