package domain

import "sort"

// Catalog is the Entity Graph: a read-only, in-memory snapshot of every
// Timeslot, Room, Teacher, Cohort, Course and Lesson plus the derived,
// id-keyed associations between them. It never holds decision variables;
// those live in side-tables built separately by the Variable Factory and
// keyed by the same ids, so that Catalog can be handed to many solver
// runs (or rebuilt for tests) without re-parsing the source data.
type Catalog struct {
	Timeslots []Timeslot
	Rooms     []Room
	Teachers  []Teacher
	Cohorts   []Cohort
	Courses   []Course
	Lessons   []Lesson

	timeslotByID map[int]Timeslot
	roomByID     map[int]Room
	teacherByID  map[int]Teacher
	cohortByID   map[int]Cohort
	courseByID   map[int]Course
	lessonByID   map[int]Lesson

	// sameTimeGroups maps a resolved group key to its member lesson ids,
	// ascending. Groups are keyed by the lowest lesson id in the group so
	// that iteration order is deterministic regardless of the raw string
	// keys used in the input.
	sameTimeGroups      map[int][]int
	lessonToGroupKey    map[int]int
	lessonsByTeacher    map[int][]int
	lessonsByCohort     map[int][]int
	lessonsByCourse     map[int][]int
	consecutiveSuccessor map[int]int // lesson id -> the lesson that must follow it directly
}

// NewCatalog builds a Catalog from loader-supplied slices and computes all
// derived associations. Input slices need not be sorted; Catalog exposes
// id-ascending accessors regardless of input order, so model construction
// stays reproducible even for hand-built test catalogs.
func NewCatalog(timeslots []Timeslot, rooms []Room, teachers []Teacher, cohorts []Cohort, courses []Course, lessons []Lesson) *Catalog {
	c := &Catalog{
		Timeslots: append([]Timeslot(nil), timeslots...),
		Rooms:     append([]Room(nil), rooms...),
		Teachers:  append([]Teacher(nil), teachers...),
		Cohorts:   append([]Cohort(nil), cohorts...),
		Courses:   append([]Course(nil), courses...),
		Lessons:   append([]Lesson(nil), lessons...),
	}
	sort.Slice(c.Timeslots, func(i, j int) bool { return c.Timeslots[i].ID < c.Timeslots[j].ID })
	sort.Slice(c.Rooms, func(i, j int) bool { return c.Rooms[i].ID < c.Rooms[j].ID })
	sort.Slice(c.Teachers, func(i, j int) bool { return c.Teachers[i].ID < c.Teachers[j].ID })
	sort.Slice(c.Cohorts, func(i, j int) bool { return c.Cohorts[i].ID < c.Cohorts[j].ID })
	sort.Slice(c.Courses, func(i, j int) bool { return c.Courses[i].ID < c.Courses[j].ID })
	sort.Slice(c.Lessons, func(i, j int) bool { return c.Lessons[i].ID < c.Lessons[j].ID })

	c.timeslotByID = make(map[int]Timeslot, len(c.Timeslots))
	for _, t := range c.Timeslots {
		c.timeslotByID[t.ID] = t
	}
	c.roomByID = make(map[int]Room, len(c.Rooms))
	for _, r := range c.Rooms {
		c.roomByID[r.ID] = r
	}
	c.teacherByID = make(map[int]Teacher, len(c.Teachers))
	for _, t := range c.Teachers {
		c.teacherByID[t.ID] = t
	}
	c.cohortByID = make(map[int]Cohort, len(c.Cohorts))
	for _, g := range c.Cohorts {
		c.cohortByID[g.ID] = g
	}
	c.courseByID = make(map[int]Course, len(c.Courses))
	for _, co := range c.Courses {
		c.courseByID[co.ID] = co
	}
	c.lessonByID = make(map[int]Lesson, len(c.Lessons))
	for _, l := range c.Lessons {
		c.lessonByID[l.ID] = l
	}

	c.buildAssociations()
	return c
}

func (c *Catalog) buildAssociations() {
	c.lessonsByTeacher = make(map[int][]int)
	c.lessonsByCohort = make(map[int][]int)
	c.lessonsByCourse = make(map[int][]int)
	c.consecutiveSuccessor = make(map[int]int)

	// Raw SameTimeGroup string keys resolve to the lowest member lesson
	// id. Lessons sharing a non-empty raw key form one equivalence class;
	// symmetry and transitive closure fall out of the keying itself.
	rawGroups := make(map[string][]int)
	for _, l := range c.Lessons {
		if l.SameTimeGroup != "" {
			rawGroups[l.SameTimeGroup] = append(rawGroups[l.SameTimeGroup], l.ID)
		}
	}
	c.sameTimeGroups = make(map[int][]int)
	c.lessonToGroupKey = make(map[int]int)
	for _, members := range rawGroups {
		sort.Ints(members)
		if len(members) < 2 {
			continue
		}
		key := members[0]
		c.sameTimeGroups[key] = members
		for _, id := range members {
			c.lessonToGroupKey[id] = key
		}
	}

	for _, l := range c.Lessons {
		course := c.courseByID[l.CourseID]
		course.LessonIDs = append(course.LessonIDs, l.ID)
		c.courseByID[l.CourseID] = course

		c.lessonsByCourse[l.CourseID] = append(c.lessonsByCourse[l.CourseID], l.ID)
		for _, tid := range l.TeacherIDs {
			c.lessonsByTeacher[tid] = append(c.lessonsByTeacher[tid], l.ID)
		}
		for _, gid := range course.CohortIDs {
			c.lessonsByCohort[gid] = append(c.lessonsByCohort[gid], l.ID)
		}
		if l.ConsecutiveToLessonID != 0 {
			c.consecutiveSuccessor[l.ConsecutiveToLessonID] = l.ID
		}
	}
	// Reflect the now-populated LessonIDs back into Courses in id order.
	for i := range c.Courses {
		c.Courses[i] = c.courseByID[c.Courses[i].ID]
	}
}

// --- id lookups ---

func (c *Catalog) Timeslot(id int) (Timeslot, bool) { t, ok := c.timeslotByID[id]; return t, ok }
func (c *Catalog) Room(id int) (Room, bool)         { r, ok := c.roomByID[id]; return r, ok }
func (c *Catalog) Teacher(id int) (Teacher, bool)   { t, ok := c.teacherByID[id]; return t, ok }
func (c *Catalog) Cohort(id int) (Cohort, bool)     { g, ok := c.cohortByID[id]; return g, ok }
func (c *Catalog) Course(id int) (Course, bool)     { co, ok := c.courseByID[id]; return co, ok }
func (c *Catalog) Lesson(id int) (Lesson, bool)     { l, ok := c.lessonByID[id]; return l, ok }

// --- associations ---

// LessonsOfTeacher returns the lessons (ascending id) taught by the given
// teacher, i.e. the teacher's "lessons" back-reference.
func (c *Catalog) LessonsOfTeacher(teacherID int) []Lesson {
	return c.lessonsFor(c.lessonsByTeacher[teacherID])
}

// LessonsOfCohort returns every lesson (whole- or part-cohort) attended by
// the given cohort.
func (c *Catalog) LessonsOfCohort(cohortID int) []Lesson {
	return c.lessonsFor(c.lessonsByCohort[cohortID])
}

// WholeCohortLessonsOfCohort filters LessonsOfCohort to WholeSemesterGroup lessons.
func (c *Catalog) WholeCohortLessonsOfCohort(cohortID int) []Lesson {
	var out []Lesson
	for _, l := range c.LessonsOfCohort(cohortID) {
		if l.WholeSemesterGroup {
			out = append(out, l)
		}
	}
	return out
}

// PartCohortLessonsOfCohort filters LessonsOfCohort to part-cohort lessons.
func (c *Catalog) PartCohortLessonsOfCohort(cohortID int) []Lesson {
	var out []Lesson
	for _, l := range c.LessonsOfCohort(cohortID) {
		if !l.WholeSemesterGroup {
			out = append(out, l)
		}
	}
	return out
}

// LessonsOfCourse returns a course's lessons in ascending id order.
func (c *Catalog) LessonsOfCourse(courseID int) []Lesson {
	return c.lessonsFor(c.lessonsByCourse[courseID])
}

func (c *Catalog) lessonsFor(ids []int) []Lesson {
	out := make([]Lesson, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.lessonByID[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SameTimeGroup returns the other members of L's lessons_at_same_time
// equivalence class (not including L itself), and whether L belongs to one.
func (c *Catalog) SameTimeGroup(lessonID int) ([]Lesson, bool) {
	key, ok := c.lessonToGroupKey[lessonID]
	if !ok {
		return nil, false
	}
	var out []Lesson
	for _, id := range c.sameTimeGroups[key] {
		if id != lessonID {
			out = append(out, c.lessonByID[id])
		}
	}
	return out, true
}

// SameTimeGroupIncludingSelf is SameTimeGroup plus the lesson itself,
// convenient for the validator's set-based checks.
func (c *Catalog) SameTimeGroupIncludingSelf(lessonID int) []Lesson {
	others, ok := c.SameTimeGroup(lessonID)
	if !ok {
		if l, ok := c.lessonByID[lessonID]; ok {
			return []Lesson{l}
		}
		return nil
	}
	l := c.lessonByID[lessonID]
	return append([]Lesson{l}, others...)
}

// AllSameTimeGroups returns every equivalence class of size >= 2, in a
// deterministic order (by lowest member id).
func (c *Catalog) AllSameTimeGroups() [][]Lesson {
	keys := make([]int, 0, len(c.sameTimeGroups))
	for k := range c.sameTimeGroups {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([][]Lesson, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.lessonsFor(c.sameTimeGroups[k]))
	}
	return out
}

// ConsecutivePairs returns every (from, to) edge of lessons_consecutive, in
// ascending order of the "from" lesson's id.
func (c *Catalog) ConsecutivePairs() [][2]Lesson {
	var pairs [][2]Lesson
	for _, l := range c.Lessons {
		if to, ok := c.consecutiveSuccessor[l.ID]; ok {
			pairs = append(pairs, [2]Lesson{l, c.lessonByID[to]})
		}
	}
	return pairs
}

// TimeslotsPerDay derives the grid width from the loaded Timeslots,
// counting the slots on the first weekday present. Falls back to
// DefaultTimeslotsPerDay if Timeslots is empty.
func (c *Catalog) TimeslotsPerDay() int {
	if len(c.Timeslots) == 0 {
		return DefaultTimeslotsPerDay
	}
	day := c.Timeslots[0].Weekday
	count := 0
	for _, t := range c.Timeslots {
		if t.Weekday == day {
			count++
		}
	}
	if count == 0 {
		return DefaultTimeslotsPerDay
	}
	return count
}
