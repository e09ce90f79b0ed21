package domain

import "fmt"

// Diagnostic is one plausibility-check finding: input data that can only
// produce an infeasible model, detected before the model is even built.
type Diagnostic struct {
	EntityKind string // "Teacher", "Course", "Cohort"
	EntityID   int
	Message    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %d: %s", d.EntityKind, d.EntityID, d.Message)
}

// PlausibilityCheck runs the pre-solve sanity checks over the whole
// catalog and returns every finding; it never aborts by itself (the caller
// decides whether any finding is severe enough to stop model building).
func (c *Catalog) PlausibilityCheck() []Diagnostic {
	var out []Diagnostic
	slotsPerDay := c.TimeslotsPerDay()

	for _, t := range c.Teachers {
		lessons := c.LessonsOfTeacher(t.ID)
		var totalHours int
		var longest int
		for _, l := range lessons {
			totalHours += l.TimeslotSize
			if l.TimeslotSize > longest {
				longest = l.TimeslotSize
			}
		}
		maxPerDay := t.MaxLessonsPerDay
		if maxPerDay == 0 {
			maxPerDay = DefaultMaxLessonsPerDayTeacher
		}
		if longest > maxPerDay {
			out = append(out, Diagnostic{"Teacher", t.ID, fmt.Sprintf(
				"has a lesson of size %d, longer than max_lessons_per_day=%d", longest, maxPerDay)})
		}
		available := WeekdaysPerWeek*maxPerDay - len(t.NotAvailableTimeslotIDs)
		if t.HasStudyDay() {
			available -= slotsPerDay
		}
		if totalHours > available {
			out = append(out, Diagnostic{"Teacher", t.ID, fmt.Sprintf(
				"lesson load %d exceeds estimated available slots %d", totalHours, available)})
		}
	}

	for _, co := range c.Courses {
		var block int
		var longest int
		for _, lid := range co.LessonIDs {
			l, _ := c.Lesson(lid)
			block += l.TimeslotSize
			if l.TimeslotSize > longest {
				longest = l.TimeslotSize
			}
		}
		if co.OnlyForenoon {
			over := longest
			if co.AllInOneBlock {
				over = block
			}
			if over > ForenoonSlotCount {
				out = append(out, Diagnostic{"Course", co.ID, fmt.Sprintf(
					"only_forenoon course needs %d consecutive slots, forenoon window is %d", over, ForenoonSlotCount)})
			}
		}
		if co.AllInOneBlock && block > 1 && block+1-longest > slotsPerDay {
			out = append(out, Diagnostic{"Course", co.ID, fmt.Sprintf(
				"all_in_one_block size %d cannot fit in a %d-slot day", block, slotsPerDay)})
		}
	}

	for _, g := range c.Cohorts {
		var totalHours int
		for _, l := range c.WholeCohortLessonsOfCohort(g.ID) {
			totalHours += l.TimeslotSize
		}
		maxPerDay := g.MaxLessonsPerDay
		if maxPerDay == 0 {
			maxPerDay = DefaultMaxLessonsPerDayCohort
		}
		if totalHours > WeekdaysPerWeek*maxPerDay {
			out = append(out, Diagnostic{"Cohort", g.ID, fmt.Sprintf(
				"whole-cohort lesson load %d exceeds weekly capacity %d", totalHours, WeekdaysPerWeek*maxPerDay)})
		}
	}

	return out
}
