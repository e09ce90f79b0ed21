// Package softconstraints builds the derived counters for the optional
// scheduling wishes (unpopular hours, timetable gaps, free-day requests)
// and composes them into the weighted objective expression minimized by
// the solver.
package softconstraints

// Weights, one per soft-constraint family.
const (
	PreferFirstStudyDayPenalty = 30

	SixthHourPenalty = 5
	FifthHourPenalty = 3
	FirstHourPenalty = 2

	OneTimeslotGapPenalty   = 3
	TwoTimeslotGapPenalty   = 4
	ThreeTimeslotGapPenalty = 4
	FourTimeslotGapPenalty  = 3

	OneDayGapPenalty   = 18
	TwoDayGapPenalty   = 30
	ThreeDayGapPenalty = 18

	LessonsOnFreeDayPenalty = 9
)
