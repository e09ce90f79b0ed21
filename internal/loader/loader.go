// Package loader reads the on-disk catalog (rooms.json, teachers.json,
// cohorts.json, courses.json, lessons.json, and an optional
// timeslots.json) into a domain.Catalog. Records reference each other by
// id only; the Catalog resolves those references after every file is
// decoded.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schedulekit/timetable/internal/domain"
)

// LoadCatalog reads every catalog file under dir and assembles a
// domain.Catalog. slotsPerDay is only used when timeslots.json is absent,
// to synthesize the canonical Monday-Friday grid.
func LoadCatalog(dir string, slotsPerDay int) (*domain.Catalog, error) {
	rooms, err := loadRooms(filepath.Join(dir, "rooms.json"))
	if err != nil {
		return nil, err
	}
	teachers, err := loadTeachers(filepath.Join(dir, "teachers.json"))
	if err != nil {
		return nil, err
	}
	cohorts, err := loadCohorts(filepath.Join(dir, "cohorts.json"))
	if err != nil {
		return nil, err
	}
	courses, err := loadCourses(filepath.Join(dir, "courses.json"))
	if err != nil {
		return nil, err
	}
	lessons, err := loadLessons(filepath.Join(dir, "lessons.json"))
	if err != nil {
		return nil, err
	}
	timeslots, err := loadTimeslots(filepath.Join(dir, "timeslots.json"), slotsPerDay)
	if err != nil {
		return nil, err
	}

	return domain.NewCatalog(timeslots, rooms, teachers, cohorts, courses, lessons), nil
}

// decodeJSON opens path and decodes its JSON body into out.
func decodeJSON(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
