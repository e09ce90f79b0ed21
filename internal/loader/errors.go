package loader

import "fmt"

// badWeekday reports a catalog record whose weekday field is neither a
// recognized two-letter abbreviation nor empty.
func badWeekday(kind string, id int, field, value string) error {
	return fmt.Errorf("%s %d: invalid %s %q", kind, id, field, value)
}
