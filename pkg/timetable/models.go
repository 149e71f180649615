package timetable

// Session represents one weekly meeting of a group: a weekday, a start
// time on the wall clock and a duration.
type Session struct {
	Day             string `json:"day"`             // Weekday name, e.g. "Monday"
	Start           string `json:"start"`           // 24h wall-clock time, e.g. "09:00"
	DurationMinutes int    `json:"durationMinutes"` // Always > 0
	Title           string `json:"title"`
	Location        string `json:"location"`
	Description     string `json:"description"`
}

// Group is a named cohort (a whole class or one of its subgroups) with
// its own ordered list of sessions.
type Group struct {
	ID          string    `json:"id"`          // Unique across the whole dataset
	Label       string    `json:"label"`       // Display name, e.g. "101a (CS-2)"
	ParentGroup string    `json:"parentGroup"` // The table's main group this was extracted from
	Events      []Session `json:"events"`
}

// Dataset is the canonical output of one parse run. It is fully
// replaced on re-parse, never merged or patched.
type Dataset struct {
	GeneratedAt string  `json:"generatedAt"` // RFC 3339 timestamp of the parse run
	Groups      []Group `json:"groups"`
}

// FindGroup returns the group with the given id, or nil if the dataset
// has no such group.
func (d *Dataset) FindGroup(id string) *Group {
	for i := range d.Groups {
		if d.Groups[i].ID == id {
			return &d.Groups[i]
		}
	}
	return nil
}
