package timetable

import (
	"github.com/PuerkitoBio/goquery"
)

// assembleTable turns one schedule table into its output groups. A
// table with per-subgroup detail cells yields one group per distinct
// subgroup, each combining the table's shared sessions with the
// subgroup's own; a table without detail cells is a single group named
// after its header.
func assembleTable(table *goquery.Selection) []Group {
	main := mainGroupLabel(table)
	days := dayHeaders(table)

	var shared []Session
	detail := make(map[string][]Session)
	var subgroups []string // first-appearance order

	for _, rc := range reconstructGrid(len(days), slotRows(table)) {
		day := days[rc.dayIndex]
		duration := rc.rowSpan * SlotMinutes

		switch content := interpretCell(rc.sel).(type) {
		case SharedEntry:
			shared = append(shared, Session{
				Day:             day,
				Start:           rc.start,
				DurationMinutes: duration,
				Title:           content.Title,
				Location:        content.Location,
				Description:     content.Lecturers,
			})
		case DetailEntries:
			for _, entry := range content {
				if _, ok := detail[entry.Subgroup]; !ok {
					subgroups = append(subgroups, entry.Subgroup)
				}
				detail[entry.Subgroup] = append(detail[entry.Subgroup], Session{
					Day:             day,
					Start:           rc.start,
					DurationMinutes: duration,
					Title:           entry.Title,
					Location:        entry.Location,
					Description:     entry.Lecturers + "\nGroup " + entry.Subgroup,
				})
			}
		}
	}

	if len(subgroups) == 0 {
		return []Group{{
			ID:          main,
			Label:       main,
			ParentGroup: main,
			Events:      MergeSessions(shared),
		}}
	}

	groups := make([]Group, 0, len(subgroups))
	for _, sub := range subgroups {
		sessions := make([]Session, 0, len(shared)+len(detail[sub]))
		sessions = append(sessions, shared...)
		sessions = append(sessions, detail[sub]...)
		groups = append(groups, Group{
			ID:          sub,
			Label:       sub + " (" + main + ")",
			ParentGroup: main,
			Events:      MergeSessions(sessions),
		})
	}
	return groups
}
