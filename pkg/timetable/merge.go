package timetable

import (
	"sort"
	"strconv"
	"strings"
)

// mergeWeekOrder is the Monday-first weekday ordering used to sort
// sessions before merging. This is a display/merge ordering only; the
// exporter keeps its own Sunday-first numbering for date arithmetic.
var mergeWeekOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// MergeSessions coalesces sessions that are really one contiguous
// meeting split across grid rows. Sessions are sorted by weekday and
// start time, then walked once: a candidate that matches the previous
// accepted session on day, title, location and description and starts
// exactly where it ends extends it instead of being appended. Running
// the merge on already-merged input is a no-op.
func MergeSessions(sessions []Session) []Session {
	sorted := make([]Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := mergeWeekOrder[sorted[i].Day], mergeWeekOrder[sorted[j].Day]
		if di != dj {
			return di < dj
		}
		return timeToMinutes(sorted[i].Start) < timeToMinutes(sorted[j].Start)
	})

	var merged []Session
	for _, s := range sorted {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.Day == s.Day &&
				last.Title == s.Title &&
				last.Location == s.Location &&
				last.Description == s.Description &&
				timeToMinutes(last.Start)+last.DurationMinutes == timeToMinutes(s.Start) {
				last.DurationMinutes += s.DurationMinutes
				continue
			}
		}
		merged = append(merged, s)
	}
	return merged
}

// timeToMinutes converts an "HH:MM" wall-clock time to minutes from
// midnight. Malformed times sort as midnight rather than failing; the
// parser only emits times copied verbatim from row headers.
func timeToMinutes(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}
