package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Beliver-247/UniSchedule/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// floatingLayout renders a local date-time without a zone suffix, so
// calendar clients interpret occurrences on the viewer's wall clock.
const floatingLayout = "20060102T150405"

// uidSuffix namespaces generated event identifiers. Re-exporting the
// same group and date range reproduces the same UIDs.
const uidSuffix = "@unischedule"

// dayNumbers maps weekday names to Go's native Sunday-first numbering
// used for date arithmetic. The merge step in pkg/timetable sorts with
// its own Monday-first ordering; the two are deliberately separate.
var dayNumbers = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// GenerateICS writes one group's sessions as a weekly-recurring ICS
// calendar covering the inclusive semester date range. Sessions whose
// weekday or start time cannot be resolved are skipped rather than
// failing the whole export.
func GenerateICS(group *timetable.Group, rangeStart, rangeEnd time.Time, w io.Writer) error {
	if err := validateRange(rangeStart, rangeEnd); err != nil {
		return err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//UniSchedule//UniSchedule Calendar Export//EN")

	now := time.Now()
	until := endOfDay(rangeEnd).Format(floatingLayout)

	for i, s := range group.Events {
		first, err := firstOccurrence(s.Day, s.Start, rangeStart)
		if err != nil {
			continue
		}
		end := first.Add(time.Duration(s.DurationMinutes) * time.Minute)

		uid := fmt.Sprintf("%s-%s-%s-%d%s", group.ID, s.Day, s.Start, i, uidSuffix)
		event := cal.AddEvent(uid)
		event.SetDtStampTime(now)
		event.SetProperty(ics.ComponentPropertySummary, escapeText(s.Title))
		event.SetProperty(ics.ComponentPropertyDtStart, first.Format(floatingLayout))
		event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(floatingLayout))
		event.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;UNTIL="+until)

		if s.Location != "" {
			event.SetProperty(ics.ComponentPropertyLocation, escapeText(s.Location))
		}
		if s.Description != "" {
			event.SetProperty(ics.ComponentPropertyDescription, escapeText(s.Description))
		}
	}

	return cal.SerializeTo(w)
}

// validateRange refuses inverted semester bounds before any date
// arithmetic happens.
func validateRange(rangeStart, rangeEnd time.Time) error {
	if dateOnly(rangeEnd).Before(dateOnly(rangeStart)) {
		return fmt.Errorf("invalid date range: start %s is after end %s",
			rangeStart.Format("2006-01-02"), rangeEnd.Format("2006-01-02"))
	}
	return nil
}

// firstOccurrence finds the first date on or after the range start
// that falls on the session's weekday and combines it with the
// session's wall-clock start time. The scan advances at most six days.
func firstOccurrence(day, start string, rangeStart time.Time) (time.Time, error) {
	weekday, ok := dayNumbers[day]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday %q", day)
	}

	clock, err := time.Parse("15:04", start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: %w", start, err)
	}

	date := dateOnly(rangeStart)
	for date.Weekday() != weekday {
		date = date.AddDate(0, 0, 1)
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, rangeStart.Location()), nil
}

// endOfDay is the recurrence terminus for a semester ending on the
// given date: 23:59 local on that day, so the final week's occurrence
// survives even when it lands exactly on the boundary date.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// escapeText applies RFC 5545 text escaping. Backslashes go first so
// the replacements the other rules introduce are not escaped twice.
func escapeText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, ";", "\\;")
	text = strings.ReplaceAll(text, ",", "\\,")
	text = strings.ReplaceAll(text, "\n", "\\n")
	return text
}
