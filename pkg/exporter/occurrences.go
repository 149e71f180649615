package exporter

import (
	"time"

	"github.com/Beliver-247/UniSchedule/pkg/timetable"

	"github.com/teambition/rrule-go"
)

// Occurrences expands a weekly session into the concrete start times
// it occurs on within the inclusive semester date range.
func Occurrences(s timetable.Session, rangeStart, rangeEnd time.Time) ([]time.Time, error) {
	if err := validateRange(rangeStart, rangeEnd); err != nil {
		return nil, err
	}

	first, err := firstOccurrence(s.Day, s.Start, rangeStart)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: first,
		Until:   endOfDay(rangeEnd),
	})
	if err != nil {
		return nil, err
	}

	return rule.All(), nil
}
