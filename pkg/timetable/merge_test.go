package timetable

import (
	"reflect"
	"testing"
)

func TestMergeSessionsAdjacent(t *testing.T) {
	sessions := []Session{
		{Day: "Monday", Start: "09:00", DurationMinutes: 60, Title: "A", Location: "L", Description: "D"},
		{Day: "Monday", Start: "10:00", DurationMinutes: 60, Title: "A", Location: "L", Description: "D"},
	}

	merged := MergeSessions(sessions)

	want := []Session{
		{Day: "Monday", Start: "09:00", DurationMinutes: 120, Title: "A", Location: "L", Description: "D"},
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("expected adjacent identical sessions to merge.\nGot: %+v\nExpected: %+v", merged, want)
	}
}

func TestMergeSessionsDifferentTitle(t *testing.T) {
	sessions := []Session{
		{Day: "Monday", Start: "09:00", DurationMinutes: 60, Title: "A", Location: "L", Description: "D"},
		{Day: "Monday", Start: "10:00", DurationMinutes: 60, Title: "B", Location: "L", Description: "D"},
	}

	merged := MergeSessions(sessions)
	if len(merged) != 2 {
		t.Fatalf("sessions with different titles must not merge, got %+v", merged)
	}
	if merged[0].DurationMinutes != 60 || merged[1].DurationMinutes != 60 {
		t.Errorf("durations must be untouched, got %+v", merged)
	}
}

func TestMergeSessionsNoGapMerge(t *testing.T) {
	// A one-hour gap between otherwise identical sessions stays split.
	sessions := []Session{
		{Day: "Monday", Start: "09:00", DurationMinutes: 60, Title: "A"},
		{Day: "Monday", Start: "11:00", DurationMinutes: 60, Title: "A"},
	}

	if merged := MergeSessions(sessions); len(merged) != 2 {
		t.Errorf("non-adjacent sessions must not merge, got %+v", merged)
	}
}

func TestMergeSessionsIdempotent(t *testing.T) {
	sessions := []Session{
		{Day: "Wednesday", Start: "14:00", DurationMinutes: 60, Title: "C"},
		{Day: "Monday", Start: "10:00", DurationMinutes: 60, Title: "A"},
		{Day: "Monday", Start: "09:00", DurationMinutes: 60, Title: "A"},
		{Day: "Sunday", Start: "08:00", DurationMinutes: 60, Title: "B"},
	}

	once := MergeSessions(sessions)
	twice := MergeSessions(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge is not idempotent.\nOnce:  %+v\nTwice: %+v", once, twice)
	}
}

func TestMergeSessionsMondayFirstOrder(t *testing.T) {
	sessions := []Session{
		{Day: "Sunday", Start: "08:00", DurationMinutes: 60, Title: "Late"},
		{Day: "Monday", Start: "09:00", DurationMinutes: 60, Title: "Early"},
	}

	merged := MergeSessions(sessions)
	if len(merged) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(merged))
	}
	// The merge ordering starts the week on Monday, so Sunday sorts last.
	if merged[0].Day != "Monday" || merged[1].Day != "Sunday" {
		t.Errorf("expected Monday-first ordering, got %s then %s", merged[0].Day, merged[1].Day)
	}
}
