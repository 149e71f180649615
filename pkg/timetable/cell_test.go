package timetable

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func cellFromHTML(t *testing.T, inner string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tr><td>" + inner + "</td></tr></table>"))
	if err != nil {
		t.Fatalf("failed to build cell fixture: %v", err)
	}
	return doc.Find("td").First()
}

func TestInterpretSharedCell(t *testing.T) {
	content := interpretCell(cellFromHTML(t, "Algebra<br>Dr. Young<br>Room 12"))

	shared, ok := content.(SharedEntry)
	if !ok {
		t.Fatalf("expected SharedEntry, got %T", content)
	}
	if shared.Title != "Algebra" || shared.Lecturers != "Dr. Young" || shared.Location != "Room 12" {
		t.Errorf("unexpected extraction: %+v", shared)
	}
}

func TestInterpretSharedCellDropsPlaceholders(t *testing.T) {
	content := interpretCell(cellFromHTML(t, "&nbsp;<br>Algebra<br>-<br>Room 12"))

	shared, ok := content.(SharedEntry)
	if !ok {
		t.Fatalf("expected SharedEntry, got %T", content)
	}
	// Placeholder lines are dropped before positional assignment.
	if shared.Title != "Algebra" || shared.Lecturers != "Room 12" {
		t.Errorf("unexpected extraction after placeholder removal: %+v", shared)
	}
}

func TestInterpretEmptyCell(t *testing.T) {
	if content := interpretCell(cellFromHTML(t, "&nbsp;")); content != nil {
		t.Errorf("expected empty cell to yield no session, got %+v", content)
	}
	if content := interpretCell(cellFromHTML(t, "---")); content != nil {
		t.Errorf("expected dash placeholder to yield no session, got %+v", content)
	}
}

func TestInterpretDetailCell(t *testing.T) {
	inner := `<table class="detailed">
		<tr><td>101a</td><td>101b</td></tr>
		<tr><td>Programming</td><td></td></tr>
		<tr><td>Mr. Hale</td><td>Ms. Price</td></tr>
		<tr><td>Lab 3</td><td>Lab 4</td></tr>
	</table>`

	content := interpretCell(cellFromHTML(t, inner))
	entries, ok := content.(DetailEntries)
	if !ok {
		t.Fatalf("expected DetailEntries, got %T", content)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 subgroup entries, got %d", len(entries))
	}

	if entries[0].Subgroup != "101a" || entries[0].Title != "Programming" ||
		entries[0].Lecturers != "Mr. Hale" || entries[0].Location != "Lab 3" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}

	// A missing title defaults rather than failing.
	if entries[1].Title != "Session" {
		t.Errorf("expected default title for empty title cell, got %q", entries[1].Title)
	}
	if entries[1].Subgroup != "101b" {
		t.Errorf("expected subgroup 101b, got %q", entries[1].Subgroup)
	}
}
