package timetable

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SlotMinutes is how many minutes one grid row represents. The
// published schedules use a fixed one-hour slot granularity, so cell
// durations are derived as rowspan * SlotMinutes.
const SlotMinutes = 60

// rawCell is one newly starting cell recovered from the schedule grid:
// the day column it belongs to, the start time taken from its row
// header, how many grid rows it spans and the cell node itself.
type rawCell struct {
	dayIndex int
	start    string
	rowSpan  int
	sel      *goquery.Selection
}

// bodyRow is one time-slot row of the outer schedule table: its yAxis
// time header plus the physical day cells that follow it.
type bodyRow struct {
	start string
	cells []*goquery.Selection
}

// reconstructGrid recovers the rectangular day/time grid from the
// rowspan-collapsed table body. The markup only emits a cell for
// columns that are not still covered by an earlier multi-row cell, so
// the walk keeps a per-day ledger of remaining covered rows and
// consumes physical cells left to right only for open columns.
func reconstructGrid(dayCount int, rows []bodyRow) []rawCell {
	activeSpan := make([]int, dayCount)
	var out []rawCell

	for _, row := range rows {
		next := 0
		for day := 0; day < dayCount; day++ {
			if activeSpan[day] > 0 {
				// Covered by a rowspan from an earlier row.
				activeSpan[day]--
				continue
			}
			if next >= len(row.cells) {
				// Ragged row: fewer physical cells than open
				// columns. Nothing scheduled here.
				continue
			}
			cell := row.cells[next]
			next++

			span := cellRowSpan(cell)
			if span > 1 {
				activeSpan[day] = span - 1
			}
			out = append(out, rawCell{
				dayIndex: day,
				start:    row.start,
				rowSpan:  span,
				sel:      cell,
			})
		}
	}

	return out
}

// cellRowSpan reads a cell's rowspan attribute, defaulting to 1 when
// absent or unparsable.
func cellRowSpan(sel *goquery.Selection) int {
	attr, ok := sel.Attr("rowspan")
	if !ok {
		return 1
	}
	span, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || span < 1 {
		return 1
	}
	return span
}
