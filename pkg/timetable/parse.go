package timetable

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// tableIDPrefix identifies the schedule tables within the published
// document; other tables (navigation, legends) are ignored.
const tableIDPrefix = "timetable"

// fallbackLabel is used when a table has no recognizable main-group
// header. A malformed table must not abort the rest of the document.
const fallbackLabel = "Unknown"

// ParseDocument parses a published schedule document into the
// canonical dataset. Every table whose id starts with the schedule
// prefix contributes one or more groups; the whole document is read in
// one pass and the result replaces any previous dataset.
func ParseDocument(r io.Reader) (*Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{GeneratedAt: time.Now().Format(time.RFC3339)}
	seen := make(map[string]bool)

	doc.Find("table[id^=" + tableIDPrefix + "]").Each(func(_ int, table *goquery.Selection) {
		for _, group := range assembleTable(table) {
			group.ID = uniqueID(seen, group.ID)
			ds.Groups = append(ds.Groups, group)
		}
	})

	return ds, nil
}

// uniqueID keeps group ids distinct across the whole document. The
// source normally guarantees this on its own; a numeric suffix covers
// republished tables that reuse a subgroup identifier.
func uniqueID(seen map[string]bool, id string) string {
	candidate := id
	for n := 2; seen[candidate]; n++ {
		candidate = id + "-" + strconv.Itoa(n)
	}
	seen[candidate] = true
	return candidate
}

// tableRows returns the rows belonging to the given table itself,
// excluding rows of any nested detail table.
func tableRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(_ int, row *goquery.Selection) bool {
		closest := row.Closest("table")
		return closest.Length() > 0 && closest.Nodes[0] == table.Nodes[0]
	})
}

// mainGroupLabel reads the table's main-group name from its header
// cell, recognizable as the one spanning multiple columns.
func mainGroupLabel(table *goquery.Selection) string {
	label := fallbackLabel
	tableRows(table).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		found := true
		row.ChildrenFiltered("td, th").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			attr, ok := cell.Attr("colspan")
			if !ok {
				return true
			}
			if span, err := strconv.Atoi(strings.TrimSpace(attr)); err == nil && span > 1 {
				if text := normalizeText(cell.Text()); text != "" {
					label = text
				}
				found = false
			}
			return found
		})
		return found
	})
	return label
}

// dayHeaders returns the day-of-week column labels in document order.
func dayHeaders(table *goquery.Selection) []string {
	var days []string
	tableRows(table).Each(func(_ int, row *goquery.Selection) {
		row.ChildrenFiltered(".xAxis").Each(func(_ int, cell *goquery.Selection) {
			days = append(days, normalizeText(cell.Text()))
		})
	})
	return days
}

// slotRows collects the table's body rows: every row led by a yAxis
// time header, paired with the physical day cells that follow it.
func slotRows(table *goquery.Selection) []bodyRow {
	var rows []bodyRow
	tableRows(table).Each(func(_ int, row *goquery.Selection) {
		header := row.ChildrenFiltered(".yAxis")
		if header.Length() == 0 {
			return
		}
		var cells []*goquery.Selection
		row.ChildrenFiltered("td, th").Not(".yAxis").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cell)
		})
		rows = append(rows, bodyRow{
			start: normalizeText(header.First().Text()),
			cells: cells,
		})
	})
	return rows
}
