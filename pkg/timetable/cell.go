package timetable

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// defaultTitle is used when a cell carries no recognizable title line.
const defaultTitle = "Session"

// CellContent is the interpreted shape of one grid cell: either a
// single session shared by the whole group or a per-subgroup
// breakdown. The two variants are sealed so consumers can switch
// exhaustively.
type CellContent interface {
	isCellContent()
}

// SharedEntry is a cell attended by the whole group at once.
type SharedEntry struct {
	Title     string
	Lecturers string
	Location  string
}

func (SharedEntry) isCellContent() {}

// DetailEntry is one subgroup's column of a nested detail table.
type DetailEntry struct {
	Subgroup  string
	Title     string
	Lecturers string
	Location  string
}

// DetailEntries is the detail-table variant of CellContent.
type DetailEntries []DetailEntry

func (DetailEntries) isCellContent() {}

// interpretCell classifies a grid cell as shared or detailed and
// extracts its text fields. It returns nil for cells with no usable
// content, which simply means no session at that slot.
func interpretCell(sel *goquery.Selection) CellContent {
	if detail := sel.Find("table.detailed"); detail.Length() > 0 {
		entries := interpretDetailTable(detail.First())
		if len(entries) == 0 {
			return nil
		}
		return DetailEntries(entries)
	}

	lines := cellLines(sel)
	if len(lines) == 0 {
		return nil
	}

	entry := SharedEntry{Title: defaultTitle}
	if len(lines) > 0 {
		entry.Title = lines[0]
	}
	if len(lines) > 1 {
		entry.Lecturers = lines[1]
	}
	if len(lines) > 2 {
		entry.Location = lines[2]
	}
	return entry
}

// interpretDetailTable transposes a nested detail table. Each column
// of the table is one subgroup, but the markup is authored row-major:
// row 0 holds the subgroup identifiers, row 1 the titles, row 2 the
// lecturers and row 3 the locations. Iterating the rows and appending
// each cell's text into a bucket keyed by its column index recovers
// the per-subgroup field lists.
func interpretDetailTable(table *goquery.Selection) []DetailEntry {
	var buckets [][]string

	tableRows(table).Each(func(_ int, row *goquery.Selection) {
		row.ChildrenFiltered("td, th").Each(func(col int, cell *goquery.Selection) {
			for len(buckets) <= col {
				buckets = append(buckets, nil)
			}
			buckets[col] = append(buckets[col], normalizeText(cell.Text()))
		})
	})

	var entries []DetailEntry
	for _, fields := range buckets {
		entry := DetailEntry{Title: defaultTitle}
		if len(fields) > 0 {
			entry.Subgroup = fields[0]
		}
		if entry.Subgroup == "" {
			continue
		}
		if len(fields) > 1 && fields[1] != "" {
			entry.Title = fields[1]
		}
		if len(fields) > 2 {
			entry.Lecturers = fields[2]
		}
		if len(fields) > 3 {
			entry.Location = fields[3]
		}
		entries = append(entries, entry)
	}
	return entries
}

// cellLines extracts the visible text of a shared cell as a list of
// non-placeholder lines. <br> elements act as line separators, which
// goquery's Text() would otherwise swallow, so the node tree is walked
// directly.
func cellLines(sel *goquery.Selection) []string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteString("\n")
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = normalizeText(line)
		if isPlaceholder(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// normalizeText trims whitespace including non-breaking spaces, which
// the published documents use liberally as cell padding.
func normalizeText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\u00a0' || unicode.IsSpace(r)
	})
}

// isPlaceholder reports whether a line is an explicit "no session"
// marker: empty after trimming, or dashes only.
func isPlaceholder(line string) bool {
	if line == "" {
		return true
	}
	for _, r := range line {
		if r != '-' && r != '–' && r != '—' {
			return false
		}
	}
	return true
}
