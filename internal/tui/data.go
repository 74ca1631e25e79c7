package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/vrmiguel/lipid/internal/output"
	"github.com/vrmiguel/lipid/pkg/model"
)

func columnsFor(col sortColumn, desc bool) []table.Column {
	widths := [sortColumnCount]int{8, 24, 40, 7, 12}
	cols := make([]table.Column, sortColumnCount)
	for i := range cols {
		cols[i] = table.Column{Title: columnTitles[i], Width: widths[i]}
	}
	arrow := " ↑"
	if desc {
		arrow = " ↓"
	}
	cols[col].Title += arrow
	return cols
}

// tableRow moves the PID cell of an output.Rows row to the front.
func tableRow(cells []string) table.Row {
	return table.Row{cells[1], cells[0], cells[2], cells[3], cells[4]}
}

func sortEntries(entries []model.CorrelatedEntry, col sortColumn, desc bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if desc {
			a, b = b, a
		}
		switch col {
		case sortCommand:
			return strings.ToLower(a.Command) < strings.ToLower(b.Command)
		case sortAddress:
			return a.Address.Less(b.Address)
		case sortPort:
			return a.Port < b.Port
		case sortInode:
			return a.Inode < b.Inode
		default:
			return a.PID < b.PID
		}
	})
}

func filterEntries(entries []model.CorrelatedEntry, query string) []model.CorrelatedEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]model.CorrelatedEntry, 0, len(entries))
	for _, e := range entries {
		if query == "" ||
			strings.Contains(strings.ToLower(e.Command), query) ||
			strings.Contains(strconv.Itoa(e.PID), query) ||
			strings.Contains(e.Address.String(), query) ||
			strings.Contains(strconv.Itoa(int(e.Port)), query) ||
			strings.Contains(strconv.FormatUint(uint64(e.Inode), 10), query) {
			out = append(out, e)
		}
	}
	return out
}

func (m *MainModel) updateTable() {
	m.filtered = filterEntries(m.report.Entries, m.input.Value())
	sortEntries(m.filtered, m.sortCol, m.sortDesc)

	cells := output.Rows(m.filtered)
	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = tableRow(c)
	}

	m.table.SetColumns(columnsFor(m.sortCol, m.sortDesc))
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}
