package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vrmiguel/lipid/pkg/model"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#585858")) // Dark Gray
)

var tableHeaders = []string{"COMMAND", "PID", "ADDRESS", "PORT", "INODE"}

// Rows flattens entries into table cells, shared with the interactive view.
func Rows(entries []model.CorrelatedEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			SanitizeTerminal(e.Command),
			strconv.Itoa(e.PID),
			e.Address.String(),
			strconv.Itoa(int(e.Port)),
			strconv.FormatUint(uint64(e.Inode), 10),
		})
	}
	return rows
}

// RenderTable prints the report as a bordered table. Without color the
// cells are padded but unstyled.
func RenderTable(w io.Writer, r model.Report, colorEnabled bool) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...).
		Rows(Rows(r.Entries)...)

	if colorEnabled {
		t = t.BorderStyle(tableBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tableHeaderStyle
				}
				return tableCellStyle
			})
	} else {
		plain := lipgloss.NewStyle().Padding(0, 1)
		t = t.StyleFunc(func(row, col int) lipgloss.Style { return plain })
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
