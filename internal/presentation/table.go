// Package presentation renders record sequences as terminal tables.
// The registries expose ordered records; everything visual lives here.
package presentation

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	exceededStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	withinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	stoppedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
)

// render draws a bordered table with a numbered first column.
func render(headers []string, rows [][]string) string {
	numbered := make([][]string, len(rows))
	for i, row := range rows {
		numbered[i] = append([]string{strconv.Itoa(i + 1)}, row...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle()).
		Headers(append([]string{"#"}, headers...)...).
		Rows(numbered...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// truncate shortens s to max runes, marking the cut with "..".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-2]) + ".."
}
