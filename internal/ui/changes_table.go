package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ChangeRow is one replaced value in a rewrite preview.
type ChangeRow struct {
	Rule string // rule label
	Old  string
	New  string
	Note string // classification tier or field name
}

// ChangesTable previews a rewrite pass as rule | old | new | note.
type ChangesTable struct {
	display *DisplayContext
	rows    []ChangeRow
}

const (
	changesLeftMargin = 2
	changesPadding    = 2
	minPathWidth      = 16
	maxRuleWidth      = 24
	maxNoteWidth      = 12
)

// NewChangesTable creates a preview table sized for display.
func NewChangesTable(display *DisplayContext) *ChangesTable {
	if display == nil {
		display = NewDisplayContextWithWidth(DefaultTermWidth)
	}
	return &ChangesTable{display: display}
}

// AddRow adds a row to the table.
func (t *ChangesTable) AddRow(row ChangeRow) {
	t.rows = append(t.rows, row)
}

// widths returns the rule, old, new and note column widths. The two path
// columns share whatever the fixed columns leave over.
func (t *ChangesTable) widths() [4]int {
	ruleW, noteW := 0, 0
	for _, r := range t.rows {
		if w := lipgloss.Width(r.Rule); w > ruleW {
			ruleW = w
		}
		if w := lipgloss.Width(r.Note); w > noteW {
			noteW = w
		}
	}
	if ruleW > maxRuleWidth {
		ruleW = maxRuleWidth
	}
	if noteW > maxNoteWidth {
		noteW = maxNoteWidth
	}

	available := t.display.AvailableWidth(changesLeftMargin) - ruleW - noteW - 3*changesPadding
	pathW := available / 2
	if pathW < minPathWidth {
		pathW = minPathWidth
	}
	return [4]int{ruleW, pathW, pathW, noteW}
}

// Render generates the table output as a string.
func (t *ChangesTable) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := t.widths()
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = []string{r.Rule, r.Old, r.New, r.Note}
	}

	tbl := table.New().
		Border(lipgloss.Border{
			Top:    "─",
			Bottom: "─",
			Middle: "─",
		}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		BorderStyle(Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := Muted
			if col == 2 {
				style = Accent
			}
			// Width includes padding.
			if col < len(widths)-1 {
				return style.Width(widths[col] + changesPadding).PaddingRight(changesPadding)
			}
			return style.Width(widths[col])
		}).
		Rows(rows...)

	return lipgloss.NewStyle().MarginLeft(changesLeftMargin).Render(tbl.Render())
}
