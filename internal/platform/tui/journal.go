package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-evolution/internal/storage"
)

// Journal overlay layout constants
const (
	maxJournalRows = 50 // Max outcomes to load
	journalChrome  = 9  // Title, summary, borders and help
)

// journalView shows the session journal: a summary line and the latest outcomes.
type journalView struct {
	table    table.Model
	summary  storage.Summary
	outcomes []storage.Outcome
	err      error
	width    int
	height   int
}

func newJournalView(width, height int) journalView {
	j := journalView{width: width, height: height}
	j.table = j.createTable()
	return j
}

// createTable creates a new table with appropriate columns.
func (j *journalView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Event", Width: 15},
		{Title: "Level", Width: 6},
		{Title: "Stage", Width: 6},
		{Title: "Booms", Width: 6},
		{Title: "At", Width: 9},
	}

	height := j.height - journalChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refresh reloads the journal from the store.
func (j *journalView) refresh(store *storage.Store) {
	j.outcomes, j.summary, j.err = nil, storage.Summary{}, nil
	if store != nil {
		j.summary, j.err = store.Summary()
		if j.err == nil {
			j.outcomes, j.err = store.RecentOutcomes(maxJournalRows)
		}
	}
	j.updateTableRows()
}

// resize rebuilds the table for a new terminal size.
func (j *journalView) resize(width, height int) {
	j.width, j.height = width, height
	j.table = j.createTable()
	j.updateTableRows()
}

func (j *journalView) updateTableRows() {
	rows := make([]table.Row, len(j.outcomes))
	for i, o := range j.outcomes {
		rows[i] = table.Row{
			fmt.Sprintf("%d", o.ID),
			o.Kind,
			fmt.Sprintf("%d", o.Level),
			fmt.Sprintf("%d", o.Stage),
			fmt.Sprintf("%d", o.Explosions),
			fmt.Sprintf("%.1fs", o.At.Seconds()),
		}
	}
	j.table.SetRows(rows)
	j.table.GotoTop()
}

// View renders the overlay with the given help line under it.
func (j journalView) View(helpLine string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION JOURNAL", j.width)))
	b.WriteString("\n\n")

	s := j.summary
	summary := fmt.Sprintf("Rounds %d  Catches %d  Misses %d  Explosions %d  Best level %d  Best stage %d",
		s.Rounds, s.Catches, s.Misses, s.Explosions, s.BestLevel, s.BestStage)
	b.WriteString(centerText(summary, j.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(j.content()))

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(helpLine))
	return b.String()
}

// content renders the table or an explanatory message.
func (j journalView) content() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case j.err != nil:
		return emptyStyle.Render("Journal unavailable:\n" + j.err.Error())
	case len(j.outcomes) == 0:
		return emptyStyle.Render("Nothing recorded yet.\nTap to start a round!")
	}
	return j.table.View()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
