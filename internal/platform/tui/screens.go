package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"kickup/internal/progression"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	screenFrame = lipgloss.NewStyle().
			Padding(1, 2)
)

func (m Model) viewMenu() string {
	snap := m.ledger.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("⚽ KICKUP"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + item)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("bank $%d  ·  best %ds  ·  games %d\n",
		snap.CollectedCoins, snap.HighScore, snap.TotalGamesPlayed))
	b.WriteString(m.dailyLine(snap))

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.menuKeys))

	return screenFrame.Render(b.String())
}

// dailyLine summarizes the login streak and whether today's reward is
// still claimable.
func (m Model) dailyLine(snap progression.State) string {
	if snap.CurrentStreak <= 0 {
		return "no login streak yet\n"
	}
	slot := snap.CurrentStreak - 1
	if slot < len(snap.DailyRewards) && !snap.DailyRewards[slot].Claimed {
		return fmt.Sprintf("streak day %d · %d coins waiting (press c)\n",
			snap.CurrentStreak, snap.DailyRewards[slot].Coins)
	}
	return fmt.Sprintf("streak day %d · reward claimed\n", snap.CurrentStreak)
}

func (m Model) viewStore() string {
	snap := m.ledger.Snapshot()
	owned := make(map[string]bool, len(snap.UnlockedSkins))
	for _, id := range snap.UnlockedSkins {
		owned[id] = true
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("STORE"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("bank $%d\n\n", snap.CollectedCoins))

	for i, skin := range progression.SkinCatalog() {
		tag := fmt.Sprintf("%d coins", skin.Cost)
		switch {
		case skin.ID == snap.SelectedSkin:
			tag = "equipped"
		case owned[skin.ID]:
			tag = "owned"
		case skin.Premium:
			tag = "premium"
		}

		line := fmt.Sprintf("  %c %-12s %s", skin.Glyph, skin.Name, tag)
		if i == m.storeCursor {
			line = selectedStyle.Render(">" + line[1:])
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.menuKeys))

	return screenFrame.Render(b.String())
}

func (m Model) viewLeaderboard() string {
	snap := m.ledger.Snapshot()

	columns := []table.Column{
		{Title: "Player", Width: 14},
		{Title: "Best Time", Width: 10},
		{Title: "When", Width: 12},
		{Title: "Best Coins", Width: 11},
		{Title: "When", Width: 12},
	}

	rows := make([]table.Row, 0, len(snap.Leaderboard))
	for _, e := range snap.Leaderboard {
		rows = append(rows, table.Row{
			e.Player,
			fmt.Sprintf("%ds", e.BestTimeSecs),
			e.BestTimeAt.Format("2006-01-02"),
			fmt.Sprintf("%d", e.BestCoins),
			e.BestCoinsAt.Format("2006-01-02"),
		})
	}

	t := newListTable(columns, rows)

	var b strings.Builder
	b.WriteString(titleStyle.Render("LEADERBOARD"))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("no runs recorded yet") + "\n")
	} else {
		b.WriteString(t.View() + "\n")
	}
	b.WriteString("\n" + m.help.View(m.menuKeys))

	return screenFrame.Render(b.String())
}

func (m Model) viewAchievements() string {
	snap := m.ledger.Snapshot()

	columns := []table.Column{
		{Title: "Achievement", Width: 16},
		{Title: "Progress", Width: 10},
		{Title: "Reward", Width: 8},
		{Title: "", Width: 6},
	}

	rows := make([]table.Row, 0, len(snap.Achievements))
	for _, a := range snap.Achievements {
		mark := ""
		if a.Completed {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			a.Name,
			fmt.Sprintf("%d/%d", a.Progress, a.Requirement),
			fmt.Sprintf("%d", a.Reward),
			mark,
		})
	}

	t := newListTable(columns, rows)

	var b strings.Builder
	b.WriteString(titleStyle.Render("ACHIEVEMENTS"))
	b.WriteString("\n")
	b.WriteString(t.View() + "\n")
	b.WriteString("\n" + m.help.View(m.menuKeys))

	return screenFrame.Render(b.String())
}

func newListTable(columns []table.Column, rows []table.Row) table.Model {
	height := len(rows) + 1
	if height < 4 {
		height = 4
	}
	if height > 12 {
		height = 12
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("252")).
		Bold(false)
	t.SetStyles(s)

	return t
}
