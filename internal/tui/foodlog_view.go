package tui

import (
	"context"
	"fmt"
	"strings"

	"nutriplan-cli/internal/foodlog"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateFoodLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		return m.navigate(screen{view: viewHome})
	case "s":
		return m.navigate(screen{view: viewScanner})
	case "x":
		it, ok := m.logList.SelectedItem().(logItem)
		if !ok {
			return m, nil
		}
		flashCmd := m.setFlash("Removed " + it.item.Name)
		return m, tea.Batch(flashCmd, removeItemCmd(m.svc, it.item.ID))
	}

	var cmd tea.Cmd
	m.logList, cmd = m.logList.Update(msg)
	return m, cmd
}

func removeItemCmd(svc *foodlog.Service, id string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.RemoveItem(context.Background(), id); err != nil {
			return logWriteFailedMsg{err: err}
		}
		return nil
	}
}

func (m appModel) viewFoodLog() string {
	if m.logLoading && len(m.logList.Items()) == 0 {
		return mutedStyle.Render("Loading food log…")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Today · " + m.dailyLog.Date))
	b.WriteString("\n\n")

	b.WriteString(progressLine("Calories", m.logTotals.Calories, m.limits.Calories, "kcal"))
	b.WriteString(progressLine("Protein", m.logTotals.Protein, m.limits.Protein, "g"))
	b.WriteString(progressLine("Carbs", m.logTotals.Carbs, m.limits.Carbs, "g"))
	b.WriteString(progressLine("Fat", m.logTotals.Fat, m.limits.Fat, "g"))
	b.WriteString("\n")

	if len(m.logList.Items()) == 0 {
		b.WriteString(mutedStyle.Render("Nothing logged yet today."))
	} else {
		b.WriteString(m.logList.View())
	}
	return b.String()
}

// progressLine renders one nutrient gauge. The bar caps at 100% even when
// the total exceeds the limit; the numbers still show the overshoot.
func progressLine(label string, value, limit float64, unit string) string {
	const barWidth = 20
	pct := 0.0
	if limit > 0 {
		pct = value / limit * 100
	}
	fill := int(pct / 100 * barWidth)
	if fill > barWidth {
		fill = barWidth
	}
	if fill < 0 {
		fill = 0
	}
	bar := strings.Repeat("█", fill) + strings.Repeat("░", barWidth-fill)
	return fmt.Sprintf("%-9s %s %4.0f / %.0f %s\n", label, bar, value, limit, unit)
}
