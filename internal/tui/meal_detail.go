package tui

import (
	"context"
	"fmt"
	"strings"

	"nutriplan-cli/internal/foodlog"
	"nutriplan-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		return m.navigate(screen{view: viewHome})
	case "f":
		return m.navigate(screen{view: viewFoodLog})
	case "l":
		if m.detailMeal == nil {
			return m, nil
		}
		meal := *m.detailMeal
		flashCmd := m.setFlash("Logged " + meal.Name)
		return m, tea.Batch(flashCmd, logMealCmd(m.svc, meal))
	}
	return m, nil
}

// logMealCmd records a recipe in the daily journal. Recipe records carry no
// nutrition facts, so the entry is logged with zero values; totals are
// driven by scanned products.
func logMealCmd(svc *foodlog.Service, meal model.Meal) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.AddItem(context.Background(), foodlog.ItemInput{
			Name:  meal.Name,
			Image: meal.Thumb,
			Type:  model.SourceMeal,
		})
		if err != nil {
			return logWriteFailedMsg{err: err}
		}
		return nil
	}
}

func (m appModel) viewMealDetail() string {
	if m.detailLoading {
		return mutedStyle.Render("Loading recipe…")
	}
	if m.detailNotFound || m.detailMeal == nil {
		return mutedStyle.Render("Recipe not found.")
	}
	meal := m.detailMeal

	var b strings.Builder
	b.WriteString(headerStyle.Render(meal.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(meal.Category + " · " + meal.Area))
	b.WriteString("\n\n")

	if len(meal.Ingredients) > 0 {
		b.WriteString(headerStyle.Render("Ingredients"))
		b.WriteString("\n")
		for _, ing := range meal.Ingredients {
			b.WriteString(fmt.Sprintf("  • %s — %s\n", ing.Name, ing.Measure))
		}
		b.WriteString("\n")
	}

	if meal.Instructions != "" {
		width := m.width - 4
		if width <= 0 {
			width = 76
		}
		b.WriteString(headerStyle.Render("Instructions"))
		b.WriteString("\n")
		b.WriteString(renderMarkdown(meal.Instructions, width))
	}
	return b.String()
}
