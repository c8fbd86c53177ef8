package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		switch msg.String() {
		case "enter":
			m.searchActive = false
			m.searchInput.Blur()
			m.fetchSeq++
			m.homeLoading = true
			return m, m.currentHomeFetch(m.fetchSeq)
		case "esc":
			m.searchActive = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	if m.showCats {
		switch msg.String() {
		case "enter":
			it, ok := m.catsList.SelectedItem().(categoryItem)
			if !ok {
				return m, nil
			}
			m.showCats = false
			m.fetchSeq++
			m.homeLoading = true
			return m, m.fetchMealsByCategory(m.fetchSeq, it.cat.Name)
		case "esc":
			m.showCats = false
			return m, nil
		case "q":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.catsList, cmd = m.catsList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searchActive = true
		return m, m.searchInput.Focus()
	case "c":
		m.showCats = true
		return m, nil
	case "a":
		// Cycle: all cuisines, then each area in order.
		m.areaIdx++
		if m.areaIdx >= len(cuisineAreas) {
			m.areaIdx = -1
		}
		m.searchInput.SetValue("")
		m.fetchSeq++
		m.homeLoading = true
		return m, m.currentHomeFetch(m.fetchSeq)
	case "enter":
		it, ok := m.mealsList.SelectedItem().(mealItem)
		if !ok {
			return m, nil
		}
		return m.navigate(screen{view: viewMealDetail, mealID: it.meal.ID})
	case "s":
		return m.navigate(screen{view: viewScanner})
	case "f":
		return m.navigate(screen{view: viewFoodLog})
	}

	var cmd tea.Cmd
	m.mealsList, cmd = m.mealsList.Update(msg)
	return m, cmd
}

func (m appModel) viewHome() string {
	var b strings.Builder

	area := "All cuisines"
	if m.areaIdx >= 0 && m.areaIdx < len(cuisineAreas) {
		area = cuisineAreas[m.areaIdx]
	}
	b.WriteString(m.searchInput.View() + "   " + mutedStyle.Render("cuisine: "+area))
	b.WriteString("\n\n")

	switch {
	case m.showCats:
		b.WriteString(m.catsList.View())
	case m.homeLoading:
		b.WriteString(mutedStyle.Render("Loading recipes…"))
	case len(m.mealsList.Items()) == 0:
		b.WriteString(mutedStyle.Render("No recipes found."))
	default:
		b.WriteString(m.mealsList.View())
	}
	return b.String()
}
