package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// navigate switches the active screen and starts the fetches the target
// needs. The fetch generation is bumped so responses belonging to the
// previous screen are dropped when they land.
func (m appModel) navigate(target screen) (appModel, tea.Cmd) {
	m.fetchSeq++
	seq := m.fetchSeq
	m.screen = target
	m.debugLogf("navigate %s id=%q seq=%d", viewToString(target.view), target.mealID, seq)

	switch target.view {
	case viewHome:
		m.homeLoading = true
		m.searchActive = false
		m.searchInput.Blur()
		return m, tea.Batch(m.fetchHomeMeals(seq), m.fetchCategories(seq))

	case viewMealDetail:
		m.detailMeal = nil
		m.detailNotFound = false
		m.detailLoading = true
		return m, m.fetchMealDetail(seq, target.mealID)

	case viewScanner:
		// The query box keeps its contents between visits; results are
		// refetched only when the user searches again.
		m.scanLoading = false
		m.scanTyping = true
		m.scanInput.Focus()
		return m, nil

	case viewFoodLog:
		m.logLoading = true
		return m, m.fetchLog(seq)
	}
	return m, nil
}

// currentHomeFetch reissues the recipe fetch for the home screen's active
// filter: search query beats cuisine filter beats default search.
func (m appModel) currentHomeFetch(seq int) tea.Cmd {
	if q := strings.TrimSpace(m.searchInput.Value()); q != "" {
		query := q
		return func() tea.Msg {
			return mealsLoadedMsg{seq: seq, meals: m.meals.SearchMeals(context.Background(), query)}
		}
	}
	if m.areaIdx >= 0 && m.areaIdx < len(cuisineAreas) {
		area := cuisineAreas[m.areaIdx]
		return func() tea.Msg {
			return mealsLoadedMsg{seq: seq, meals: m.meals.MealsByArea(context.Background(), area)}
		}
	}
	return m.fetchHomeMeals(seq)
}

func (m appModel) fetchHomeMeals(seq int) tea.Cmd {
	return func() tea.Msg {
		return mealsLoadedMsg{seq: seq, meals: m.meals.SearchMeals(context.Background(), "")}
	}
}

func (m appModel) fetchMealsByCategory(seq int, category string) tea.Cmd {
	return func() tea.Msg {
		return mealsLoadedMsg{seq: seq, meals: m.meals.MealsByCategory(context.Background(), category)}
	}
}

func (m appModel) fetchCategories(seq int) tea.Cmd {
	return func() tea.Msg {
		return categoriesLoadedMsg{seq: seq, cats: m.meals.Categories(context.Background())}
	}
}

func (m appModel) fetchMealDetail(seq int, id string) tea.Cmd {
	return func() tea.Msg {
		meal, err := m.meals.MealByID(context.Background(), id)
		return mealDetailLoadedMsg{seq: seq, id: id, meal: meal, err: err}
	}
}

func (m appModel) fetchProducts(seq int, query string, barcode bool) tea.Cmd {
	return func() tea.Msg {
		if barcode {
			return productsLoadedMsg{seq: seq, products: m.products.ProductByBarcode(context.Background(), query)}
		}
		return productsLoadedMsg{seq: seq, products: m.products.SearchProducts(context.Background(), query)}
	}
}

func (m appModel) fetchLog(seq int) tea.Cmd {
	return func() tea.Msg {
		log, err := m.svc.Log(context.Background())
		if err != nil {
			return logLoadedMsg{seq: seq, err: err}
		}
		totals, err := m.svc.Totals(context.Background())
		return logLoadedMsg{seq: seq, log: log, totals: totals, err: err}
	}
}

// waitForLogChange blocks on the notifier channel and converts the next
// publication into a message. The caller re-arms it after every delivery.
func waitForLogChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return logChangedMsg{}
	}
}

// setFlash shows a transient confirmation line and schedules its clear.
// A newer flash invalidates the pending clear of an older one.
func (m *appModel) setFlash(text string) tea.Cmd {
	m.flash = text
	m.showFlash = true
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}
