package tui

import (
	"fmt"
	"strings"

	"nutriplan-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	return l
}

type mealItem struct {
	meal model.MealSummary
}

func (i mealItem) Title() string { return i.meal.Name }
func (i mealItem) Description() string {
	parts := []string{}
	if i.meal.Category != "" {
		parts = append(parts, i.meal.Category)
	}
	if i.meal.Area != "" {
		parts = append(parts, i.meal.Area)
	}
	if len(parts) == 0 {
		return "recipe"
	}
	return strings.Join(parts, " · ")
}
func (i mealItem) FilterValue() string { return i.meal.Name }

type categoryItem struct {
	cat model.MealCategory
}

func (i categoryItem) Title() string       { return i.cat.Name }
func (i categoryItem) Description() string { return "meal type" }
func (i categoryItem) FilterValue() string { return i.cat.Name }

type productItem struct {
	product model.Product
}

func (i productItem) Title() string {
	if i.product.Name == "" {
		return "(unnamed product)"
	}
	return i.product.Name
}

func (i productItem) Description() string {
	n := i.product.Nutrition
	desc := fmt.Sprintf("%.0f kcal · %.0fg protein · %.0fg carbs · %.0fg fat /100g",
		n.Calories, n.Protein, n.Carbs, n.Fat)
	if i.product.Brands != "" {
		desc = i.product.Brands + " · " + desc
	}
	return desc
}
func (i productItem) FilterValue() string { return i.product.Name }

type logItem struct {
	item model.LoggedItem
}

func (i logItem) Title() string { return i.item.Name }
func (i logItem) Description() string {
	n := i.item.Nutrition
	return fmt.Sprintf("%s · %.0f kcal · %.0fg P · %.0fg C · %.0fg F",
		i.item.Type, n.Calories, n.Protein, n.Carbs, n.Fat)
}
func (i logItem) FilterValue() string { return i.item.Name }

func (m *appModel) setMealItems(meals []model.MealSummary) {
	items := make([]list.Item, 0, len(meals))
	for _, mm := range meals {
		items = append(items, mealItem{meal: mm})
	}
	m.mealsList.SetItems(items)
	m.mealsList.ResetSelected()
}

func (m *appModel) setCategoryItems(cats []model.MealCategory) {
	items := make([]list.Item, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryItem{cat: c})
	}
	m.catsList.SetItems(items)
}

func (m *appModel) setProductItems(products []model.Product) {
	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		items = append(items, productItem{product: p})
	}
	m.productsList.SetItems(items)
	m.productsList.ResetSelected()
}

func (m *appModel) setLogItems(logged []model.LoggedItem) {
	items := make([]list.Item, 0, len(logged))
	for _, it := range logged {
		items = append(items, logItem{item: it})
	}
	sel := m.logList.Index()
	m.logList.SetItems(items)
	if sel >= len(items) {
		sel = len(items) - 1
	}
	if sel >= 0 {
		m.logList.Select(sel)
	}
}
