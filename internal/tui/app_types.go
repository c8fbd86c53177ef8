package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"nutriplan-cli/internal/model"
)

type view int

const (
	viewHome view = iota
	viewMealDetail
	viewScanner
	viewFoodLog
)

func viewToString(v view) string {
	switch v {
	case viewHome:
		return "home"
	case viewMealDetail:
		return "meal-detail"
	case viewScanner:
		return "scanner"
	case viewFoodLog:
		return "foodlog"
	default:
		return "unknown"
	}
}

// screen is the navigation target: which view is active plus its parameter.
// MealID is only meaningful for viewMealDetail, where it must be non-empty
// (caller contract; navigate does not validate it).
type screen struct {
	view   view
	mealID string
}

// Messages carry the seq of the fetch generation that issued them so a
// response arriving after further navigation can be discarded instead of
// overwriting a view it was not requested for.

type mealsLoadedMsg struct {
	seq   int
	meals []model.MealSummary
}

type categoriesLoadedMsg struct {
	seq  int
	cats []model.MealCategory
}

type mealDetailLoadedMsg struct {
	seq  int
	id   string
	meal *model.Meal
	err  error
}

type productsLoadedMsg struct {
	seq      int
	products []model.Product
}

type logLoadedMsg struct {
	seq    int
	log    model.DailyLog
	totals model.Nutrition
	err    error
}

// logChangedMsg is delivered whenever the food log service publishes a
// mutation event.
type logChangedMsg struct{}

type flashClearMsg struct{ seq int }

// logWriteFailedMsg reports a failed add/remove; the flash line shows it.
type logWriteFailedMsg struct{ err error }

func (m *appModel) debugLogf(format string, args ...any) {
	path := strings.TrimSpace(m.debugLogPath)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
