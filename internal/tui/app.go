package tui

import (
	"os"
	"strings"

	"nutriplan-cli/internal/api"
	"nutriplan-cli/internal/foodlog"
	"nutriplan-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cuisineAreas mirrors the home screen's fixed cuisine filter row.
var cuisineAreas = []string{"Algerian", "American", "British", "Canadian", "Chinese", "Egyptian", "Italian", "Mexican"}

type appModel struct {
	svc      *foodlog.Service
	meals    *api.MealClient
	products *api.ProductClient
	limits   model.Limits

	width  int
	height int

	screen screen

	// fetchSeq is the current fetch generation. Every navigation or search
	// bumps it; responses tagged with an older seq are dropped on arrival.
	fetchSeq int

	// Home.
	searchInput  textinput.Model
	mealsList    list.Model
	catsList     list.Model
	showCats     bool
	areaIdx      int // index into cuisineAreas; -1 = all cuisines
	homeLoading  bool
	searchActive bool

	// Meal detail.
	detailMeal     *model.Meal
	detailLoading  bool
	detailNotFound bool

	// Scanner.
	scanInput    textinput.Model
	barcodeMode  bool
	productsList list.Model
	scanLoading  bool
	scanTyping   bool
	scanSearched bool

	// Food log.
	logList    list.Model
	dailyLog   model.DailyLog
	logTotals  model.Nutrition
	logLoading bool

	flash     string
	flashSeq  int
	showFlash bool

	// logChanges receives a tick per Change Notifier publication; a wait
	// command turns it into logChangedMsg values.
	logChanges chan struct{}

	debugLogPath string
}

func newAppModel(svc *foodlog.Service, meals *api.MealClient, products *api.ProductClient, limits model.Limits) appModel {
	m := appModel{
		svc:      svc,
		meals:    meals,
		products: products,
		limits:   limits,
		screen:   screen{view: viewHome},
		areaIdx:  -1,
	}
	m.debugLogPath = strings.TrimSpace(os.Getenv("NUTRIPLAN_DEBUG_LOG"))

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search recipes…"
	m.searchInput.CharLimit = 100
	m.searchInput.Width = 40

	m.scanInput = textinput.New()
	m.scanInput.Placeholder = "Search by product name (e.g. Cheerios, Nutella…)"
	m.scanInput.CharLimit = 100
	m.scanInput.Width = 48
	m.scanInput.Focus()
	m.scanTyping = true

	m.mealsList = newList("Recipes")
	m.catsList = newList("Meal types")
	m.productsList = newList("Products")
	m.logList = newList("Logged items")

	// One subscription for the lifetime of the session; the buffered channel
	// coalesces bursts without blocking the publisher.
	m.logChanges = make(chan struct{}, 8)
	ch := m.logChanges
	svc.Notifier().Subscribe("tui", func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})

	// The initial Home entry issues its fetch from Init.
	m.fetchSeq = 1
	m.homeLoading = true
	return m
}

// Run starts the interactive TUI and blocks until the session ends.
func Run(svc *foodlog.Service, meals *api.MealClient, products *api.ProductClient, limits model.Limits) error {
	m := newAppModel(svc, meals, products, limits)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		waitForLogChange(m.logChanges),
		m.fetchHomeMeals(m.fetchSeq),
		m.fetchCategories(m.fetchSeq),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case logChangedMsg:
		// Re-arm the wait first so no publication is missed. Only the food
		// log screen refreshes; other screens ignore the event.
		cmds := []tea.Cmd{waitForLogChange(m.logChanges)}
		if m.screen.view == viewFoodLog {
			var cmd tea.Cmd
			m, cmd = m.navigate(screen{view: viewFoodLog})
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case mealsLoadedMsg:
		if msg.seq != m.fetchSeq {
			m.debugLogf("drop stale meals seq=%d cur=%d", msg.seq, m.fetchSeq)
			return m, nil
		}
		m.homeLoading = false
		m.setMealItems(msg.meals)
		return m, nil

	case categoriesLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.setCategoryItems(msg.cats)
		return m, nil

	case mealDetailLoadedMsg:
		if msg.seq != m.fetchSeq || m.screen.view != viewMealDetail || msg.id != m.screen.mealID {
			m.debugLogf("drop stale detail id=%s seq=%d", msg.id, msg.seq)
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.detailNotFound = true
			return m, nil
		}
		m.detailMeal = msg.meal
		return m, nil

	case productsLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.scanLoading = false
		m.scanSearched = true
		m.setProductItems(msg.products)
		return m, nil

	case logLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.logLoading = false
		if msg.err != nil {
			// Storage read failure: keep the previous view; totals stay stale
			// until the next successful load.
			m.debugLogf("load log: %v", msg.err)
			return m, nil
		}
		m.dailyLog = msg.log
		m.logTotals = msg.totals
		m.setLogItems(msg.log.Items)
		return m, nil

	case logWriteFailedMsg:
		m.debugLogf("log write: %v", msg.err)
		return m, m.setFlash("Could not update food log: " + msg.err.Error())

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.showFlash = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateActiveList(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.screen.view {
	case viewHome:
		return m.updateHomeKey(msg)
	case viewMealDetail:
		return m.updateDetailKey(msg)
	case viewScanner:
		return m.updateScannerKey(msg)
	case viewFoodLog:
		return m.updateFoodLogKey(msg)
	}
	return m, nil
}

func (m appModel) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen.view {
	case viewHome:
		if m.showCats {
			m.catsList, cmd = m.catsList.Update(msg)
		} else {
			m.mealsList, cmd = m.mealsList.Update(msg)
		}
	case viewScanner:
		m.productsList, cmd = m.productsList.Update(msg)
	case viewFoodLog:
		m.logList, cmd = m.logList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := headerStyle.Render("NutriPlan") + "  " +
		mutedStyle.Render(viewToString(m.screen.view))

	var body string
	switch m.screen.view {
	case viewHome:
		body = m.viewHome()
	case viewMealDetail:
		body = m.viewMealDetail()
	case viewScanner:
		body = m.viewScanner()
	case viewFoodLog:
		body = m.viewFoodLog()
	}

	footer := mutedStyle.Render(m.footerHints())
	if m.showFlash {
		footer = flashStyle.Render(m.flash) + "\n" + footer
	}
	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) footerHints() string {
	switch m.screen.view {
	case viewHome:
		if m.searchActive {
			return "enter: search  esc: done"
		}
		if m.showCats {
			return "enter: filter by type  esc: back  q: quit"
		}
		return "enter: open  /: search  c: meal types  a: cuisine  s: scanner  f: food log  q: quit"
	case viewMealDetail:
		return "l: log meal  esc: back  q: quit"
	case viewScanner:
		if m.scanTyping {
			return "enter: search  tab: name/barcode  esc: results"
		}
		return "enter: log product  /: search  tab: name/barcode  esc: home  q: quit"
	case viewFoodLog:
		return "x: remove item  b: browse recipes  s: scan product  esc: home  q: quit"
	}
	return "q: quit"
}

func (m *appModel) resizeLists() {
	h := m.height - 10
	if h < 6 {
		h = 6
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.mealsList.SetSize(w, h)
	m.catsList.SetSize(w, h)
	m.productsList.SetSize(w, h)
	m.logList.SetSize(w, h-4)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	flashStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
)
