package tui

import (
	"context"
	"strings"

	"nutriplan-cli/internal/foodlog"
	"nutriplan-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateScannerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scanTyping {
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.scanInput.Value())
			if query == "" {
				return m, nil
			}
			m.scanTyping = false
			m.scanInput.Blur()
			m.scanLoading = true
			m.fetchSeq++
			return m, m.fetchProducts(m.fetchSeq, query, m.barcodeMode)
		case "tab":
			m = m.toggleBarcodeMode()
			return m, nil
		case "esc":
			m.scanTyping = false
			m.scanInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.scanInput, cmd = m.scanInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		return m.navigate(screen{view: viewHome})
	case "f":
		return m.navigate(screen{view: viewFoodLog})
	case "/":
		m.scanTyping = true
		return m, m.scanInput.Focus()
	case "tab":
		m = m.toggleBarcodeMode()
		return m, nil
	case "enter":
		it, ok := m.productsList.SelectedItem().(productItem)
		if !ok {
			return m, nil
		}
		flashCmd := m.setFlash("Logged " + it.Title())
		return m, tea.Batch(flashCmd, logProductCmd(m.svc, it.product))
	}

	var cmd tea.Cmd
	m.productsList, cmd = m.productsList.Update(msg)
	return m, cmd
}

func (m appModel) toggleBarcodeMode() appModel {
	m.barcodeMode = !m.barcodeMode
	if m.barcodeMode {
		m.scanInput.Placeholder = "Enter barcode (e.g. 3017620422003)"
	} else {
		m.scanInput.Placeholder = "Search by product name (e.g. Cheerios, Nutella…)"
	}
	return m
}

func logProductCmd(svc *foodlog.Service, p model.Product) tea.Cmd {
	return func() tea.Msg {
		name := p.Name
		if name == "" {
			name = "(unnamed product)"
		}
		_, err := svc.AddItem(context.Background(), foodlog.ItemInput{
			Name:      name,
			Image:     p.Image,
			Type:      model.SourceProduct,
			Nutrition: p.Nutrition,
		})
		if err != nil {
			return logWriteFailedMsg{err: err}
		}
		return nil
	}
}

func (m appModel) viewScanner() string {
	mode := "name"
	if m.barcodeMode {
		mode = "barcode"
	}

	var b strings.Builder
	b.WriteString(m.scanInput.View() + "   " + mutedStyle.Render("mode: "+mode))
	b.WriteString("\n\n")

	switch {
	case m.scanLoading:
		b.WriteString(mutedStyle.Render("Searching products…"))
	case !m.scanSearched:
		b.WriteString(mutedStyle.Render("Search for a packaged food to log it."))
	case len(m.productsList.Items()) == 0:
		b.WriteString(mutedStyle.Render("No products found."))
	default:
		b.WriteString(m.productsList.View())
	}
	return b.String()
}
