package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const maxTitleWidth = 48

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderTabs(),
	}

	if m.showLogin {
		sections = append(sections, m.renderLogin())
	} else {
		switch m.currentView {
		case ViewCatalog:
			sections = append(sections, m.renderCatalog())
		case ViewCart:
			sections = append(sections, m.renderCart())
		case ViewWishlist:
			sections = append(sections, m.renderWishlist())
		case ViewCompare:
			sections = append(sections, m.renderCompare())
		}
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	left := m.styles.Accent.Bold(true).Render("vitrine")

	auth := "not logged in"
	if m.snapshot.IsAuthenticated {
		auth = "user " + m.snapshot.UserID
	}

	parts := []string{
		left,
		m.styles.Muted.Render(auth),
		m.styles.Text.Render(fmt.Sprintf("cart %d · %s", m.snapshot.CartItemCount(), m.snapshot.CartTotalCost())),
	}
	if m.snapshot.Loading {
		parts = append(parts, m.spin.View()+m.styles.Muted.Render(" loading"))
	}
	return m.styles.Header.Render(strings.Join(parts, "   "))
}

func (m Model) renderTabs() string {
	labels := []string{
		fmt.Sprintf("1 Catalog (%d)", len(m.snapshot.FilteredAndSortedProducts())),
		fmt.Sprintf("2 Cart (%d)", m.snapshot.CartItemCount()),
		fmt.Sprintf("3 Wishlist (%d)", m.snapshot.WishlistItemCount()),
		fmt.Sprintf("4 Compare (%d/3)", m.snapshot.ComparisonCount()),
	}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if View(i) == m.currentView {
			rendered[i] = m.styles.TabOn.Render(label)
		} else {
			rendered[i] = m.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderCatalog() string {
	products := m.snapshot.FilteredAndSortedProducts()
	if len(products) == 0 {
		if m.snapshot.Loading {
			return m.styles.Muted.Render("  fetching catalog...")
		}
		return m.styles.Muted.Render("  no products match the current filter")
	}

	filter := "all categories"
	if m.snapshot.SelectedCategory != "" {
		filter = "category: " + m.snapshot.SelectedCategory
	}
	sortLabel := "fetch order"
	switch m.snapshot.SortOrder {
	case "asc":
		sortLabel = "price ↑"
	case "desc":
		sortLabel = "price ↓"
	}

	var b strings.Builder
	b.WriteString(m.styles.Muted.Render("  " + filter + " · " + sortLabel))
	b.WriteString("\n")

	for i, p := range products {
		marker := "  "
		if m.snapshot.IsProductInWishlist(p.ID) {
			marker = "♥ "
		}
		row := fmt.Sprintf("%s%-*s %10s  %s",
			marker, maxTitleWidth, truncate(p.Title, maxTitleWidth), formatPrice(p.Price), p.Category)
		b.WriteString(m.renderRow(row, i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCart() string {
	items := m.snapshot.CartItems()
	if !m.snapshot.IsAuthenticated {
		return m.styles.Muted.Render("  log in (l) to see your cart")
	}
	if len(items) == 0 {
		return m.styles.Muted.Render("  your cart is empty")
	}

	var b strings.Builder
	for i, line := range items {
		row := fmt.Sprintf("  %-*s ×%-3d %10s",
			maxTitleWidth, truncate(line.Title, maxTitleWidth), line.Quantity, formatPrice(line.Price))
		b.WriteString(m.renderRow(row, i))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Success.Render(fmt.Sprintf("  total: %s", m.snapshot.CartTotalCost())))
	return b.String()
}

func (m Model) renderWishlist() string {
	items := m.snapshot.WishlistItems()
	if !m.snapshot.IsAuthenticated {
		return m.styles.Muted.Render("  log in (l) to see your wishlist")
	}
	if len(items) == 0 {
		return m.styles.Muted.Render("  your wishlist is empty")
	}

	var b strings.Builder
	for i, entry := range items {
		row := fmt.Sprintf("  %-*s %10s  %s",
			maxTitleWidth, truncate(entry.Title, maxTitleWidth), formatPrice(entry.Price), entry.Category)
		b.WriteString(m.renderRow(row, i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCompare() string {
	if len(m.snapshot.Comparison) == 0 {
		return m.styles.Muted.Render("  add up to three products with c")
	}

	panels := make([]string, 0, len(m.snapshot.Comparison))
	for i, p := range m.snapshot.Comparison {
		body := fmt.Sprintf("%s\n%s\n%s\n\n%s",
			m.styles.Accent.Render(truncate(p.Title, 28)),
			formatPrice(p.Price),
			m.styles.Muted.Render(p.Category),
			truncate(p.Description, 120))
		panel := m.styles.Panel.Width(34).Render(body)
		if i == m.cursor {
			panel = m.styles.Panel.BorderForeground(lipgloss.Color(m.theme.Accent)).Width(34).Render(body)
		}
		panels = append(panels, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (m Model) renderLogin() string {
	form := strings.Join([]string{
		m.styles.Accent.Render("Log in"),
		"",
		m.loginInputs[0].View(),
		m.loginInputs[1].View(),
		"",
		m.styles.Muted.Render("enter to submit · esc to cancel"),
	}, "\n")
	if m.loggingIn {
		form += "\n" + m.spin.View() + m.styles.Muted.Render(" signing in")
	}
	return m.styles.Panel.Render(form)
}

func (m Model) renderFooter() string {
	if m.snapshot.Error != "" {
		return m.styles.Footer.Render(m.styles.Danger.Render("error: " + m.snapshot.Error))
	}

	hints := map[View]string{
		ViewCatalog:  "a add · w wishlist · c compare · f filter · s sort · r reload",
		ViewCart:     "+/- quantity · x remove · C clear",
		ViewWishlist: "a move to cart · x remove",
		ViewCompare:  "x remove · C clear",
	}
	auth := "l log in"
	if m.snapshot.IsAuthenticated {
		auth = "L log out"
	}
	return m.styles.Footer.Render(hints[m.currentView] + " · " + auth + " · T theme · q quit")
}

func (m Model) renderRow(row string, index int) string {
	if index == m.cursor {
		return m.styles.Selected.Render(row)
	}
	return m.styles.Text.Render(row)
}

// formatPrice renders a price with exactly two decimal places.
func formatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
