// Package ui provides the Bubble Tea storefront for Vitrine.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitrinedev/vitrine/internal/store"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewCart
	ViewWishlist
	ViewCompare
)

const viewCount = 4

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *store.Store
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx   context.Context
	store *store.Store
	keys  keyMap

	theme  Theme
	styles Styles

	currentView View
	cursor      int
	width       int
	height      int

	snapshot store.State
	spin     spinner.Model

	showLogin   bool
	loggingIn   bool
	loginInputs [2]textinput.Model
	loginFocus  int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	snap := opts.Store.Snapshot()
	theme := GetTheme(snap.Theme)

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		keys:        DefaultKeyMap(),
		theme:       theme,
		styles:      theme.Styles(),
		currentView: ViewCatalog,
		snapshot:    snap,
		spin:        spin,
		loginInputs: [2]textinput.Model{username, password},
	}
}

// Run starts the UI and blocks until the user exits.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, snapshotCmd(m.store))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.snapshot = store.State(msg)
		if m.theme.Name != m.snapshot.Theme {
			m.theme = GetTheme(m.snapshot.Theme)
			m.styles = m.theme.Styles()
		}
		m.clampCursor()
		return m, nil

	case actionDoneMsg:
		return m, snapshotCmd(m.store)

	case loginDoneMsg:
		m.loggingIn = false
		if msg.err == nil {
			m.closeLogin()
		}
		return m, snapshotCmd(m.store)

	case tea.KeyMsg:
		if m.showLogin {
			return m.updateLogin(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		m.currentView = (m.currentView + 1) % viewCount
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.ShiftTab):
		m.currentView = (m.currentView + viewCount - 1) % viewCount
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.ViewCatalog):
		m.currentView = ViewCatalog
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.ViewCart):
		m.currentView = ViewCart
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.ViewWishlist):
		m.currentView = ViewWishlist
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.ViewCompare):
		m.currentView = ViewCompare
		m.cursor = 0
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Theme):
		m.store.ToggleTheme()
		return m, snapshotCmd(m.store)

	case key.Matches(msg, keys.Reload):
		return m, loadCatalogCmd(m.ctx, m.store)

	case key.Matches(msg, keys.Login):
		if !m.snapshot.IsAuthenticated {
			m.showLogin = true
			m.loginFocus = 0
			m.loginInputs[0].Focus()
			m.loginInputs[1].Blur()
		}
		return m, nil
	case key.Matches(msg, keys.Logout):
		m.store.Logout()
		return m, snapshotCmd(m.store)
	}

	switch m.currentView {
	case ViewCatalog:
		return m.updateCatalog(msg)
	case ViewCart:
		return m.updateCart(msg)
	case ViewWishlist:
		return m.updateWishlist(msg)
	case ViewCompare:
		return m.updateCompare(msg)
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.snapshot.FilteredAndSortedProducts()

	switch {
	case key.Matches(msg, m.keys.CycleCategory):
		m.store.SetSelectedCategory(nextCategory(m.snapshot.Categories, m.snapshot.SelectedCategory))
		m.cursor = 0
		return m, snapshotCmd(m.store)

	case key.Matches(msg, m.keys.CycleSort):
		m.store.SetSortOrder(nextSortOrder(m.snapshot.SortOrder))
		return m, snapshotCmd(m.store)

	case key.Matches(msg, m.keys.AddToCart):
		if p, ok := selected(products, m.cursor); ok {
			m.store.AddProductToCart(p)
			return m, snapshotCmd(m.store)
		}

	case key.Matches(msg, m.keys.Wishlist):
		if p, ok := selected(products, m.cursor); ok {
			if m.snapshot.IsProductInWishlist(p.ID) {
				m.store.RemoveFromWishlist(p.ID)
			} else {
				m.store.AddToWishlist(p)
			}
			return m, snapshotCmd(m.store)
		}

	case key.Matches(msg, m.keys.Compare):
		if p, ok := selected(products, m.cursor); ok {
			m.store.AddToComparison(p)
			return m, snapshotCmd(m.store)
		}
	}
	return m, nil
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.snapshot.CartItems()

	switch {
	case key.Matches(msg, m.keys.More):
		if line, ok := selected(items, m.cursor); ok {
			m.store.UpdateCartQuantity(line.ID, line.Quantity+1)
			return m, snapshotCmd(m.store)
		}

	case key.Matches(msg, m.keys.Fewer):
		if line, ok := selected(items, m.cursor); ok && line.Quantity > 1 {
			m.store.UpdateCartQuantity(line.ID, line.Quantity-1)
			return m, snapshotCmd(m.store)
		}

	case key.Matches(msg, m.keys.Remove):
		if line, ok := selected(items, m.cursor); ok {
			m.store.RemoveFromCart(line.ID)
			return m, snapshotCmd(m.store)
		}

	case key.Matches(msg, m.keys.Clear):
		m.store.ClearCart()
		return m, snapshotCmd(m.store)
	}
	return m, nil
}

func (m Model) updateWishlist(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.snapshot.WishlistItems()

	switch {
	case key.Matches(msg, m.keys.AddToCart):
		if entry, ok := selected(items, m.cursor); ok {
			m.store.AddProductToCart(entry.Product)
			return m, snapshotCmd(m.store)
		}

	case key.Matches(msg, m.keys.Remove):
		if entry, ok := selected(items, m.cursor); ok {
			m.store.RemoveFromWishlist(entry.ID)
			return m, snapshotCmd(m.store)
		}
	}
	return m, nil
}

func (m Model) updateCompare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Remove):
		if p, ok := selected(m.snapshot.Comparison, m.cursor); ok {
			m.store.RemoveFromComparison(p.ID)
			return m, snapshotCmd(m.store)
		}

	case key.Matches(msg, m.keys.Clear):
		m.store.ClearComparisonList()
		return m, snapshotCmd(m.store)
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeLogin()
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab),
		key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
		for i := range m.loginInputs {
			if i == m.loginFocus {
				m.loginInputs[i].Focus()
			} else {
				m.loginInputs[i].Blur()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.loggingIn {
			return m, nil
		}
		m.loggingIn = true
		return m, loginCmd(m.ctx, m.store, m.loginInputs[0].Value(), m.loginInputs[1].Value())
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m *Model) closeLogin() {
	m.showLogin = false
	m.loginInputs[0].SetValue("")
	m.loginInputs[1].SetValue("")
	m.loginFocus = 0
}

func (m *Model) clampCursor() {
	if limit := m.rowCount() - 1; m.cursor > limit {
		m.cursor = limit
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) rowCount() int {
	switch m.currentView {
	case ViewCatalog:
		return len(m.snapshot.FilteredAndSortedProducts())
	case ViewCart:
		return len(m.snapshot.CartItems())
	case ViewWishlist:
		return len(m.snapshot.WishlistItems())
	case ViewCompare:
		return len(m.snapshot.Comparison)
	}
	return 0
}

// selected returns items[cursor] when the cursor is in range.
func selected[T any](items []T, cursor int) (T, bool) {
	if cursor < 0 || cursor >= len(items) {
		var zero T
		return zero, false
	}
	return items[cursor], true
}

// nextCategory cycles through no-filter plus each known category.
func nextCategory(categories []string, current string) string {
	if len(categories) == 0 {
		return ""
	}
	if current == "" {
		return categories[0]
	}
	for i, c := range categories {
		if c == current {
			if i+1 < len(categories) {
				return categories[i+1]
			}
			return ""
		}
	}
	return ""
}

// nextSortOrder cycles none -> ascending -> descending.
func nextSortOrder(current store.SortOrder) store.SortOrder {
	switch current {
	case store.SortNone:
		return store.SortAsc
	case store.SortAsc:
		return store.SortDesc
	default:
		return store.SortNone
	}
}
