package store

import (
	"github.com/vitrinedev/vitrine/internal/storeapi"
)

// Theme is the UI color scheme preference. It persists across restarts
// independent of auth state.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// SortOrder controls catalog price sorting. Empty keeps fetch order.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// CartLine is one cart entry. Lines are unique per (ProductID, UserID);
// adding the same product again merges quantities instead.
type CartLine struct {
	storeapi.Product
	UserID   string `json:"userId"`
	Quantity int    `json:"quantity"`
}

// WishlistEntry is one wishlist entry, unique per (ProductID, UserID).
type WishlistEntry struct {
	storeapi.Product
	UserID string `json:"userId"`
}

// maxComparison bounds the comparison list; inserts beyond it are
// silent no-ops.
const maxComparison = 3

// State is the canonical client state snapshot. Cart and Wishlist hold
// the full multi-user collections as persisted; derived views partition
// them by the authenticated user at read time.
type State struct {
	Products         []storeapi.Product
	Categories       []string
	SelectedCategory string
	SortOrder        SortOrder
	Loading          bool
	Error            string
	Theme            Theme
	IsAuthenticated  bool
	UserID           string
	Cart             []CartLine
	Wishlist         []WishlistEntry
	Comparison       []storeapi.Product
}

// clone returns a deep copy so callers can never mutate store-owned
// slices through a snapshot.
func (s State) clone() State {
	dup := s
	dup.Products = cloneSlice(s.Products)
	dup.Categories = cloneSlice(s.Categories)
	dup.Cart = cloneSlice(s.Cart)
	dup.Wishlist = cloneSlice(s.Wishlist)
	dup.Comparison = cloneSlice(s.Comparison)
	return dup
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
