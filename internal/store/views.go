package store

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vitrinedev/vitrine/internal/storeapi"
)

// Derived views are pure functions of a State snapshot, recomputed on
// every call. They are cheap folds over small slices; no caching layer
// exists to go stale.

// FilteredAndSortedProducts applies the category filter (exact match,
// empty means no filter) and then stable-sorts by price when a sort
// order is set. Without one, fetch order is preserved.
func (s State) FilteredAndSortedProducts() []storeapi.Product {
	result := make([]storeapi.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if s.SelectedCategory != "" && p.Category != s.SelectedCategory {
			continue
		}
		result = append(result, p)
	}
	switch s.SortOrder {
	case SortAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}
	return result
}

// CartItems returns the authenticated user's cart lines. Without an
// active identity the view is empty even when the underlying
// collection is not.
func (s State) CartItems() []CartLine {
	if !s.IsAuthenticated || s.UserID == "" {
		return nil
	}
	var items []CartLine
	for _, line := range s.Cart {
		if line.UserID == s.UserID {
			items = append(items, line)
		}
	}
	return items
}

// CartItemCount sums the quantities over the user's cart lines.
func (s State) CartItemCount() int {
	total := 0
	for _, line := range s.CartItems() {
		total += line.Quantity
	}
	return total
}

// CartTotalCost sums quantity×price over the user's cart lines and
// renders the result with exactly two decimal places.
func (s State) CartTotalCost() string {
	total := decimal.Zero
	for _, line := range s.CartItems() {
		price := decimal.NewFromFloat(line.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.StringFixed(2)
}

// WishlistItems returns the authenticated user's wishlist entries.
func (s State) WishlistItems() []WishlistEntry {
	if !s.IsAuthenticated || s.UserID == "" {
		return nil
	}
	var items []WishlistEntry
	for _, entry := range s.Wishlist {
		if entry.UserID == s.UserID {
			items = append(items, entry)
		}
	}
	return items
}

// WishlistItemCount reports the size of the user's wishlist view.
func (s State) WishlistItemCount() int {
	return len(s.WishlistItems())
}

// ComparisonCount reports the comparison list length.
func (s State) ComparisonCount() int {
	return len(s.Comparison)
}

// IsProductInWishlist reports whether the user's wishlist view contains
// the product.
func (s State) IsProductInWishlist(productID int) bool {
	for _, entry := range s.WishlistItems() {
		if entry.ID == productID {
			return true
		}
	}
	return false
}
