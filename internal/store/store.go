package store

import (
	"sync"

	"github.com/vitrinedev/vitrine/internal/persist"
	"github.com/vitrinedev/vitrine/internal/storeapi"
)

// Store owns the client state and serializes every transition through a
// single mutex. Mutators are synchronous and total: invalid payloads
// are ignored, never rejected with an error. State that survives
// restarts is checkpointed to the persist database immediately after
// each mutation, inside the same critical section.
type Store struct {
	mu      sync.Mutex
	state   State
	client  storeapi.API
	persist *persist.Store
}

// New builds a Store around the API client and durable database. Both
// may be nil in tests. The persisted theme preference is restored here
// so the very first snapshot already reflects it.
func New(client storeapi.API, db *persist.Store) *Store {
	s := &Store{
		client:  client,
		persist: db,
		state: State{
			Loading: true,
			Theme:   ThemeLight,
		},
	}
	var theme Theme
	if found, err := db.Get(persist.KeyTheme, &theme); err == nil && found {
		if theme == ThemeLight || theme == ThemeDark {
			s.state.Theme = theme
		}
	}
	return s
}

// Snapshot returns a deep copy of the current state. Derived views are
// methods on the returned value.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// SetProducts replaces the product collection.
func (s *Store) SetProducts(products []storeapi.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = cloneSlice(products)
}

// SetCategories replaces the category collection.
func (s *Store) SetCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Categories = cloneSlice(categories)
}

// SetSelectedCategory replaces the catalog category filter. Empty
// clears the filter.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCategory = category
}

// SetSortOrder replaces the catalog sort order. Unknown values are
// ignored.
func (s *Store) SetSortOrder(order SortOrder) {
	if order != SortNone && order != SortAsc && order != SortDesc {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SortOrder = order
}

// SetLoading replaces the catalog loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
}

// SetError records a user-visible error message. Empty clears it.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = msg
}

// SetTheme replaces and persists the theme preference. Unknown values
// are ignored.
func (s *Store) SetTheme(theme Theme) {
	if theme != ThemeLight && theme != ThemeDark {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
	_ = s.persist.Put(persist.KeyTheme, theme)
}

// SetAuth replaces the authentication flag. Turning it off also clears
// the user identity and deletes the persisted token; the durable cart,
// wishlist, and comparison blobs are retained, and identity-scoped
// views go empty purely because no user is active.
func (s *Store) SetAuth(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsAuthenticated = authenticated
	if !authenticated {
		s.state.UserID = ""
		_ = s.persist.Delete(persist.KeyToken)
	}
}

// SetUserID replaces the authenticated user identity.
func (s *Store) SetUserID(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserID = userID
}

// AddToCart merges a line into the cart. A line for the same
// (ProductID, UserID) pair has its quantity incremented; otherwise the
// line is appended. No-op unless authenticated.
func (s *Store) AddToCart(line CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsAuthenticated || line.UserID == "" {
		return
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range s.state.Cart {
		existing := &s.state.Cart[i]
		if existing.ID == line.ID && existing.UserID == line.UserID {
			existing.Quantity += line.Quantity
			_ = s.persist.Put(persist.KeyCart, s.state.Cart)
			return
		}
	}
	s.state.Cart = append(s.state.Cart, line)
	_ = s.persist.Put(persist.KeyCart, s.state.Cart)
}

// RemoveFromCart removes the current user's line for productID. Lines
// belonging to other users sharing the product id are left alone.
func (s *Store) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Cart[:0]
	for _, line := range s.state.Cart {
		if line.ID == productID && line.UserID == s.state.UserID {
			continue
		}
		kept = append(kept, line)
	}
	s.state.Cart = kept
	_ = s.persist.Put(persist.KeyCart, s.state.Cart)
}

// UpdateCartQuantity sets the quantity on the current user's line for
// productID. No-op when the line does not exist; the quantity is not
// clamped.
func (s *Store) UpdateCartQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Cart {
		line := &s.state.Cart[i]
		if line.ID == productID && line.UserID == s.state.UserID {
			line.Quantity = quantity
			_ = s.persist.Put(persist.KeyCart, s.state.Cart)
			return
		}
	}
}

// ClearCart removes the current user's cart lines. Other users' lines
// stay in the shared persisted collection.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Cart[:0]
	for _, line := range s.state.Cart {
		if line.UserID == s.state.UserID {
			continue
		}
		kept = append(kept, line)
	}
	s.state.Cart = kept
	_ = s.persist.Put(persist.KeyCart, s.state.Cart)
}

// AddToWishlist set-inserts products for the current user. Duplicates
// are skipped silently.
func (s *Store) AddToWishlist(products ...storeapi.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for _, p := range products {
		if s.wishlistContains(p.ID, s.state.UserID) {
			continue
		}
		s.state.Wishlist = append(s.state.Wishlist, WishlistEntry{Product: p, UserID: s.state.UserID})
		changed = true
	}
	if changed {
		_ = s.persist.Put(persist.KeyWishlist, s.state.Wishlist)
	}
}

// RemoveFromWishlist removes the current user's entry for productID.
func (s *Store) RemoveFromWishlist(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Wishlist[:0]
	for _, entry := range s.state.Wishlist {
		if entry.ID == productID && entry.UserID == s.state.UserID {
			continue
		}
		kept = append(kept, entry)
	}
	s.state.Wishlist = kept
	_ = s.persist.Put(persist.KeyWishlist, s.state.Wishlist)
}

func (s *Store) wishlistContains(productID int, userID string) bool {
	for _, entry := range s.state.Wishlist {
		if entry.ID == productID && entry.UserID == userID {
			return true
		}
	}
	return false
}

// AddToComparison appends a product to the comparison list. At capacity
// or for an already-listed product this is a silent no-op.
func (s *Store) AddToComparison(p storeapi.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.Comparison) >= maxComparison {
		return
	}
	for _, existing := range s.state.Comparison {
		if existing.ID == p.ID {
			return
		}
	}
	s.state.Comparison = append(s.state.Comparison, p)
	_ = s.persist.Put(persist.KeyComparison, s.state.Comparison)
}

// RemoveFromComparison removes the product with the given id.
func (s *Store) RemoveFromComparison(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Comparison[:0]
	for _, p := range s.state.Comparison {
		if p.ID == productID {
			continue
		}
		kept = append(kept, p)
	}
	s.state.Comparison = kept
	_ = s.persist.Put(persist.KeyComparison, s.state.Comparison)
}

// ClearComparisonList empties the comparison list.
func (s *Store) ClearComparisonList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Comparison = nil
	_ = s.persist.Put(persist.KeyComparison, []storeapi.Product{})
}
