package store

import (
	"context"
	"fmt"

	"github.com/vitrinedev/vitrine/internal/persist"
	"github.com/vitrinedev/vitrine/internal/storeapi"
	"github.com/vitrinedev/vitrine/internal/token"
)

// Actions bridge external I/O to the synchronous mutators. Every
// failure is recorded in State.Error for the UI and also returned so
// callers can react immediately; prior state is left untouched. No
// action retries.

// LoadProducts fetches the catalog and commits it. The loading flag is
// set around the call and cleared on every path.
func (s *Store) LoadProducts(ctx context.Context) error {
	s.SetLoading(true)
	defer s.SetLoading(false)

	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		err = fmt.Errorf("load products: %w", err)
		s.SetError(err.Error())
		return err
	}
	s.SetProducts(products)
	return nil
}

// LoadCategories fetches the category list and commits it.
func (s *Store) LoadCategories(ctx context.Context) error {
	categories, err := s.client.FetchCategories(ctx)
	if err != nil {
		err = fmt.Errorf("load categories: %w", err)
		s.SetError(err.Error())
		return err
	}
	s.SetCategories(categories)
	return nil
}

// Login exchanges credentials for a token, derives the user identity
// from its claims, persists the token, and rehydrates the user-scoped
// collections from durable storage. On any failure the store stays
// unauthenticated.
func (s *Store) Login(ctx context.Context, username, password string) error {
	raw, err := s.client.LoginUser(ctx, username, password)
	if err != nil {
		s.SetError(err.Error())
		return err
	}

	claims, err := token.Decode(raw)
	if err != nil {
		err = fmt.Errorf("decode auth token: %w", err)
		s.SetError(err.Error())
		return err
	}

	s.SetAuth(true)
	s.SetUserID(claims.UserID)
	_ = s.persist.Put(persist.KeyToken, raw)
	s.rehydrateCollections()
	return nil
}

// Logout drops the session. The persisted token is deleted but the
// durable cart and wishlist blobs survive for the next login.
func (s *Store) Logout() {
	s.SetAuth(false)
}

// InitializeAuth restores a persisted session at startup without
// touching the network. Absent token: no-op. Malformed token: deleted
// and the store stays unauthenticated.
func (s *Store) InitializeAuth() {
	var raw string
	found, err := s.persist.Get(persist.KeyToken, &raw)
	if err != nil || !found {
		return
	}

	claims, err := token.Decode(raw)
	if err != nil {
		_ = s.persist.Delete(persist.KeyToken)
		return
	}

	s.SetAuth(true)
	s.SetUserID(claims.UserID)
	s.rehydrateCollections()
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	next := ThemeDark
	if s.state.Theme == ThemeDark {
		next = ThemeLight
	}
	s.mu.Unlock()
	s.SetTheme(next)
}

// AddProductToCart is the UI-facing add-to-cart: it attaches quantity 1
// and the current user identity, commits the cart mutation, and removes
// the product from the wishlist (wishlist promotion).
func (s *Store) AddProductToCart(p storeapi.Product) {
	s.mu.Lock()
	userID := s.state.UserID
	authenticated := s.state.IsAuthenticated
	s.mu.Unlock()

	if !authenticated {
		return
	}
	s.AddToCart(CartLine{Product: p, UserID: userID, Quantity: 1})
	s.RemoveFromWishlist(p.ID)
}

// LoadComparisonList rehydrates the comparison list from durable
// storage by replaying each persisted entry, so the capacity bound
// holds even over a hand-edited blob.
func (s *Store) LoadComparisonList() {
	var saved []storeapi.Product
	found, err := s.persist.Get(persist.KeyComparison, &saved)
	if err != nil || !found {
		return
	}
	for _, p := range saved {
		s.AddToComparison(p)
	}
}

// rehydrateCollections loads the full multi-user cart and wishlist
// blobs into memory. Partitioning down to the active user happens only
// in the derived views; loading a user-filtered subset here would make
// the next checkpoint erase every other user's entries.
func (s *Store) rehydrateCollections() {
	var cart []CartLine
	if found, err := s.persist.Get(persist.KeyCart, &cart); err == nil && found {
		s.mu.Lock()
		s.state.Cart = cart
		s.mu.Unlock()
	}

	var wishlist []WishlistEntry
	if found, err := s.persist.Get(persist.KeyWishlist, &wishlist); err == nil && found {
		s.mu.Lock()
		s.state.Wishlist = wishlist
		s.mu.Unlock()
	}
}
