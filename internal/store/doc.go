// Package store is Vitrine's centralized client state container.
//
// # Overview
//
// Everything the UI renders comes out of this package, and every user
// action goes through it. The Store reconciles three things: the live
// catalog fetched from the backend, a durable local snapshot (cart,
// wishlist, comparison list, theme, auth token) that survives process
// restarts, and a user identity that can change at runtime. No other
// component mutates this state or touches the persist database.
//
// # Architecture
//
// The package is layered strictly, leaves first:
//
//	persist adapter -> State -> mutators -> actions -> derived views
//
//	UI action ──> Action ──(await network)──> Mutator(s) ──> State
//	                                              │
//	                                              └─> persist checkpoint
//	UI render <── derived views <── Snapshot() deep copy
//
// Mutators (SetProducts, AddToCart, SetTheme, ...) are synchronous and
// total: each performs exactly one atomic transition under the store
// mutex and never returns an error; invalid payloads are ignored or
// clamped. Mutations of persisted entities checkpoint the affected
// collection to the database before the mutex is released, so the only
// data-loss window is a crash between commit and write.
//
// Actions (LoadProducts, Login, InitializeAuth, ...) are the only place
// external I/O happens and the only place errors are handled. A failed
// fetch or login records a message in State.Error and leaves the
// previous collections untouched; nothing retries and nothing is fatal.
//
// # Identity Scoping
//
// The persisted cart and wishlist blobs are multi-user: every line
// carries the user id that was active when it was created, and entries
// for several accounts coexist in one blob. Scoping down to one user
// happens only at read time, in the derived views. Consequences:
//
//   - Logout makes CartItems and WishlistItems empty without deleting
//     anything durable; logging back in as the same user brings the
//     same entries back.
//   - Rehydration always loads the full blob. Loading only the active
//     user's subset would make the next checkpoint erase everyone
//     else's entries.
//   - Cart removal and clearing match on (product id, current user id)
//     so one account can never delete another account's lines.
//
// # Derived Views
//
// Views are methods on the State value returned by Snapshot(): pure
// folds recomputed on every call, with no cache to invalidate. Cart
// totals use decimal arithmetic and always render with exactly two
// decimal places.
//
// # Concurrency Model
//
// A single mutex serializes all mutators; Snapshot() returns a deep
// copy, so readers never observe a torn write and can never mutate
// store-owned slices. Actions may block on the network between
// mutator calls; while one is in flight the UI keeps reading the
// last-committed snapshot. A superseding action is not cancelled;
// last committed writer wins.
package store
