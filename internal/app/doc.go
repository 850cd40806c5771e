// Package app provides the orchestration layer for the Vitrine application.
//
// # Overview
//
// This package wires together configuration, durable persistence, the
// backend API client, the state store, and the UI. It is the
// composition root: nothing here contains business logic, it only
// connects the domain packages with sensible defaults.
//
// # Startup Sequence
//
//  1. Load configuration from ~/.config/vitrine/config.toml
//  2. Open the durable state database (bbolt)
//  3. Initialize the HTTP client for the storefront API
//  4. Build the store and restore durable state: persisted session
//     token (InitializeAuth) and comparison list, both offline
//  5. Launch the background catalog refresher goroutine
//  6. Start the TUI and block until the user exits or the context
//     cancels
//
// # Refresh Behavior
//
// The refresher reloads products and categories on a fixed cadence
// (config `refresh`, default five minutes; catalogs move slowly). The
// first load fires immediately so the UI fills in as soon as the
// backend answers. Failures are logged and recorded in the store's
// error state; the previous catalog stays visible and the loop keeps
// going. Cart, wishlist, comparison, and auth state are never touched
// by the refresher.
//
// # Error Handling
//
// Fatal (returned from Run): unreadable config, database open failure,
// client construction failure. Recoverable (logged, loop continues):
// any catalog fetch failure. A dead backend therefore still boots into
// a usable UI showing the locally persisted state.
package app
