// Package config loads Vitrine's configuration file.
//
// # File Location
//
// Configuration lives at ~/.config/vitrine/config.toml by default and
// can be overridden with the -config flag. A missing file is not an
// error: every field has a working default, so a fresh install runs
// with zero setup.
//
// # Fields
//
//	api_base_url  Base URL of the storefront backend
//	              (default: https://fakestoreapi.com)
//	data_dir      Directory for the durable state database
//	              (default: ~/.local/share/vitrine)
//	refresh       Catalog refresh interval in seconds (default: 300)
//
// # Path Handling
//
// Paths support ~ expansion and are resolved to absolute form at load
// time, so the rest of the application never deals with relative or
// home-anchored paths. DatabasePath derives the bbolt file location
// from data_dir.
//
// # Error Handling
//
// Only two conditions are fatal: an unreadable existing file and
// invalid TOML. Empty or zero-valued fields silently fall back to
// defaults, matching how the rest of the application degrades.
package config
