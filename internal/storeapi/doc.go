// Package storeapi provides the HTTP client for the storefront backend API.
//
// # Overview
//
// This package is Vitrine's only network boundary. It wraps the remote
// catalog/auth REST endpoints in typed Go methods and hides transport
// details (URLs, headers, status handling) from the rest of the
// application. The store layer consumes it through the API interface so
// tests can substitute fakes.
//
// # Endpoints
//
//	GET  /products             FetchProducts    full catalog
//	GET  /products/{id}        FetchProduct     single item
//	GET  /products/categories  FetchCategories  category names
//	POST /auth/login           LoginUser        credentials -> JWT
//
// # Error Handling
//
// All methods return wrapped errors rather than logging:
//
//   - Transport failures: "execute request: ..."
//   - Non-success responses: "api /products returned status 500"
//   - Malformed bodies: "decode response: ..."
//   - Login failures: the server's own message when the body carries
//     one ("login failed: username or password is incorrect"), else a
//     generic status error
//
// Callers (the store's actions) convert these into user-visible state;
// nothing here retries or panics.
//
// # Design Notes
//
// The client is deliberately stateless: no session, no caching, no
// token storage. Authentication is a pure credential exchange; holding
// and persisting the resulting token is the store's job. The base URL
// is normalized once at construction (scheme default, path/query/
// fragment stripped) so relative resolution stays predictable.
package storeapi
