package storeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("example.com")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
}

func TestClient_FetchesCatalogEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/products":
			_ = json.NewEncoder(w).Encode([]Product{{ID: 1, Title: "Backpack", Price: 109.95}})
		case "/products/7":
			_ = json.NewEncoder(w).Encode(Product{ID: 7, Title: "Ring", Category: "jewelery"})
		case "/products/categories":
			_ = json.NewEncoder(w).Encode([]string{"electronics", "jewelery"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	products, err := c.FetchProducts(ctx)
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 || products[0].Price != 109.95 {
		t.Fatalf("FetchProducts = %#v, want 1 item id=1", products)
	}

	product, err := c.FetchProduct(ctx, 7)
	if err != nil {
		t.Fatalf("FetchProduct returned error: %v", err)
	}
	if product.ID != 7 || product.Category != "jewelery" {
		t.Fatalf("FetchProduct = %#v, want id=7 jewelery", product)
	}

	categories, err := c.FetchCategories(ctx)
	if err != nil {
		t.Fatalf("FetchCategories returned error: %v", err)
	}
	if len(categories) != 2 || categories[0] != "electronics" {
		t.Fatalf("FetchCategories = %#v, want 2 categories", categories)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "vitrine/") {
		t.Fatalf("User-Agent = %q, want vitrine/*", gotUserAgent)
	}
}

func TestClient_FetchProductRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchProduct(context.Background(), 0)
	if err == nil {
		t.Fatalf("FetchProduct returned nil error, want error")
	}
}

func TestClient_LoginUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if creds.Username != "mor_2314" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "username or password is incorrect"})
			return
		}
		_ = json.NewEncoder(w).Encode(LoginResponse{Token: "tok-123"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	token, err := c.LoginUser(context.Background(), "mor_2314", "83r5^_")
	if err != nil {
		t.Fatalf("LoginUser returned error: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("token = %q, want tok-123", token)
	}

	_, err = c.LoginUser(context.Background(), "nobody", "pw")
	if err == nil || !strings.Contains(err.Error(), "username or password is incorrect") {
		t.Fatalf("LoginUser error = %v, want server message", err)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/products/categories":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/auth/login":
			http.Error(w, "plain text failure", http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchProducts(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchProducts error = %v, want decode response error", err)
	}

	_, err = c.FetchCategories(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchCategories error = %v, want status 500 error", err)
	}

	_, err = c.LoginUser(context.Background(), "u", "p")
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("LoginUser error = %v, want generic status error", err)
	}
}
