package ui

import (
	"testing"

	"github.com/vitrinedev/vitrine/internal/store"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0, "0.00"},
		{10, "10.00"},
		{109.95, "109.95"},
		{0.1, "0.10"},
		{1234.5, "1234.50"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.price); got != tt.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long product title", 10, "a very lo…"},
		{"héllo wörld", 6, "héllo…"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestNextCategory(t *testing.T) {
	categories := []string{"electronics", "jewelery"}

	if got := nextCategory(categories, ""); got != "electronics" {
		t.Fatalf("nextCategory from empty = %q, want electronics", got)
	}
	if got := nextCategory(categories, "electronics"); got != "jewelery" {
		t.Fatalf("nextCategory from electronics = %q, want jewelery", got)
	}
	if got := nextCategory(categories, "jewelery"); got != "" {
		t.Fatalf("nextCategory from last = %q, want empty (no filter)", got)
	}
	if got := nextCategory(categories, "vanished"); got != "" {
		t.Fatalf("nextCategory from unknown = %q, want empty", got)
	}
	if got := nextCategory(nil, "anything"); got != "" {
		t.Fatalf("nextCategory with no categories = %q, want empty", got)
	}
}

func TestNextSortOrder(t *testing.T) {
	if got := nextSortOrder(store.SortNone); got != store.SortAsc {
		t.Fatalf("from none = %q, want asc", got)
	}
	if got := nextSortOrder(store.SortAsc); got != store.SortDesc {
		t.Fatalf("from asc = %q, want desc", got)
	}
	if got := nextSortOrder(store.SortDesc); got != store.SortNone {
		t.Fatalf("from desc = %q, want none", got)
	}
}

func TestSelected(t *testing.T) {
	items := []int{10, 20, 30}

	if v, ok := selected(items, 1); !ok || v != 20 {
		t.Fatalf("selected(items, 1) = %d/%v, want 20/true", v, ok)
	}
	if _, ok := selected(items, 3); ok {
		t.Fatal("selected past end = true, want false")
	}
	if _, ok := selected(items, -1); ok {
		t.Fatal("selected(-1) = true, want false")
	}
	if _, ok := selected([]int(nil), 0); ok {
		t.Fatal("selected on empty = true, want false")
	}
}
