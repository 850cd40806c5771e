package persist

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "subdir", "vitrine.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	type line struct {
		ID       int    `json:"id"`
		Quantity int    `json:"quantity"`
		UserID   string `json:"userId"`
	}
	want := []line{{ID: 1, Quantity: 2, UserID: "3"}, {ID: 9, Quantity: 1, UserID: "4"}}

	if err := s.Put(KeyCart, want); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	var got []line
	found, err := s.Get(KeyCart, &got)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found {
		t.Fatal("Get found = false, want true")
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Get = %#v, want %#v", got, want)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	var dest string
	found, err := s.Get(KeyToken, &dest)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Fatal("Get found = true for missing key, want false")
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(KeyToken, "tok-1"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := s.Delete(KeyToken); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	var dest string
	found, err := s.Get(KeyToken, &dest)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Fatal("token still present after Delete")
	}

	// Deleting an absent key is fine.
	if err := s.Delete(KeyToken); err != nil {
		t.Fatalf("Delete of absent key returned error: %v", err)
	}
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitrine.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.Put(KeyTheme, "dark"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	var theme string
	found, err := reopened.Get(KeyTheme, &theme)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found || theme != "dark" {
		t.Fatalf("theme after reopen = %q (found=%v), want dark", theme, found)
	}
}

func TestNilStoreIsUsable(t *testing.T) {
	var s *Store

	if err := s.Put(KeyTheme, "light"); err != nil {
		t.Fatalf("Put on nil store returned error: %v", err)
	}
	if err := s.Delete(KeyTheme); err != nil {
		t.Fatalf("Delete on nil store returned error: %v", err)
	}
	var theme string
	found, err := s.Get(KeyTheme, &theme)
	if err != nil {
		t.Fatalf("Get on nil store returned error: %v", err)
	}
	if found {
		t.Fatal("Get on nil store found = true, want false")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close on nil store returned error: %v", err)
	}
}
