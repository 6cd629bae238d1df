package devicestore

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func roundTrip(t *testing.T, store *CookieStore, write func(w http.ResponseWriter)) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	write(rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore(DismissedRemindersKey, false)
	ids := []string{"wedding-soon", "budget-missing"}

	req := roundTrip(t, store, func(w http.ResponseWriter) {
		store.Save(w, ids)
	})

	got := store.Load(req)
	if len(got) != 2 || got[0] != "wedding-soon" || got[1] != "budget-missing" {
		t.Errorf("Load() = %v, want %v", got, ids)
	}
}

func TestCookieStoreMissingCookie(t *testing.T) {
	store := NewCookieStore(DismissedRemindersKey, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := store.Load(req); got != nil {
		t.Errorf("Load() = %v, want nil", got)
	}
}

func TestCookieStoreCorruptValue(t *testing.T) {
	store := NewCookieStore(DismissedRemindersKey, false)

	tests := []string{
		"not base64 !!!",
		"bm90IGpzb24", // base64 of "not json"
		"eyJhIjoxfQ",  // base64 of a JSON object, not an array
	}

	for _, value := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: DismissedRemindersKey, Value: value})

		if got := store.Load(req); got != nil {
			t.Errorf("Load() with value %q = %v, want nil", value, got)
		}
	}
}

func TestCookieStoreCapsSet(t *testing.T) {
	store := NewCookieStore(DismissedRemindersKey, false)

	ids := make([]string, 80)
	for i := range ids {
		ids[i] = fmt.Sprintf("reminder-%d", i)
	}

	req := roundTrip(t, store, func(w http.ResponseWriter) {
		store.Save(w, ids)
	})

	got := store.Load(req)
	if len(got) != 50 {
		t.Fatalf("Load() returned %d ids, want 50", len(got))
	}
	// Newest entries survive the trim
	if got[len(got)-1] != "reminder-79" {
		t.Errorf("last id = %q, want reminder-79", got[len(got)-1])
	}
}

func TestCookieStoreClear(t *testing.T) {
	store := NewCookieStore(DismissedRemindersKey, false)

	rec := httptest.NewRecorder()
	store.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("MaxAge = %d, want -1", cookies[0].MaxAge)
	}
}
