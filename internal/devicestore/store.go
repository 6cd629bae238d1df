// Package devicestore persists small per-device preferences in cookies.
//
// Values live only on the device that wrote them: a user on a second device
// starts from an empty set. Corrupt or absent values read as empty, and
// write failures are swallowed so callers degrade to session-only behavior.
package devicestore

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

// DismissedRemindersKey is the fixed cookie name holding dismissed reminder ids.
const DismissedRemindersKey = "mithaq_dismissed_reminders"

// maxIDs caps the stored set so the cookie stays well under the 4KB limit
const maxIDs = 50

// Store is a small key-value abstraction over a string set that persists
// across sessions on one device.
type Store interface {
	Load(r *http.Request) []string
	Save(w http.ResponseWriter, ids []string)
	Clear(w http.ResponseWriter)
}

// CookieStore keeps the set in a single cookie as a base64-encoded JSON
// array of ids.
type CookieStore struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

func NewCookieStore(name string, secure bool) *CookieStore {
	return &CookieStore{
		Name:   name,
		MaxAge: 365 * 24 * time.Hour,
		Secure: secure,
	}
}

// Load returns the stored set, or an empty list when the cookie is missing
// or unreadable.
func (s *CookieStore) Load(r *http.Request) []string {
	cookie, err := r.Cookie(s.Name)
	if err != nil {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var ids []string
	err = json.Unmarshal(raw, &ids)
	if err != nil {
		return nil
	}

	return ids
}

// Save replaces the stored set. Failures are silent: the caller's in-memory
// state still applies for the current session.
func (s *CookieStore) Save(w http.ResponseWriter, ids []string) {
	if len(ids) > maxIDs {
		ids = ids[len(ids)-maxIDs:]
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   int(s.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the stored set from the device.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
