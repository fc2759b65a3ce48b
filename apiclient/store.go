// Package apiclient routes admin API calls to whichever backend is
// reachable: the typed first-party API ("node") or the generic table-driven
// CRUD endpoint ("crud"). The decision is probed at most once per
// preference window and cached in a session-scoped store, mirroring the
// sessionStorage hints the browser frontend keeps.
package apiclient

import (
	"sync"
	"time"
)

// PreferenceTTL is how long a probed backend preference is trusted before
// a fresh probe is required.
const PreferenceTTL = 60 * time.Second

// Backend identifies which API family served or should serve a call.
type Backend string

const (
	// BackendNode is the typed first-party API surface.
	BackendNode Backend = "node"
	// BackendCRUD is the generic table-driven CRUD endpoint.
	BackendCRUD Backend = "crud"
)

// Preference is a cached backend decision with the time it was made.
type Preference struct {
	Backend Backend   `json:"backend"`
	TS      time.Time `json:"ts"`
}

// PreferenceStore caches the backend preference for one session.
type PreferenceStore interface {
	Preference() (Preference, bool)
	SetPreference(Preference)
}

// AvailabilityStore caches the once-per-session "is a JSON API available"
// probe result used by read-only storefront pages.
type AvailabilityStore interface {
	Availability() (available bool, cached bool)
	SetAvailability(bool)
}

// SessionStore is the in-memory session-scoped cache backing both stores.
// Concurrent readers may race on a stale hint; the worst case is one
// redundant probe, so no stronger coordination is needed.
type SessionStore struct {
	mu        sync.Mutex
	pref      *Preference
	available *bool
}

// NewSessionStore creates an empty session cache.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Preference returns the cached backend preference, if any.
func (s *SessionStore) Preference() (Preference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pref == nil {
		return Preference{}, false
	}
	return *s.pref, true
}

// SetPreference caches a backend preference.
func (s *SessionStore) SetPreference(p Preference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pref = &p
}

// Availability returns the cached availability flag, if set.
func (s *SessionStore) Availability() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.available == nil {
		return false, false
	}
	return *s.available, true
}

// SetAvailability caches the availability flag for the session.
func (s *SessionStore) SetAvailability(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = &v
}
