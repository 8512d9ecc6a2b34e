package profile

import "sync"

// Store holds the user profile and app settings behind a lock so the
// responder reads a consistent pair per response cycle.
type Store struct {
	mu       sync.RWMutex
	user     UserProfile
	settings AppSettings
}

// NewStore returns a Store seeded with the defaults.
func NewStore() *Store {
	return &Store{
		user:     DefaultProfile(),
		settings: DefaultSettings(),
	}
}

// Profile returns the current user profile.
func (s *Store) Profile() UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetProfile replaces the user profile.
func (s *Store) SetProfile(u UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Settings returns the current app settings.
func (s *Store) Settings() AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the app settings.
func (s *Store) SetSettings(a AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = a
}
