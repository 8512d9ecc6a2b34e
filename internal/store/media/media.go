// Package media is the key-addressed blob store for attachment bytes.
// Messages only carry a media id; the responder hydrates image data from
// here before building a backend prompt.
package media

import "sync"

// Store persists attachment payloads by id. Get returns ("", false) for
// an unknown id rather than an error so callers can treat missing media
// as an absent image.
type Store interface {
	Save(id, data string) error
	Get(id string) (string, bool)
	Delete(id string) error
}

// MemoryStore keeps blobs in a map. It backs tests and installs without
// a configured media database.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]string)}
}

// Save stores data under id, replacing any previous value.
func (s *MemoryStore) Save(id, data string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[id] = data
	return nil
}

// Get returns the blob for id.
func (s *MemoryStore) Get(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[id]
	return data, ok
}

// Delete removes the blob for id. Deleting an unknown id is a no-op.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, id)
	return nil
}
