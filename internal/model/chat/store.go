package chat

import "sync"

// Store owns all chat and message state. Update applies a transform to
// the current copy of one chat and writes the result back under the
// store lock, so every mutation is a read-snapshot/replace step and no
// partial update is ever observable.
type Store interface {
	List() []Chat
	Find(id string) (Chat, bool)
	Insert(c Chat)
	Delete(id string) bool
	Update(id string, fn func(Chat) Chat) (Chat, bool)
}

// MemoryStore implements Store with an in-memory slice, preserving
// insertion order for listing.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Chat
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied chats.
func NewMemoryStore(items []Chat) *MemoryStore {
	copied := make([]Chat, 0, len(items))
	for _, c := range items {
		copied = append(copied, c.Clone())
	}
	return &MemoryStore{items: copied}
}

// List returns a snapshot of all chats.
func (s *MemoryStore) List() []Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Chat, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c.Clone())
	}
	return out
}

// Find looks up a chat by identifier.
func (s *MemoryStore) Find(id string) (Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.items {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return Chat{}, false
}

// Insert prepends a chat, matching the client's newest-first ordering.
func (s *MemoryStore) Insert(c Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Chat{c.Clone()}, s.items...)
}

// Delete removes a chat by identifier.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.items {
		if c.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update replaces the chat with id by fn's result. fn receives a clone
// and must return the full replacement; it runs under the store lock and
// must not call back into the store.
func (s *MemoryStore) Update(id string, fn func(Chat) Chat) (Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.items {
		if c.ID == id {
			updated := fn(c.Clone())
			s.items[i] = updated
			return updated.Clone(), true
		}
	}
	return Chat{}, false
}
