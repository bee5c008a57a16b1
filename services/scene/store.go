package scene

import "sync"

// ActivityStore holds the shared handVisible flag. Any component may write
// it; the last write wins. Subscribers are told about every change.
type ActivityStore struct {
	mu      sync.RWMutex
	visible bool
	nextID  int
	subs    map[int]func(bool)
}

// NewActivityStore returns a store with the flag set.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{visible: true, subs: make(map[int]func(bool))}
}

func (s *ActivityStore) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// SetVisible writes the flag and notifies subscribers when it changed.
// Callbacks run on the caller's goroutine without the store lock held.
func (s *ActivityStore) SetVisible(visible bool) {
	s.mu.Lock()
	if s.visible == visible {
		s.mu.Unlock()
		return
	}
	s.visible = visible
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(visible)
	}
}

// Subscribe registers fn and returns a func that removes it. The returned
// func is safe to call more than once.
func (s *ActivityStore) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of registered callbacks.
func (s *ActivityStore) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
