package usecase

import "sync"

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// keyedMutex serialises work per key. Entries are dropped once nobody holds or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[string]*lockEntry),
	}
}

// Lock blocks until key is free and returns its unlock function.
func (that *keyedMutex) Lock(key string) func() {
	that.mu.Lock()
	entry, ok := that.locks[key]
	if !ok {
		entry = &lockEntry{}
		that.locks[key] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, key)
		}
		that.mu.Unlock()
	}
}

func (that *keyedMutex) len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
