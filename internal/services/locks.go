package services

import "sync"

// keyedMutex serializes mutations per entity so a validate-then-mutate
// sequence runs as one critical section. Keys are "wallet:<id>",
// "project:<id>" or "user:<id>"; when several are held they are always
// taken in wallet, project, user order.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[string]*lockEntry{}}
}

func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &lockEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()
	e.mu.Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	e := k.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
	e.mu.Unlock()
}

func walletKey(id string) string  { return "wallet:" + id }
func projectKey(id string) string { return "project:" + id }
func userKey(id string) string    { return "user:" + id }
