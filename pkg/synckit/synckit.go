// Package synckit has the small concurrency primitives shared across capkit.
package synckit

import "sync"

// Map is a typed, concurrency safe map.
// The zero value is ready to use.
type Map[K comparable, V any] struct {
	mutex sync.RWMutex
	vs    map[K]V
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	v, ok := m.vs[key]
	return v, ok
}

func (m *Map[K, V]) Set(key K, v V) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.vs == nil {
		m.vs = make(map[K]V)
	}
	m.vs[key] = v
}

// GetOrInit returns the value stored under key.
// When it is missing, init is called once under the write lock and its result is stored.
func (m *Map[K, V]) GetOrInit(key K, init func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if v, ok := m.vs[key]; ok {
		return v
	}
	if m.vs == nil {
		m.vs = make(map[K]V)
	}
	v := init()
	m.vs[key] = v
	return v
}

func (m *Map[K, V]) Delete(key K) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.vs, key)
}

func (m *Map[K, V]) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.vs)
}

// Reset drops every stored value.
func (m *Map[K, V]) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.vs = nil
}
