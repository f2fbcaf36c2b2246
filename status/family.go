package status

import (
	"sort"
	"sync"
)

// Family holds named metrics of one kind
// Writers fetch a pointer once and update it lock-free; keys stay sorted for the per-frame overlay read
type Family[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	keys  []string
}

func NewFamily[T any]() *Family[T] {
	return &Family[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (f *Family[T]) Get(key string) *T {
	f.mu.RLock()
	ptr, ok := f.items[key]
	f.mu.RUnlock()
	if ok {
		return ptr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if ptr, ok := f.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	f.items[key] = ptr

	i := sort.SearchStrings(f.keys, key)
	f.keys = append(f.keys, "")
	copy(f.keys[i+1:], f.keys[i:])
	f.keys[i] = key
	return ptr
}

func (f *Family[T]) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.items[key]
	return ok
}

// Each visits metrics in key order
func (f *Family[T]) Each(fn func(key string, ptr *T)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, k := range f.keys {
		fn(k, f.items[k])
	}
}

func (f *Family[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.keys)
}
