package engine

import "sync"

// watcherSet holds subscriber callbacks keyed by registration id
type watcherSet struct {
	mu     sync.Mutex
	nextID uint64
	fns    map[uint64]func(Snapshot)
}

func (w *watcherSet) add(fn func(Snapshot)) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fns == nil {
		w.fns = make(map[uint64]func(Snapshot))
	}
	w.nextID++
	w.fns[w.nextID] = fn
	return w.nextID
}

func (w *watcherSet) remove(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.fns, id)
}

func (w *watcherSet) len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.fns)
}

// notify calls every subscriber with the same snapshot
// Callbacks run without the store lock held so they may read or write the store
func (w *watcherSet) notify(snap Snapshot) {
	w.mu.Lock()
	fns := make([]func(Snapshot), 0, len(w.fns))
	for _, fn := range w.fns {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Watch subscribes fn to the value picked by selector
// fn runs once per mutation that changes the selected value; the returned func cancels
func Watch[T comparable](gs *GameState, selector func(Snapshot) T, fn func(T)) (cancel func()) {
	var mu sync.Mutex
	last := selector(gs.Snapshot())

	id := gs.watchers.add(func(snap Snapshot) {
		v := selector(snap)
		mu.Lock()
		if v == last {
			mu.Unlock()
			return
		}
		last = v
		mu.Unlock()
		fn(v)
	})

	var once sync.Once
	return func() {
		once.Do(func() { gs.watchers.remove(id) })
	}
}
