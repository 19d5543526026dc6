// Package notify is a small registration list for change and resize callbacks.
package notify

import "sync"

// List holds callbacks to be notified with a value of type T.
// The zero value is ready to use.
type List[T any] struct {
	mu      sync.Mutex
	next    int
	entries []entry[T]
}

type entry[T any] struct {
	id int
	fn func(T)
}

// Register adds a callback and returns the func that removes it.
// Calling the returned func more than once is harmless.
func (lst *List[T]) Register(fn func(T)) (unregister func()) {

	lst.mu.Lock()
	defer lst.mu.Unlock()

	id := lst.next
	lst.next++
	lst.entries = append(lst.entries, entry[T]{id: id, fn: fn})

	return func() {
		lst.remove(id)
	}
}

// Notify calls each registered callback in registration order.
func (lst *List[T]) Notify(val T) {

	// snapshot so callbacks may register or unregister
	lst.mu.Lock()
	fns := make([]func(T), len(lst.entries))
	for i, ent := range lst.entries {
		fns[i] = ent.fn
	}
	lst.mu.Unlock()

	for _, fn := range fns {
		fn(val)
	}
}

// Len returns the number of registered callbacks.
func (lst *List[T]) Len() int {

	lst.mu.Lock()
	defer lst.mu.Unlock()

	return len(lst.entries)
}

// unexported

func (lst *List[T]) remove(id int) {

	lst.mu.Lock()
	defer lst.mu.Unlock()

	for i, ent := range lst.entries {
		if ent.id == id {
			lst.entries = append(lst.entries[:i], lst.entries[i+1:]...)
			return
		}
	}
}
