package slg

// ID is an opaque, comparable handle into an Arena[T]. It carries no type
// parameter beyond tagging which arena it was issued from at the call
// site; two IDs issued from different arenas of the same element type are
// not distinguishable by the type system, matching the "opaque integer"
// spirit of spec.md's Arena + ID component while staying simple value
// types (comparable, usable as map keys) rather than a generational
// handle with a liveness check, since the solver never removes a table
// once created (spec.md section 5: tables persist for the solver's
// lifetime).
type ID[T any] struct {
	index int
}

// Valid reports whether id was ever issued by an Arena (as opposed to the
// zero ID value).
func (id ID[T]) Valid() bool { return id.index > 0 }

// Arena is a simple map-backed store with no generation check: Insert
// returns a fresh opaque handle, Get returns a copy of the item stored
// under a handle, and Remove is supported (for
// completeness with spec.md section 4.3) though unused by the Solver.
type Arena[T any] struct {
	items map[int]T
	next  int
}

// NewArena returns an empty arena. The zero value is usable but NewArena
// is preferred for clarity at call sites.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{items: make(map[int]T), next: 1}
}

// Insert stores item and returns the handle by which it can be retrieved.
func (a *Arena[T]) Insert(item T) ID[T] {
	if a.items == nil {
		a.items = make(map[int]T)
	}
	if a.next == 0 {
		a.next = 1
	}
	id := ID[T]{index: a.next}
	a.next++
	a.items[id.index] = item
	return id
}

// Get returns the item stored at id, if any.
func (a *Arena[T]) Get(id ID[T]) (T, bool) {
	v, ok := a.items[id.index]
	return v, ok
}

// MustGet returns the item stored at id, panicking if it is absent. Used
// internally once a Table ID is known to have been created by the Solver
// in the same call chain.
func (a *Arena[T]) MustGet(id ID[T]) T {
	v, ok := a.items[id.index]
	if !ok {
		panic("slg: arena lookup of unknown id")
	}
	return v
}

// Set replaces the item stored at id. Panics if id is unknown.
func (a *Arena[T]) Set(id ID[T], item T) {
	if _, ok := a.items[id.index]; !ok {
		panic("slg: arena set of unknown id")
	}
	a.items[id.index] = item
}

// Remove deletes the item stored at id, returning it if present.
func (a *Arena[T]) Remove(id ID[T]) (T, bool) {
	v, ok := a.items[id.index]
	if ok {
		delete(a.items, id.index)
	}
	return v, ok
}

// Len returns the number of items currently stored.
func (a *Arena[T]) Len() int { return len(a.items) }
