package binder

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"strings"
)

// Binder is an ordered collection of (key, value) entries with keyed lookup
// and copy-on-write sharing.
//
// A binder created by
//
//	New[string, int]()
//
// is empty. Entries keep their insertion position: new entries enter at the
// front or directly behind an existing entry, never at a key-derived rank.
// Keys are unique within a binder.
//
// Performance characteristics differ from a plain slice of pairs:
//
//	Operation        |  Binder      |  pair slice
//	-----------------+--------------+------------
//	Lookup by key    |  O(log n)    |   O(n)
//	Insert at front  |  O(log n)    |   O(n)
//	Insert after     |  O(log n)    |   O(n)
//	Remove           |  O(log n)    |   O(n)
//	Clone            |  O(1)        |   O(n)
//	Iterate          |  O(n)        |   O(n)
//
// Clone shares content between handles until one of them mutates. A binder in
// use must not be duplicated by struct assignment; additional handles are
// created with Clone. A single handle is not safe for concurrent use, but
// distinct handles for shared content may be read concurrently.
type Binder[K cmp.Ordered, V any] struct {
	state *state[K, V]
}

// New creates an empty binder.
func New[K cmp.Ordered, V any]() *Binder[K, V] {
	return &Binder[K, V]{}
}

// Clone returns a new handle for the binder's content. This is a constant
// time operation: both handles share one state until either of them mutates,
// at which point the mutating handle detaches with a private copy. Mutations
// through one handle are never observable through the other.
func (b *Binder[K, V]) Clone() *Binder[K, V] {
	if b == nil || b.state == nil {
		return &Binder[K, V]{}
	}
	b.state.incRef()
	return &Binder[K, V]{state: b.state}
}

// Release gives up this handle's interest in the binder's content and leaves
// the handle empty. Other handles sharing the content are unaffected.
//
// Releasing is optional. An abandoned handle is collected eventually; Release
// merely declares the handle unused, allowing sharing handles to mutate
// without copying.
func (b *Binder[K, V]) Release() {
	if b == nil || b.state == nil {
		return
	}
	b.state.decRef()
	b.state = nil
}

// Len returns the number of entries in the binder.
func (b *Binder[K, V]) Len() int {
	if b == nil || b.state == nil {
		return 0
	}
	return b.state.count
}

// IsEmpty reports whether the binder has no entries.
func (b *Binder[K, V]) IsEmpty() bool {
	return b.Len() == 0
}

// Contains reports whether an entry with key k is present.
func (b *Binder[K, V]) Contains(k K) bool {
	_, ok := b.find(k)
	return ok
}

// Front returns the first entry of the binder, if any.
func (b *Binder[K, V]) Front() (K, V, bool) {
	if n := b.first(); n != nil {
		return n.key, n.val, true
	}
	var k K
	var v V
	return k, v, false
}

// Get returns a copy of the value stored under key k, or ErrKeyNotFound if
// no entry carries k. The binder is not modified; for shared content this is
// the cheap read.
func (b *Binder[K, V]) Get(k K) (V, error) {
	n, ok := b.find(k)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return n.val, nil
}

// Edit returns a pointer to the value stored under key k, for in-place
// inspection or update. Handing out a mutable value counts as a mutation:
// shared content is detached first, and the pointer refers into this handle's
// private state. Fails with ErrKeyNotFound if no entry carries k.
//
// The pointer stays valid until the entry is removed or this handle detaches
// again for a later mutation. Callers should use it briefly and not retain it.
func (b *Binder[K, V]) Edit(k K) (*V, error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	n, ok := b.find(k)
	if !ok {
		return nil, ErrKeyNotFound
	}
	if ns := b.detach(); ns != nil {
		cn, found := ns.lookup(k)
		assert(found, "binder.Edit: entry vanished during detach")
		b.commit(ns)
		return &cn.val, nil
	}
	return &n.val, nil
}

// InsertFront places a new entry (k, v) at the front of the binder. Fails
// with ErrDuplicateKey if an entry with key k is already present, leaving the
// binder untouched.
func (b *Binder[K, V]) InsertFront(k K, v V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if _, ok := b.find(k); ok {
		return ErrDuplicateKey
	}
	if ns := b.detach(); ns != nil {
		ns.insertFront(k, v)
		b.commit(ns)
		return nil
	}
	b.state.insertFront(k, v)
	return nil
}

// InsertAfter places a new entry (k, v) directly behind the entry carrying
// key prev. Fails with ErrDuplicateKey if an entry with key k is already
// present, and with ErrKeyNotFound if no entry carries prev. A failed insert
// leaves the binder untouched.
func (b *Binder[K, V]) InsertAfter(prev, k K, v V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if _, ok := b.find(k); ok {
		return ErrDuplicateKey
	}
	if _, ok := b.find(prev); !ok {
		return ErrKeyNotFound
	}
	if ns := b.detach(); ns != nil {
		ns.insertAfterKey(prev, k, v)
		b.commit(ns)
		return nil
	}
	b.state.insertAfterKey(prev, k, v)
	return nil
}

// RemoveFront removes the first entry of the binder. Fails with
// ErrEmptyBinder if there is none.
func (b *Binder[K, V]) RemoveFront() error {
	if b == nil {
		return ErrIllegalArguments
	}
	n := b.first()
	if n == nil {
		return ErrEmptyBinder
	}
	return b.Remove(n.key)
}

// Remove removes the entry carrying key k. Fails with ErrKeyNotFound if no
// entry carries k, leaving the binder untouched.
func (b *Binder[K, V]) Remove(k K) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if _, ok := b.find(k); !ok {
		return ErrKeyNotFound
	}
	if ns := b.detach(); ns != nil {
		ns.remove(k)
		b.commit(ns)
		return nil
	}
	b.state.remove(k)
	return nil
}

// Clear removes all entries. For exclusively owned content the entries are
// dropped in place. For shared content the handle simply walks away: it gives
// up its ownership and becomes empty, without copying anything first, and
// sharing handles keep the content.
func (b *Binder[K, V]) Clear() {
	if b == nil || b.state == nil {
		return
	}
	if b.state.isShared() {
		T().Debugf("binder: clear drops ownership of shared state")
		b.state.decRef()
		b.state = nil
		return
	}
	b.state.clear()
}

// String returns the binder's entries in sequence order, formatted as
// "{k: v, …}". This is meant for diagnostics; it materializes the complete
// binder into one string.
func (b *Binder[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n := b.first(); n != nil; n = n.next {
		if n.prev != nil {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", n.key, n.val)
	}
	sb.WriteByte('}')
	return sb.String()
}

// first returns the binder's front entry node, or nil for an empty binder.
func (b *Binder[K, V]) first() *node[K, V] {
	if b == nil || b.state == nil {
		return nil
	}
	return b.state.head
}

// find locates the entry for key k in the binder's current state.
func (b *Binder[K, V]) find(k K) (*node[K, V], bool) {
	if b == nil || b.state == nil {
		return nil, false
	}
	return b.state.lookup(k)
}

// detach prepares the binder for a mutation. A nil return tells the caller to
// mutate b.state in place, as this handle is the only owner. A non-nil return
// is a state for the caller to mutate privately, either fresh or a deep copy
// of shared content; it becomes the binder's state only when the caller hands
// it to commit. Validation of mutation arguments happens before detach, so
// failed mutations never copy.
func (b *Binder[K, V]) detach() *state[K, V] {
	if b.state == nil {
		return newState[K, V]()
	}
	if !b.state.isShared() {
		return nil
	}
	T().Debugf("binder: detaching shared state with %d entries", b.state.count)
	return b.state.clone()
}

// commit makes ns the binder's current state and gives up ownership of the
// previous one. Iterators acquired earlier keep reading the previous state.
func (b *Binder[K, V]) commit(ns *state[K, V]) {
	if b.state != nil {
		b.state.decRef()
	}
	b.state = ns
}
