package binder

import "cmp"

// entry is a staged (key, value) pair.
type entry[K cmp.Ordered, V any] struct {
	key K
	val V
}

// Builder incrementally stages entries and finalizes them into a Binder.
//
// Entries may be added at either end of the staged sequence, and keys must be
// unique across the whole build. The binder is materialized only when
// Binder is called; staging is plain slice bookkeeping and stays clear of the
// copy-on-write machinery.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[K cmp.Ordered, V any] struct {
	// front keeps prepended entries in reverse logical order.
	front []entry[K, V]
	// back keeps appended entries in logical order.
	back []entry[K, V]

	staged map[K]struct{}
	done   bool
	dirty  bool
	built  *state[K, V]
}

// NewBuilder creates a new and empty binder builder.
func NewBuilder[K cmp.Ordered, V any]() *Builder[K, V] {
	return &Builder[K, V]{}
}

// Binder returns the binder built from all staged entries.
//
// It is illegal to continue adding entries after Binder has been called, but
// Binder may be called multiple times. The returned handles share one state;
// as with any sharing handles, mutating one detaches it.
func (b *Builder[K, V]) Binder() *Binder[K, V] {
	if b == nil {
		return New[K, V]()
	}
	if b.dirty {
		b.built = b.buildState()
		b.dirty = false
	}
	b.done = true
	if b.built == nil {
		T().Debugf("binder builder: binder is empty")
		return New[K, V]()
	}
	b.built.incRef()
	return &Binder[K, V]{state: b.built}
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[K, V]) Reset() {
	if b == nil {
		return
	}
	b.front = nil
	b.back = nil
	b.staged = nil
	b.done = false
	b.dirty = false
	if b.built != nil {
		b.built.decRef()
		b.built = nil
	}
}

// Append appends an entry (k, v) to the staged build. Fails with
// ErrDuplicateKey if k has been staged before and with ErrBinderCompleted
// after Binder has been called.
func (b *Builder[K, V]) Append(k K, v V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBinderCompleted
	}
	if err := b.stage(k); err != nil {
		return err
	}
	b.back = append(b.back, entry[K, V]{key: k, val: v})
	b.dirty = true
	return nil
}

// Prepend prepends an entry (k, v) to the staged build. Fails with
// ErrDuplicateKey if k has been staged before and with ErrBinderCompleted
// after Binder has been called.
func (b *Builder[K, V]) Prepend(k K, v V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBinderCompleted
	}
	if err := b.stage(k); err != nil {
		return err
	}
	// front is stored in reverse logical order.
	b.front = append(b.front, entry[K, V]{key: k, val: v})
	b.dirty = true
	return nil
}

// stage records k as used, guarding the build against duplicate keys.
func (b *Builder[K, V]) stage(k K) error {
	if _, dup := b.staged[k]; dup {
		return ErrDuplicateKey
	}
	if b.staged == nil {
		b.staged = make(map[K]struct{})
	}
	b.staged[k] = struct{}{}
	return nil
}

func (b *Builder[K, V]) buildState() *state[K, V] {
	if len(b.front)+len(b.back) == 0 {
		return nil
	}
	st := newState[K, V]()
	for i := len(b.front) - 1; i >= 0; i-- {
		st.appendTail(b.front[i].key, b.front[i].val)
	}
	for _, e := range b.back {
		st.appendTail(e.key, e.val)
	}
	return st
}
