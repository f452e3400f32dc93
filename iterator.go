package binder

import (
	"cmp"
	"iter"
)

// Iterator is a forward iterator over a binder's entries in sequence order.
// Iterators are small values and compared with ==; two iterators are equal
// iff they denote the same entry of the same state. The zero value is the
// exhausted (end) iterator.
//
// An iterator reads the state current at acquisition time. Mutations through
// sharing handles detach those handles and are invisible here, as is any
// mutation of the acquiring handle that detaches it. Only in-place mutations
// of exclusively owned content act on the very state an iterator walks; such
// iterators observe an unspecified mix of entries, but remain memory-safe.
type Iterator[K cmp.Ordered, V any] struct {
	cur *node[K, V]
}

// Iter returns an iterator positioned at the binder's first entry. For an
// empty binder it equals End().
func (b *Binder[K, V]) Iter() Iterator[K, V] {
	return Iterator[K, V]{cur: b.first()}
}

// End returns the exhausted iterator, i.e. the zero Iterator value. Walking
// any binder forward terminates at End().
func (b *Binder[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Valid reports whether the iterator denotes an entry.
func (it Iterator[K, V]) Valid() bool {
	return it.cur != nil
}

// Next returns the iterator advanced by one entry. Advancing the end iterator
// is a no-op.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.cur == nil {
		return it
	}
	return Iterator[K, V]{cur: it.cur.next}
}

// Key returns the key of the current entry. It must not be called on the end
// iterator.
func (it Iterator[K, V]) Key() K {
	assert(it.cur != nil, "key taken from exhausted binder iterator")
	return it.cur.key
}

// Value returns the value of the current entry. It must not be called on the
// end iterator.
func (it Iterator[K, V]) Value() V {
	assert(it.cur != nil, "value taken from exhausted binder iterator")
	return it.cur.val
}

// All returns an iterator over the binder's entries in sequence order, for
// use with range. The sequence is bound to the state current when All is
// called and may be ranged over more than once.
func (b *Binder[K, V]) All() iter.Seq2[K, V] {
	head := b.first()
	return func(yield func(K, V) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// Keys returns an iterator over the binder's keys in sequence order, not in
// key order.
func (b *Binder[K, V]) Keys() iter.Seq[K] {
	head := b.first()
	return func(yield func(K) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values returns an iterator over the binder's values in sequence order.
func (b *Binder[K, V]) Values() iter.Seq[V] {
	head := b.first()
	return func(yield func(V) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
