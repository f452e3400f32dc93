package binder

import (
	"cmp"
	"fmt"
	"iter"
)

// Collect gathers entries into a new binder, appending them in encounter
// order, i.e. the first entry collected becomes the front entry. Fails with
// ErrDuplicateKey when a key occurs twice; the error names the offending key.
func Collect[K cmp.Ordered, V any](entries iter.Seq2[K, V]) (*Binder[K, V], error) {
	b := New[K, V]()
	for k, v := range entries {
		if b.state == nil {
			b.state = newState[K, V]()
		}
		if _, dup := b.state.lookup(k); dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		b.state.appendTail(k, v)
	}
	return b, nil
}

// Equal reports whether two binders hold equal entries in the same order.
func Equal[K cmp.Ordered, V comparable](a, b *Binder[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc reports whether two binders hold entries with equal keys in the
// same order, with values compared by eq.
func EqualFunc[K cmp.Ordered, V any](a, b *Binder[K, V], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	na, nb := a.first(), b.first()
	for na != nil && nb != nil {
		if na.key != nb.key || !eq(na.val, nb.val) {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}
