package binder

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"sync/atomic"

	"github.com/emirpasic/gods/v2/trees/redblacktree"
)

// node is a single entry of a binder, linked into the entry sequence. Nodes
// have stable addresses for the lifetime of their state, which lets the key
// index and iterators refer to entries directly.
type node[K cmp.Ordered, V any] struct {
	key  K
	val  V
	prev *node[K, V]
	next *node[K, V]
}

// state is the shared representation of a binder: the entry sequence, a key
// index over it, and the entry count. refs tracks how many binder handles
// currently own the state. A state with refs > 1 must not be mutated; owners
// detach (clone) first.
type state[K cmp.Ordered, V any] struct {
	head  *node[K, V]
	tail  *node[K, V]
	index *redblacktree.Tree[K, *node[K, V]]
	count int
	refs  atomic.Int32
}

// newState creates an empty state with a single owner.
func newState[K cmp.Ordered, V any]() *state[K, V] {
	s := &state[K, V]{
		index: redblacktree.New[K, *node[K, V]](),
	}
	s.refs.Store(1)
	return s
}

func (s *state[K, V]) incRef() {
	s.refs.Add(1)
}

func (s *state[K, V]) decRef() {
	rc := s.refs.Add(-1)
	assert(rc >= 0, "binder state released more often than retained")
}

// isShared reports whether more than one binder handle owns s.
func (s *state[K, V]) isShared() bool {
	return s.refs.Load() > 1
}

// lookup finds the entry for key k through the key index.
func (s *state[K, V]) lookup(k K) (*node[K, V], bool) {
	return s.index.Get(k)
}

// linkAfter links n into the sequence directly behind at. With at == nil, n
// becomes the new front entry.
func (s *state[K, V]) linkAfter(at, n *node[K, V]) {
	if at == nil {
		n.next = s.head
		if s.head != nil {
			s.head.prev = n
		}
		s.head = n
	} else {
		n.prev = at
		n.next = at.next
		if at.next != nil {
			at.next.prev = n
		}
		at.next = n
	}
	if n.next == nil {
		s.tail = n
	}
}

// insertFront creates an entry (k, v) at the front of the sequence and
// registers it with the key index. The caller has verified that no entry with
// key k exists.
func (s *state[K, V]) insertFront(k K, v V) *node[K, V] {
	n := &node[K, V]{key: k, val: v}
	s.linkAfter(nil, n)
	s.index.Put(k, n)
	s.count++
	return n
}

// insertAfterKey creates an entry (k, v) directly behind the entry carrying
// prev and registers it with the key index. The caller has verified that prev
// is present and k is not.
func (s *state[K, V]) insertAfterKey(prev, k K, v V) *node[K, V] {
	at, ok := s.lookup(prev)
	assert(ok, "insertAfterKey: predecessor entry vanished")
	n := &node[K, V]{key: k, val: v}
	s.linkAfter(at, n)
	s.index.Put(k, n)
	s.count++
	return n
}

// appendTail creates an entry (k, v) behind the last entry of the sequence.
// Used for rebuilding states in sequence order; callers guarantee unique keys.
func (s *state[K, V]) appendTail(k K, v V) *node[K, V] {
	n := &node[K, V]{key: k, val: v, prev: s.tail}
	if s.tail != nil {
		s.tail.next = n
	} else {
		s.head = n
	}
	s.tail = n
	s.index.Put(k, n)
	s.count++
	return n
}

// unlink removes n from the entry sequence.
func (s *state[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// remove drops the entry carrying key k from sequence and key index.
func (s *state[K, V]) remove(k K) {
	n, ok := s.lookup(k)
	assert(ok, "remove: entry vanished between lookup and removal")
	s.unlink(n)
	s.index.Remove(k)
	s.count--
}

// clone produces a deep copy of s with a single owner. Entries are copied in
// sequence order; the key index is rebuilt for the copied nodes. Values are
// copied by assignment, i.e., values of pointer type will alias their
// pointees in both states.
func (s *state[K, V]) clone() *state[K, V] {
	cl := newState[K, V]()
	for n := s.head; n != nil; n = n.next {
		cl.appendTail(n.key, n.val)
	}
	return cl
}

// clear drops all entries of s, retaining the state itself.
func (s *state[K, V]) clear() {
	s.head, s.tail = nil, nil
	s.index.Clear()
	s.count = 0
}
