package binder

import (
	"fmt"

	"go.uber.org/multierr"
)

// Check audits the binder's internal consistency: entry sequence, key index
// and entry count must describe the same set of entries, and the state must
// have at least one owner. A healthy binder returns nil; otherwise all
// violations found are collected into one error, each wrapping
// ErrInvalidState.
//
// Check is meant for tests and debugging; it walks the complete state.
func (b *Binder[K, V]) Check() error {
	if b == nil || b.state == nil {
		return nil
	}
	return b.state.check()
}

func (s *state[K, V]) check() error {
	var err error
	if rc := s.refs.Load(); rc < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: state has %d owners", ErrInvalidState, rc))
	}
	seen := 0
	var last *node[K, V]
	for n := s.head; n != nil; n = n.next {
		seen++
		if n.prev != last {
			err = multierr.Append(err, fmt.Errorf("%w: broken back link at entry %d", ErrInvalidState, seen))
		}
		if in, ok := s.index.Get(n.key); !ok {
			err = multierr.Append(err, fmt.Errorf("%w: key %v missing from index", ErrInvalidState, n.key))
		} else if in != n {
			err = multierr.Append(err, fmt.Errorf("%w: index for key %v references foreign node", ErrInvalidState, n.key))
		}
		if seen > s.count {
			// guards the walk against link cycles
			err = multierr.Append(err, fmt.Errorf("%w: sequence exceeds entry count %d", ErrInvalidState, s.count))
			break
		}
		last = n
	}
	if s.tail != last {
		err = multierr.Append(err, fmt.Errorf("%w: tail does not reference the last entry", ErrInvalidState))
	}
	if seen != s.count {
		err = multierr.Append(err, fmt.Errorf("%w: entry count mismatch (%d != %d)", ErrInvalidState, seen, s.count))
	}
	if is := s.index.Size(); is != s.count {
		err = multierr.Append(err, fmt.Errorf("%w: index size mismatch (%d != %d)", ErrInvalidState, is, s.count))
	}
	return err
}
