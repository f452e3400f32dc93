package binder

import (
	"errors"
	"testing"
)

func TestBuilderStagingOrder(t *testing.T) {
	bld := NewBuilder[int, string]()
	if err := bld.Append(3, "c"); err != nil {
		t.Fatal(err.Error())
	}
	if err := bld.Prepend(2, "b"); err != nil {
		t.Fatal(err.Error())
	}
	if err := bld.Append(4, "d"); err != nil {
		t.Fatal(err.Error())
	}
	if err := bld.Prepend(1, "a"); err != nil {
		t.Fatal(err.Error())
	}
	b := bld.Binder()
	if b.String() != "{1: a, 2: b, 3: c, 4: d}" {
		t.Errorf("expected sequence 1, 2, 3, 4, got %s", b)
	}
	if err := b.Check(); err != nil {
		t.Error(err.Error())
	}
}

func TestBuilderDuplicateKey(t *testing.T) {
	bld := NewBuilder[string, int]()
	if err := bld.Append("a", 1); err != nil {
		t.Fatal(err.Error())
	}
	if err := bld.Prepend("a", 2); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for staged duplicate, got %v", err)
	}
	b := bld.Binder()
	if b.Len() != 1 {
		t.Errorf("len = %d, should be 1", b.Len())
	}
}

func TestBuilderCompleted(t *testing.T) {
	bld := NewBuilder[int, string]()
	if err := bld.Append(1, "a"); err != nil {
		t.Fatal(err.Error())
	}
	_ = bld.Binder()
	if err := bld.Append(2, "b"); !errors.Is(err, ErrBinderCompleted) {
		t.Errorf("expected ErrBinderCompleted, got %v", err)
	}
	if err := bld.Prepend(0, "z"); !errors.Is(err, ErrBinderCompleted) {
		t.Errorf("expected ErrBinderCompleted, got %v", err)
	}
}

func TestBuilderHandsOutSharingHandles(t *testing.T) {
	bld := NewBuilder[int, string]()
	for i := 1; i <= 3; i++ {
		if err := bld.Append(i, "x"); err != nil {
			t.Fatal(err.Error())
		}
	}
	b1 := bld.Binder()
	b2 := bld.Binder()
	if b1.state != b2.state {
		t.Fatalf("repeated Binder() calls should share one state")
	}
	if rc := b1.state.refs.Load(); rc != 3 {
		// the builder's cache counts as an owner, too
		t.Fatalf("expected 3 owners, have %d", rc)
	}
	if err := b1.Remove(2); err != nil {
		t.Fatal(err.Error())
	}
	if b2.Len() != 3 {
		t.Errorf("mutation of one handle leaked into the other")
	}
}

func TestBuilderEmpty(t *testing.T) {
	bld := NewBuilder[int, string]()
	b := bld.Binder()
	if !b.IsEmpty() {
		t.Errorf("builder without entries should produce an empty binder")
	}
	if b.state != nil {
		t.Errorf("empty build should not allocate state")
	}
}

func TestBuilderReset(t *testing.T) {
	bld := NewBuilder[int, string]()
	if err := bld.Append(1, "a"); err != nil {
		t.Fatal(err.Error())
	}
	_ = bld.Binder()
	bld.Reset()
	if err := bld.Append(1, "again"); err != nil {
		t.Fatalf("builder not reusable after Reset: %v", err)
	}
	b := bld.Binder()
	v, err := b.Get(1)
	if err != nil || v != "again" {
		t.Errorf("expected fresh build after Reset, got %q, %v", v, err)
	}
}

func TestBuilderNilReceiver(t *testing.T) {
	var bld *Builder[int, string]
	if err := bld.Append(1, "a"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments on nil builder, got %v", err)
	}
	b := bld.Binder()
	if b == nil || !b.IsEmpty() {
		t.Errorf("nil builder should produce a usable empty binder")
	}
	bld.Reset() // must not panic
}
