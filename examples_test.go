package binder_test

import (
	"fmt"

	"github.com/npillmayer/binder"
)

func Example() {
	b := binder.New[string, int]()
	_ = b.InsertFront("chapter 2", 2)
	_ = b.InsertFront("chapter 1", 1)
	_ = b.InsertAfter("chapter 2", "appendix", 99)
	for title, page := range b.All() {
		fmt.Println(title, page)
	}
	// Output:
	// chapter 1 1
	// chapter 2 2
	// appendix 99
}

func ExampleBinder_Clone() {
	b := binder.New[string, string]()
	_ = b.InsertFront("pi", "3.14159")
	c := b.Clone() // constant time, content is shared
	_ = c.InsertFront("e", "2.71828")
	fmt.Println(b)
	fmt.Println(c)
	// Output:
	// {pi: 3.14159}
	// {e: 2.71828, pi: 3.14159}
}

func ExampleBinder_Edit() {
	b := binder.New[string, int]()
	_ = b.InsertFront("visits", 41)
	count, _ := b.Edit("visits")
	*count++
	fmt.Println(b)
	// Output:
	// {visits: 42}
}

func ExampleBinder_Iter() {
	b := binder.New[int, string]()
	_ = b.InsertFront(2, "world")
	_ = b.InsertFront(1, "hello")
	for it := b.Iter(); it.Valid(); it = it.Next() {
		fmt.Println(it.Key(), it.Value())
	}
	// Output:
	// 1 hello
	// 2 world
}

func ExampleBuilder() {
	bld := binder.NewBuilder[int, string]()
	_ = bld.Append(2, "second")
	_ = bld.Append(3, "third")
	_ = bld.Prepend(1, "first")
	fmt.Println(bld.Binder())
	// Output:
	// {1: first, 2: second, 3: third}
}
