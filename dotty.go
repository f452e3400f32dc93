package binder

import (
	"cmp"
	"fmt"
	"io"
)

// Binder2Dot outputs the internal structure of a binder in Graphviz DOT format
// (for debugging purposes).
//
// Entries of the sequence appear as boxes in sequence order, index tabs as
// circles, with a dashed edge from each tab to the entry it locates.
func Binder2Dot[K cmp.Ordered, V any](b *Binder[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	if b == nil || b.state == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := make(map[*node[K, V]]int)
	nodelist, edgelist := "", ""
	id := 1
	for n := b.state.head; n != nil; n = n.next {
		ids[n] = id
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v: %v\" %s];\n", id, n.key, n.val, entryDotStyles())
		if n.next != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, id+1)
		}
		id++
	}
	for i, k := range b.state.index.Keys() {
		tabid := 10000 + i
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", tabid, k, tabDotStyles())
		n, ok := b.state.lookup(k)
		if !ok {
			T().Errorf("binder DOT: index key %v has no entry", k)
			continue
		}
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed];\n", tabid, ids[n])
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	fmt.Fprintf(w, "\tlabel=\"%d entries, %d owners\";\n", b.state.count, b.state.refs.Load())
	io.WriteString(w, "}\n")
}

func entryDotStyles() string {
	return "style=filled,shape=box,fillcolor=\"#a3d7e4\""
}

func tabDotStyles() string {
	return "style=filled,shape=circle,fillcolor=\"#ffccaa\""
}
