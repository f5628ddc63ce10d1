package btree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// String lists the parent→child edges of the tree in level order, one edge
// per line, e.g.
//
//	5,20 --> 1
//	5,20 --> 10
//	5,20 --> 30
//
// An empty tree or a single leaf root renders as the empty string.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	t.levelOrder(func(n *node[K, V], _ int) {
		for _, child := range n.children {
			sb.WriteString(n.label())
			sb.WriteString(" --> ")
			sb.WriteString(child.label())
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

// label renders the keys of n as a comma-separated list.
func (n *node[K, V]) label() string {
	var sb strings.Builder
	for i, key := range n.keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v", key)
	}
	return sb.String()
}

type nodeids[K cmp.Ordered, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id, ok := ids.idTable[n]; ok {
		return id
	}
	ids.max++
	ids.idTable[n] = ids.max
	return ids.max
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Leaves are drawn as boxes, inner nodes as circles.
func (t *Tree[K, V]) ToDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := &nodeids[K, V]{idTable: make(map[*node[K, V]]int)}
	t.levelOrder(func(n *node[K, V], depth int) {
		id := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", id, dotEscape(n.label()), nodeDotStyles(n.isLeaf(), depth == 0))
		for _, child := range n.children {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, ids.alloc(child))
		}
	})
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("btree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func nodeDotStyles(isleaf bool, isroot bool) string {
	s := ",style=filled"
	switch {
	case isleaf:
		s += ",shape=box"
	case isroot:
		s += ",color=black,fillcolor=\"#88bbff\",shape=circle"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`)
}
