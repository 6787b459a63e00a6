package rbtree

import "io"
import "fmt"
import "strings"

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz. Node color is rendered as fill color and each edge is
// colored by its child.
func (tree *RBTree[K, V]) Dotdump(buffer io.Writer) error {
	tree.assertalive()

	lines := []string{"digraph rbtree {\n", "  node[shape=record];\n"}
	if _, err := io.WriteString(buffer, strings.Join(lines, "")); err != nil {
		return err
	}
	var err error
	tree.walkinorder(func(idx uint32, nd *node[K, V]) bool {
		err = tree.dotnode(buffer, idx, nd)
		return err == nil
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(buffer, "}\n")
	return err
}

func (tree *RBTree[K, V]) dotnode(buffer io.Writer, idx uint32, nd *node[K, V]) error {
	fontcolor := "white"
	if nd.color == red {
		fontcolor = "black"
	}
	lines := []string{
		fmt.Sprintf(
			"  n%d [label=\"{%v}\" style=filled fillcolor=%v fontcolor=%v];\n",
			idx, nd.key, nd.color, fontcolor),
	}
	fmsg := "  n%d -> n%d [color=%v];\n"
	if nd.left != sentinel {
		child := tree.nodes.At(nd.left)
		lines = append(lines, fmt.Sprintf(fmsg, idx, nd.left, child.color))
	}
	if nd.right != sentinel {
		child := tree.nodes.At(nd.right)
		lines = append(lines, fmt.Sprintf(fmsg, idx, nd.right, child.color))
	}
	_, err := io.WriteString(buffer, strings.Join(lines, ""))
	return err
}
