package rbtree

import "bytes"
import "strings"
import "testing"

func TestDotdump(t *testing.T) {
	tree := NewRBTree[int, int]("dotdump", testsettings(100))
	defer tree.Destroy()

	buf := bytes.NewBuffer(nil)
	if err := tree.Dotdump(buf); err != nil {
		t.Fatal(err)
	}
	ref := "digraph rbtree {\n  node[shape=record];\n}\n"
	if out := buf.String(); out != ref {
		t.Errorf("expected %q, got %q", ref, out)
	}

	for _, key := range []int{10, 20, 30} {
		tree.Insert(key, key)
	}
	buf.Reset()
	if err := tree.Dotdump(buf); err != nil {
		t.Fatal(err)
	}
	ref = strings.Join([]string{
		"digraph rbtree {",
		"  node[shape=record];",
		`  n1 [label="{10}" style=filled fillcolor=red fontcolor=black];`,
		`  n2 [label="{20}" style=filled fillcolor=black fontcolor=white];`,
		"  n2 -> n1 [color=red];",
		"  n2 -> n3 [color=red];",
		`  n3 [label="{30}" style=filled fillcolor=red fontcolor=black];`,
		"}",
		"",
	}, "\n")
	if out := buf.String(); out != ref {
		t.Errorf("expected %q, got %q", ref, out)
	}
}
