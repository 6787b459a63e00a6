package main

import "io"
import "os"
import "bytes"

import "github.com/bnclabs/gorbtree/rbtree"
import "github.com/pkg/errors"
import "github.com/spf13/pflag"

var dotopts struct {
	keys []int
	out  string
	args []string
}

func parseDotopts(args []string) error {
	f := pflag.NewFlagSet("dot", pflag.ContinueOnError)

	f.IntSliceVar(&dotopts.keys, "keys", []int{10, 20, 30},
		"comma separated keys to insert, in order")
	f.StringVarP(&dotopts.out, "out", "o", "-",
		"output file for dot script, - for stdout")
	if err := f.Parse(args); err != nil {
		return errors.Wrap(err, "dot")
	}
	dotopts.args = f.Args()
	return nil
}

func doDot(args []string) error {
	if err := parseDotopts(args); err != nil {
		return err
	}

	setts := rbtree.Defaultsettings()
	capacity := int64(len(dotopts.keys))
	if capacity < 1 {
		capacity = 1
	}
	setts["nodearena.capacity"] = capacity
	setts["nodearena.prealloc"] = capacity
	tree := rbtree.NewRBTree[int, int]("dot", setts)
	defer tree.Destroy()

	for _, key := range dotopts.keys {
		tree.Insert(key, key)
	}
	tree.Validate()
	return writedot(tree, dotopts.out)
}

type dotdumper interface {
	Dotdump(w io.Writer) error
}

// writedot dump tree into file out, or to stdout if out is "-".
func writedot(tree dotdumper, out string) error {
	buffer := bytes.NewBuffer(nil)
	if err := tree.Dotdump(buffer); err != nil {
		return errors.Wrap(err, "dotdump")
	}
	if out == "-" {
		_, err := os.Stdout.Write(buffer.Bytes())
		return errors.Wrap(err, "dotdump")
	}
	if err := os.WriteFile(out, buffer.Bytes(), 0666); err != nil {
		return errors.Wrapf(err, "dotdump %q", out)
	}
	return nil
}
