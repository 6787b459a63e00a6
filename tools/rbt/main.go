// Command rbt exercise the red-black tree from command line. Load a
// tree with random keys, cross check it against a reference dict using
// shuffled keys or monster generated operations, and dump it as
// graphviz dot script.
package main

import "os"
import "fmt"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/gorbtree/rbtree"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: rbt <load|check|dot|monster> [options]\n")
	fmt.Fprintf(os.Stderr, "  rbt <command> --help for command options\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "load":
		err = doLoad(args)
	case "check":
		err = doCheck(args)
	case "dot":
		err = doDot(args)
	case "monster":
		err = doMonster(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

func setlogger(level string) {
	setts := map[string]interface{}{
		"log.level":      level,
		"log.flags":      "lshortfile",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.colorwarn":  "yellow",
	}
	log.SetLogger(nil, setts)
	rbtree.LogComponents("all")
}
