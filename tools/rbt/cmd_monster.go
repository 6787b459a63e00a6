package main

import "os"
import "fmt"
import "time"
import "encoding/json"

import "github.com/bnclabs/gorbtree/api"
import "github.com/bnclabs/gorbtree/dict"
import "github.com/bnclabs/gorbtree/rbtree"
import "github.com/pkg/errors"
import "github.com/prataprc/goparsec"
import "github.com/prataprc/monster"
import mcommon "github.com/prataprc/monster/common"
import "github.com/spf13/pflag"

var monsteropts struct {
	n        int
	seed     int64
	capacity int64
	bagdir   string
	prodfile string
	opdump   bool
	log      string
	args     []string
}

func parseMonsteropts(args []string) error {
	f := pflag.NewFlagSet("monster", pflag.ContinueOnError)

	f.IntVarP(&monsteropts.n, "count", "n", 1000,
		"number of operation batches to generate")
	f.Int64Var(&monsteropts.seed, "seed", time.Now().UnixNano(),
		"random seed for the generator")
	f.Int64Var(&monsteropts.capacity, "capacity", 2000,
		"node arena capacity, shall cover the key range in prodfile")
	f.StringVar(&monsteropts.bagdir, "bagdir", "./",
		"bag directory for monster sample data")
	f.StringVar(&monsteropts.prodfile, "prodfile", "",
		"monster production file generating insert,delete,get,validate")
	f.BoolVar(&monsteropts.opdump, "opdump", false,
		"dump monster generated ops")
	f.StringVar(&monsteropts.log, "log", "warn", "log level")
	if err := f.Parse(args); err != nil {
		return errors.Wrap(err, "monster")
	}
	monsteropts.args = f.Args()
	if monsteropts.prodfile == "" {
		return errors.New("monster: please provide --prodfile")
	} else if monsteropts.capacity < 1 {
		return errors.Errorf("monster: --capacity %v cannot be less than 1", monsteropts.capacity)
	}
	return nil
}

func doMonster(args []string) (err error) {
	if err = parseMonsteropts(args); err != nil {
		return err
	}
	setlogger(monsteropts.log)

	setts := rbtree.Defaultsettings()
	setts["nodearena.capacity"] = monsteropts.capacity
	if setts.Int64("nodearena.prealloc") > monsteropts.capacity {
		setts["nodearena.prealloc"] = monsteropts.capacity
	}
	tree := rbtree.NewRBTree[int64, int64]("monster", setts)
	defer tree.Destroy()
	ref := dict.NewDict[int64, int64]("reference")
	defer ref.Destroy()

	opch := make(chan [][]interface{}, 1000)
	errch, quit := make(chan error, 1), make(chan struct{})
	defer close(quit)
	go func() {
		seed, bagdir := uint64(monsteropts.seed), monsteropts.bagdir
		errch <- generate(monsteropts.n, monsteropts.prodfile, seed, bagdir, opch, quit)
	}()

	batch := 0
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("monster: batch %v seed %v: %v", batch, monsteropts.seed, r)
		}
	}()

	genstats := make(map[string]int64)
	now := time.Now()
	for cmds := range opch {
		if err := applyops(tree, ref, cmds, genstats); err != nil {
			return errors.Wrapf(err, "monster: batch %v seed %v", batch, monsteropts.seed)
		}
		batch++
	}
	if err := <-errch; err != nil {
		return err
	}
	if err := crosscheck[int64, int64](tree, ref, ref.Keys()); err != nil {
		return errors.Wrap(err, "monster: final")
	}
	fmt.Printf("Took %v to apply %v batches, seed %v\n",
		time.Since(now), batch, monsteropts.seed)

	stats := make(map[string]interface{})
	for name, count := range genstats {
		stats["ops."+name] = count
	}
	printstats(stats)
	printstats(tree.Stats())
	return nil
}

// applyops apply generated commands on tree and reference, results
// must match.
func applyops(
	tree api.Index[int64, int64], ref *dict.Dict[int64, int64],
	cmds [][]interface{}, genstats map[string]int64) error {

	for _, cmd := range cmds {
		if monsteropts.opdump {
			fmt.Printf("cmd %v\n", cmd)
		}
		if len(cmd) == 0 {
			return errors.New("empty command")
		}
		name, ok := cmd[0].(string)
		if !ok {
			return errors.Errorf("invalid command %v", cmd)
		}
		genstats[name]++

		switch name {
		case "insert":
			key, value, err := cmdargs(cmd, 2)
			if err != nil {
				return err
			}
			if x, y := tree.Insert(key, value), ref.Insert(key, value); x != y {
				return errors.Errorf("insert %v: tree %v, reference %v", key, x, y)
			}
		case "delete":
			key, _, err := cmdargs(cmd, 1)
			if err != nil {
				return err
			}
			if x, y := tree.Delete(key), ref.Delete(key); x != y {
				return errors.Errorf("delete %v: tree %v, reference %v", key, x, y)
			}
		case "get":
			key, _, err := cmdargs(cmd, 1)
			if err != nil {
				return err
			}
			if err := crosscheck[int64, int64](tree, ref, []int64{key}); err != nil {
				return err
			}
		case "validate":
			if err := crosscheck[int64, int64](tree, ref, ref.Keys()); err != nil {
				return err
			}
		default:
			return errors.Errorf("unknown command %v", cmd)
		}
	}
	return nil
}

// cmdargs return the integer arguments of a json decoded command,
// numbers decode as float64.
func cmdargs(cmd []interface{}, nargs int) (key, value int64, err error) {
	if len(cmd) != nargs+1 {
		return 0, 0, errors.Errorf("command %v expects %v arguments", cmd, nargs)
	}
	args := [2]int64{}
	for i, arg := range cmd[1:] {
		f, ok := arg.(float64)
		if !ok {
			return 0, 0, errors.Errorf("command %v argument %v not a number", cmd, arg)
		}
		args[i] = int64(f)
	}
	return args[0], args[1], nil
}

//--------
// monster
//--------

func generate(
	repeat int, prodfile string, seed uint64, bagdir string,
	opch chan<- [][]interface{}, quit <-chan struct{}) error {

	defer close(opch)

	text, err := os.ReadFile(prodfile)
	if err != nil {
		return errors.Wrapf(err, "monster %q", prodfile)
	}
	root, err := compile(parsec.NewScanner(text))
	if err != nil {
		return errors.Wrapf(err, "monster %q", prodfile)
	}
	scope := monster.BuildContext(root, seed, bagdir, prodfile)
	nterms := scope["_nonterminals"].(mcommon.NTForms)
	for i := 0; i < repeat; i++ {
		scope = scope.RebuildContext()
		val, err := evaluate("root", scope, nterms["s"])
		if err != nil {
			return err
		}
		text, ok := val.(string)
		if !ok {
			return errors.Errorf("monster: generated %T, expected string", val)
		}
		var arr [][]interface{}
		if err := json.Unmarshal([]byte(text), &arr); err != nil {
			return errors.Wrapf(err, "monster: generated %q", text)
		}
		select {
		case opch <- arr:
		case <-quit:
			return nil
		}
	}
	return nil
}

func compile(s parsec.Scanner) (scope mcommon.Scope, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v at %v", r, s.GetCursor())
		}
	}()
	root, _ := monster.Y(s)
	scope, ok := root.(mcommon.Scope)
	if !ok {
		return nil, errors.Errorf("invalid production, got %T", root)
	}
	return scope, nil
}

func evaluate(
	name string, scope mcommon.Scope, forms []*mcommon.Form) (val interface{}, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("monster evaluate %v: %v", name, r)
		}
	}()
	return monster.EvalForms(name, scope, forms), nil
}
