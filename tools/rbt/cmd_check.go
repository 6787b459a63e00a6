package main

import "fmt"
import "time"
import "math/rand"

import "github.com/bnclabs/gorbtree/api"
import "github.com/bnclabs/gorbtree/dict"
import "github.com/bnclabs/gorbtree/rbtree"
import "github.com/pkg/errors"
import "github.com/spf13/pflag"

var checkopts struct {
	n      int
	repeat int
	seed   int64
	tick   int
	log    string
	args   []string
}

func parseCheckopts(args []string) error {
	f := pflag.NewFlagSet("check", pflag.ContinueOnError)

	f.IntVarP(&checkopts.n, "count", "n", 100,
		"number of keys, 0 to n-1, inserted in every round")
	f.IntVar(&checkopts.repeat, "repeat", 1000,
		"number of rounds")
	f.Int64Var(&checkopts.seed, "seed", time.Now().UnixNano(),
		"seed value for shuffling keys")
	f.IntVar(&checkopts.tick, "tick", 10,
		"cross check with reference after every tick operations")
	f.StringVar(&checkopts.log, "log", "warn", "log level")
	if err := f.Parse(args); err != nil {
		return errors.Wrap(err, "check")
	}
	checkopts.args = f.Args()
	if checkopts.n < 1 {
		return errors.Errorf("check: --count %v cannot be less than 1", checkopts.n)
	} else if checkopts.tick < 1 {
		return errors.Errorf("check: --tick %v cannot be less than 1", checkopts.tick)
	}
	return nil
}

func doCheck(args []string) (err error) {
	if err = parseCheckopts(args); err != nil {
		return err
	}
	setlogger(checkopts.log)

	setts := rbtree.Defaultsettings()
	setts["nodearena.capacity"] = int64(checkopts.n)
	setts["nodearena.prealloc"] = int64(checkopts.n)
	tree := rbtree.NewRBTree[int, int]("check", setts)
	defer tree.Destroy()
	ref := dict.NewDict[int, int]("reference")
	defer ref.Destroy()

	round := 0
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("check: round %v seed %v: %v", round, checkopts.seed, r)
		}
	}()

	rnd := rand.New(rand.NewSource(checkopts.seed))
	keys := make([]int, checkopts.n)
	for i := range keys {
		keys[i] = i
	}
	ndels := (checkopts.n * 9) / 10

	now := time.Now()
	for round = 0; round < checkopts.repeat; round++ {
		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for i, key := range keys {
			if x, y := tree.Insert(key, key), ref.Insert(key, key); x != y {
				return errors.Errorf("insert %v: tree %v, reference %v", key, x, y)
			}
			if (i+1)%checkopts.tick == 0 {
				if err := crosscheck[int, int](tree, ref, keys); err != nil {
					return errors.Wrapf(err, "round %v after %v inserts", round, i+1)
				}
			}
		}

		rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for i, key := range keys[:ndels] {
			if x, y := tree.Delete(key), ref.Delete(key); x != y {
				return errors.Errorf("delete %v: tree %v, reference %v", key, x, y)
			}
			if (i+1)%checkopts.tick == 0 {
				if err := crosscheck[int, int](tree, ref, keys); err != nil {
					return errors.Wrapf(err, "round %v after %v deletes", round, i+1)
				}
			}
		}

		tree.Clear()
		ref.Clear()
		if err := crosscheck[int, int](tree, ref, keys); err != nil {
			return errors.Wrapf(err, "round %v after clear", round)
		}
	}
	fmt.Printf("Took %v to check %v rounds of %v keys, seed %v\n",
		time.Since(now), checkopts.repeat, checkopts.n, checkopts.seed)
	printstats(tree.Stats())
	return nil
}

// crosscheck tree against reference for every key in keys.
func crosscheck[K any, V comparable](tree, ref api.Index[K, V], keys []K) error {
	tree.Validate()
	if x, y := tree.Count(), ref.Count(); x != y {
		return errors.Errorf("count: tree %v, reference %v", x, y)
	}
	for _, key := range keys {
		tv, tok := tree.Get(key)
		rv, rok := ref.Get(key)
		if tok != rok {
			return errors.Errorf("get %v: tree %v, reference %v", key, tok, rok)
		} else if tv != rv {
			return errors.Errorf("get %v: tree value %v, reference %v", key, tv, rv)
		}
	}
	return nil
}
