package main

import "fmt"
import "time"
import "math/rand"

import "github.com/bnclabs/gorbtree/api"
import "github.com/bnclabs/gorbtree/lib"
import "github.com/bnclabs/gorbtree/rbtree"
import s "github.com/bnclabs/gosettings"
import "github.com/pkg/errors"
import "github.com/spf13/pflag"

var loadopts struct {
	n        int64
	seed     int64
	delratio float64
	settings string
	capacity int64
	log      string
	dotfile  string
	args     []string
}

func parseLoadopts(args []string) error {
	f := pflag.NewFlagSet("load", pflag.ContinueOnError)

	f.Int64VarP(&loadopts.n, "count", "n", 100000,
		"number of random keys to insert")
	f.Int64Var(&loadopts.seed, "seed", time.Now().UnixNano(),
		"seed value for generating keys")
	f.Float64Var(&loadopts.delratio, "delete", 0.1,
		"fraction of inserted keys to delete afterwards")
	f.StringVar(&loadopts.settings, "settings", "",
		"yaml file with rbtree settings")
	f.Int64Var(&loadopts.capacity, "capacity", 0,
		"node arena capacity, overrides settings file")
	f.StringVar(&loadopts.log, "log", "warn", "log level")
	f.StringVar(&loadopts.dotfile, "dotfile", "",
		"dump the loaded tree as dot script")
	if err := f.Parse(args); err != nil {
		return errors.Wrap(err, "load")
	}
	loadopts.args = f.Args()
	if loadopts.delratio < 0 || loadopts.delratio > 1 {
		return errors.Errorf("load: --delete %v not in [0,1]", loadopts.delratio)
	}
	return nil
}

func loadsettings(filename string, capacity int64) (s.Settings, error) {
	setts := rbtree.Defaultsettings()
	if filename != "" {
		fsetts, err := lib.Loadsettings(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "settings %q", filename)
		}
		setts = setts.Mixin(fsetts)
	}
	if capacity > 0 {
		setts["nodearena.capacity"] = capacity
		if setts.Int64("nodearena.prealloc") > capacity {
			setts["nodearena.prealloc"] = capacity
		}
	}
	return setts, nil
}

func doLoad(args []string) (err error) {
	if err = parseLoadopts(args); err != nil {
		return err
	}
	setlogger(loadopts.log)

	setts, err := loadsettings(loadopts.settings, loadopts.capacity)
	if err != nil {
		return err
	}
	tree := rbtree.NewRBTree[int64, int64]("load", setts)
	defer tree.Destroy()

	defer func() {
		if r := recover(); r != nil {
			if r == api.ErrorOutofMemory {
				err = errors.Wrapf(api.ErrorOutofMemory, "load: at %v entries", tree.Count())
				return
			}
			err = errors.Errorf("load: %v", r)
		}
	}()

	rnd := rand.New(rand.NewSource(loadopts.seed))
	keys := make([]int64, 0, loadopts.n)
	now := time.Now()
	for i := int64(0); i < loadopts.n; i++ {
		key := rnd.Int63()
		if tree.Insert(key, i) {
			keys = append(keys, key)
		}
	}
	fmt.Printf("Took %v to insert %v items\n", time.Since(now), tree.Count())

	ndels := int(float64(len(keys)) * loadopts.delratio)
	rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	now = time.Now()
	for _, key := range keys[:ndels] {
		if !tree.Delete(key) {
			return errors.Wrapf(api.ErrorKeyMissing, "load: delete %v", key)
		}
	}
	fmt.Printf("Took %v to delete %v items\n", time.Since(now), ndels)

	now = time.Now()
	tree.Validate()
	fmt.Printf("Took %v to validate %v items\n", time.Since(now), tree.Count())

	printstats(tree.Fullstats())
	tree.Log(true)

	if loadopts.dotfile != "" {
		if err := writedot(tree, loadopts.dotfile); err != nil {
			return err
		}
		fmt.Printf("dumped tree to %v\n", loadopts.dotfile)
	}
	return nil
}
