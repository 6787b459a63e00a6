package malloc

import "testing"

import "github.com/stretchr/testify/require"

type testslot struct {
	key   int
	value string
}

func TestPoolAlloc(t *testing.T) {
	pool := NewPool[testslot](Defaultsettings(100))
	defer pool.Release()

	if x := pool.Allocated(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := pool.Available(); x != 100 {
		t.Errorf("unexpected %v", x)
	}

	idxs := []uint32{}
	for i := 0; i < 100; i++ {
		idx, ok := pool.Alloc()
		if !ok {
			t.Fatalf("unexpected failure at %v", i)
		} else if idx == 0 {
			t.Fatalf("reserved slot allocated")
		}
		pool.At(idx).key = i
		idxs = append(idxs, idx)
	}
	if _, ok := pool.Alloc(); ok {
		t.Errorf("expected capacity exhaustion")
	}
	for i, idx := range idxs {
		if x := pool.At(idx).key; x != i {
			t.Errorf("expected %v, got %v", i, x)
		}
	}
	if x := pool.Allocated(); x != 100 {
		t.Errorf("unexpected %v", x)
	} else if x := pool.Available(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := pool.Utilization(); x != 100 {
		t.Errorf("unexpected %v", x)
	}
}

func TestPoolFree(t *testing.T) {
	pool := NewPool[testslot](Defaultsettings(10))
	defer pool.Release()

	idx, _ := pool.Alloc()
	pool.At(idx).key, pool.At(idx).value = 10, "ten"
	pool.Free(idx)
	if x := pool.Allocated(); x != 0 {
		t.Errorf("unexpected %v", x)
	}

	// freed slot is recycled and zeroed.
	again, ok := pool.Alloc()
	require.True(t, ok)
	require.Equal(t, idx, again)
	require.Equal(t, testslot{}, *pool.At(again))

	stats := pool.Stats()
	require.Equal(t, int64(2), stats["n_allocs"])
	require.Equal(t, int64(1), stats["n_frees"])
	require.Equal(t, int64(1), stats["allocated"])
}

func TestPoolBadFree(t *testing.T) {
	pool := NewPool[testslot](Defaultsettings(10))
	defer pool.Release()

	require.Panics(t, func() { pool.Free(0) })
	require.Panics(t, func() { pool.Free(5) })

	idx, _ := pool.Alloc()
	pool.Free(idx)
	require.Panics(t, func() { pool.Free(idx) })
}

func TestPoolReuse(t *testing.T) {
	pool := NewPool[testslot](Defaultsettings(1000))
	defer pool.Release()

	pool.At(0).key = -1
	idxs := make([]uint32, 0, 1000)
	for i := 0; i < 1000; i++ {
		idx, _ := pool.Alloc()
		idxs = append(idxs, idx)
	}
	for _, idx := range idxs {
		pool.Free(idx)
	}
	require.Equal(t, int64(0), pool.Allocated())
	require.Equal(t, -1, pool.At(0).key)

	// freed slots are recycled before the pool grows.
	idx, ok := pool.Alloc()
	require.True(t, ok)
	require.Equal(t, idxs[len(idxs)-1], idx)
	require.Equal(t, 0, pool.At(idx).key)
}

func TestPoolRelease(t *testing.T) {
	pool := NewPool[testslot](Defaultsettings(10))
	pool.Release()
	require.Panics(t, func() { pool.Alloc() })
	require.Panics(t, func() { pool.Free(1) })
}

func TestPoolMemory(t *testing.T) {
	setts := Defaultsettings(10000)
	setts["prealloc"] = int64(100)
	pool := NewPool[testslot](setts)
	defer pool.Release()

	overhead, useful := pool.Memory()
	if overhead <= 0 {
		t.Errorf("unexpected %v", overhead)
	} else if useful < 101*pool.Slotsize() {
		t.Errorf("unexpected %v", useful)
	}
}

func TestDefaultsettings(t *testing.T) {
	require.PanicsWithError(t, "capacity(0) < 1", func() { Defaultsettings(0) })

	setts := Defaultsettings(10)
	require.Equal(t, int64(10), setts.Int64("capacity"))
	require.Equal(t, int64(10), setts.Int64("prealloc"))

	setts = Defaultsettings(Maxcapacity + 100)
	require.Equal(t, Maxcapacity, setts.Int64("capacity"))
	require.Equal(t, int64(1024), setts.Int64("prealloc"))
}
