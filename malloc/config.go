package malloc

import "math"

import s "github.com/bnclabs/gosettings"

// Maxcapacity maximum number of slots that can be addressed by a pool,
// index is a uint32 and index ZERO is reserved.
const Maxcapacity = int64(math.MaxUint32 - 1)

// Defaultsettings for a slot pool.
//
// "capacity" (int64, default: <capacity>)
//
//	Maximum number of slots that can be live at any point, Alloc()
//	shall fail beyond this limit.
//
// "prealloc" (int64, default: 1024)
//
//	Number of slots to pre-allocate when the pool is created, clamped
//	to "capacity".
func Defaultsettings(capacity int64) s.Settings {
	if capacity < 1 {
		panicerr("capacity(%v) < 1", capacity)
	} else if capacity > Maxcapacity {
		capacity = Maxcapacity
	}
	prealloc := int64(1024)
	if prealloc > capacity {
		prealloc = capacity
	}
	return s.Settings{
		"capacity": capacity,
		"prealloc": prealloc,
	}
}
