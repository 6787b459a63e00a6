package malloc

import "fmt"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

func bitset(bits []uint64, idx uint32) {
	bits[idx/64] |= 1 << (idx % 64)
}

func bitclear(bits []uint64, idx uint32) {
	bits[idx/64] &^= 1 << (idx % 64)
}

func bitisset(bits []uint64, idx uint32) bool {
	if int(idx/64) >= len(bits) {
		return false
	}
	return (bits[idx/64] & (1 << (idx % 64))) != 0
}
