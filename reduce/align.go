package reduce

import "unsafe"

// cacheLine is the assumed size of one hardware cache line in bytes.
const cacheLine = 64

// A paddedSum occupies exactly one cache line, so that two workers'
// accumulators never share one.
type paddedSum struct {
	val float64
	_   [cacheLine - 8]byte
}

// newAlignedSlots returns n zeroed slots whose base address, and therefore
// every slot address, is a multiple of cacheLine. The slots are carved out
// of an oversized byte allocation, since the Go allocator only guarantees
// the alignment of the element type itself.
func newAlignedSlots(n int) []paddedSum {
	buf := make([]byte, (n+1)*cacheLine)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&buf[0])) % cacheLine); rem != 0 {
		off = cacheLine - rem
	}
	return unsafe.Slice((*paddedSum)(unsafe.Pointer(&buf[off])), n)
}
