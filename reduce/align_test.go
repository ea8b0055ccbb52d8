package reduce

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestPaddedSumFillsCacheLine(t *testing.T) {
	assert.EqualValues(t, cacheLine, unsafe.Sizeof(paddedSum{}))
}

func TestAlignedSlots(t *testing.T) {
	for n := 1; n <= 16; n++ {
		slots := newAlignedSlots(n)
		assert.Len(t, slots, n)
		for i := range slots {
			addr := uintptr(unsafe.Pointer(&slots[i]))
			assert.Zerof(t, addr%cacheLine, "slot %d of %d at %#x", i, n, addr)
			assert.Zero(t, slots[i].val)
		}
	}
}
