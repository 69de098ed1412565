//go:build debugtag

package debugtag

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Enabled reports whether tags carry identity data in this build.
const Enabled = true

// increment is added to the global counter every time a local counter cell is
// seeded. It equals 2^32 * (1 - 1/(golden ratio)), which spreads the starting
// offsets of an arbitrary number of cells evenly over the 32-bit space.
const increment uint32 = 1_640_531_527

// global hands out starting offsets for local counter cells. Zero-initialized;
// the first cell receives increment, matching one fetch-add per cell. Go
// atomics are sequentially consistent, so offset allocation has a well-defined
// total order across goroutines.
var global atomic.Uint32

// locals caches counter cells per P. A cell is seeded once from global and
// then advanced by one for every tag minted through it. Cells dropped by the
// garbage collector are replaced by freshly seeded ones.
var locals = sync.Pool{
	New: func() any {
		cell := new(uint32)
		*cell = global.Add(increment)
		return cell
	},
}

func nextValue() uint32 {
	cell := locals.Get().(*uint32)
	value := *cell
	*cell = value + 1
	locals.Put(cell)

	return value
}

// A Tag marks the origin of a value. If two tags are not equal, they are not
// copies of the same tag. Equal tags usually, but not provably, share an
// origin. Tags are comparable and can be used as map keys.
type Tag struct {
	value uint32
}

// New returns a freshly minted tag. Consecutive calls on the same goroutine
// return tags with consecutive underlying values, so they never collide.
func New() Tag {
	return Tag{value: nextValue()}
}

// FromValue builds a tag with a fixed underlying value, bypassing the
// counters. Prefer New. Use FromValue only where a reproducible tag is
// required, such as a sentinel initialized at package level, and pick the
// value as if it were drawn at random to keep collisions unlikely.
func FromValue(value uint32) Tag {
	return Tag{value: value}
}

// Equal reports whether two tags have the same underlying value. The == and
// != operators work as well.
func (t Tag) Equal(other Tag) bool {
	return t == other
}

// String returns the underlying value for diagnostic output.
func (t Tag) String() string {
	return fmt.Sprintf("Tag(%#010x)", t.value)
}
