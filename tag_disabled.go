//go:build !debugtag

package debugtag

// Enabled reports whether tags carry identity data in this build.
const Enabled = false

// A Tag marks the origin of a value. In this build tags carry no data: the
// type is zero-size, every tag equals every other tag, and minting a tag does
// not touch any counter. Tags are comparable and can be used as map keys.
type Tag struct{}

// New returns a freshly minted tag.
func New() Tag {
	return Tag{}
}

// FromValue builds a tag with a fixed underlying value, bypassing the
// counters. In this build the value is discarded.
func FromValue(value uint32) Tag {
	_ = value
	return Tag{}
}

// Equal reports whether two tags have the same underlying value. Without
// identity data there is nothing to distinguish, so all tags are equal.
func (t Tag) Equal(other Tag) bool {
	return true
}

// String returns a fixed marker for diagnostic output.
func (t Tag) String() string {
	return "Tag(off)"
}
