// Package debugtag provides debug-only tags that track where values come
// from.
//
// A Tag marks a value so that, later, the marked value can be checked against
// the instance that produced it. The classic case is index-based data
// structures: an index is not connected at compile time to the container that
// issued it, so an index used with the wrong container may panic or silently
// return garbage. Storing a Tag in both the container and the index makes the
// mismatch detectable in tests and while debugging. The slab package in this
// repository shows the pattern.
//
// Tags carry identity data only when the code is built with the debugtag
// build tag:
//
//	go test -tags debugtag ./...
//
// Without the tag, Tag is a zero-size type, every Tag compares equal, and all
// operations compile down to nothing. With the tag, two tags that are not
// copies of each other are almost certainly unequal, so unequal tags prove
// different origins while equal tags only suggest the same origin.
// Functionality must therefore never depend on tag equality; use it for
// sanity checks only.
package debugtag
