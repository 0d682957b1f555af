// Package tagid gives discrete-dimension and continuous-axis tags a compact
// hash identifier so the discrete-space registry (see registry.go) can key
// its map on a uint64 instead of comparing tag names as strings on the hot
// coordinate/distance dispatch path.
package tagid

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a tag's nominal name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
