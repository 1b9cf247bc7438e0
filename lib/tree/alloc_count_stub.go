//go:build !alloctrack
// +build !alloctrack

package tree

func trackAlloc() {}

func trackFree() {}

// NumNodes reports 0 when the index is built without the alloctrack tag.
func NumNodes() int64 {
	return 0
}
