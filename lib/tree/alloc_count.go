//go:build alloctrack
// +build alloctrack

package tree

import "sync/atomic"

// Node accounting for leak hunting. Enabled by the alloctrack build tag;
// mildly slows the mutating paths.

var numNodes atomic.Int64

func trackAlloc() {
	numNodes.Add(1)
}

func trackFree() {
	numNodes.Add(-1)
}

// NumNodes reports how many blocks the index currently owns: incremented
// when insertion claims a node, decremented when a removal (or a release)
// hands one back.
func NumNodes() int64 {
	return numNodes.Load()
}
