// Package exec is the execution-space abstraction of spec §4.6: a provider
// of parallel-for and parallel-reduce primitives over an integer range, onto
// which the ddc package maps multi-dimensional domain iteration via a
// stable linearisation.
package exec

import (
	"runtime"

	"github.com/openfluke/ddc/mem"
)

// Space is an abstract execution space. HostSpace runs kernels on a
// goroutine pool sized to the machine (grounded on the teacher's
// KMeansCluster parallel-assignment step, nn/clustering.go); DeviceSpace
// wraps the WebGPU queue as the fence point for cross-space joins (spec
// §5's two suspension points: entering/leaving a parallel region, and a
// cross-memory-space deep-copy).
type Space interface {
	// Name identifies the space (e.g. "host", "device"); it is the name
	// mem.Space.AccessibleFrom takes. The for-each and reduce functions do
	// not check what a kernel captures against it.
	Name() string
	// Workers reports the degree of parallelism this space will use for a
	// range of the given size. Host uses up to runtime.NumCPU(); Device
	// reports 1, since kernel dispatch there is a single queue submission
	// fenced as one unit (real GPU compute kernels are out of scope — see
	// spec §1 "parallel-execution back-ends... treated as an abstract
	// execution space capability").
	Workers(n int64) int
	// Fence blocks until all work previously submitted to this space has
	// completed.
	Fence()
}

type hostSpace struct{}

// Host returns the CPU execution space.
func Host() Space { return hostSpace{} }

func (hostSpace) Name() string { return "host" }

func (hostSpace) Workers(n int64) int {
	w := runtime.NumCPU()
	if int64(w) > n {
		w = int(n)
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (hostSpace) Fence() {}

type deviceSpace struct{}

// Device returns the device execution space. Its Fence blocks on the
// WebGPU queue via mem.Fence; ddc callers doing a device deep-copy must
// call Fence before relying on the result (spec §5).
func Device() Space { return deviceSpace{} }

func (deviceSpace) Name() string { return "device" }

func (deviceSpace) Workers(int64) int { return 1 }

func (deviceSpace) Fence() {
	mem.Fence()
}
