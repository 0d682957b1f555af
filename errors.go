package ddc

import "fmt"

// OutOfMemory, the one recoverable condition in this package's error
// taxonomy (spec §7), is defined in the mem package next to the allocator
// abstraction that can actually raise it (mem.OutOfMemory) — NewChunk
// returns it verbatim from mem.Space.Reserve. Every other invariant
// violation here is a programming error and panics via fatalf below.

// fatalf reports a programming error: a precondition violation that has no
// recoverable meaning (out-of-bounds index, tag mismatch, empty domain where
// non-empty was required, double-initialisation, unsorted break table...).
// The teacher repo has no recoverable-error wrapper for these either — they
// are reported with fmt.Errorf and handed back up the call stack as plain
// errors when recoverable, or, for conditions with no sane recovery, as a
// panic carrying a diagnostic identifying the offending tag/domain/index.
func fatalf(format string, args ...any) {
	panic(fmt.Sprintf("ddc: programming error: "+format, args...))
}
