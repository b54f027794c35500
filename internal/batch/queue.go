// Package batch implements the lock-free work queue and worker pool
// that drive the batch solve: a fixed pool of goroutines claims puzzles
// from a shared atomic cursor, solves each directly into its pre-laid-
// out output slot, and updates shared counters without locks.
package batch

import "sync/atomic"

// Queue is shared by every worker for the duration of one batch run. The
// puzzle slice and output buffer are never mutated by the queue itself;
// individual workers write disjoint output ranges.
type Queue struct {
	Puzzles   [][81]byte
	Output    []byte
	HeaderLen int
	Total     int64

	next      atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// NewQueue builds a queue over puzzles and a pre-populated output
// buffer laid out by internal/layout.
func NewQueue(puzzles [][81]byte, output []byte, headerLen int) *Queue {
	return &Queue{
		Puzzles:   puzzles,
		Output:    output,
		HeaderLen: headerLen,
		Total:     int64(len(puzzles)),
	}
}

// Claim performs an atomic fetch-and-add on the shared cursor and
// reports whether the returned index is still within range. Every index
// in [0, Total) is handed out to exactly one caller across all workers.
func (q *Queue) Claim() (index int64, ok bool) {
	index = q.next.Add(1) - 1
	return index, index < q.Total
}

// Completed returns the number of puzzles processed so far, success or
// failure. It only ever increases.
func (q *Queue) Completed() int64 { return q.completed.Load() }

// Failed returns the number of puzzles Algorithm X could not solve.
func (q *Queue) Failed() int64 { return q.failed.Load() }

func (q *Queue) recordSuccess() { q.completed.Add(1) }

func (q *Queue) recordFailure() {
	q.failed.Add(1)
	q.completed.Add(1)
}
