package batch

import (
	"sync"

	"github.com/kpitt/sudokubatch/internal/layout"
	"github.com/kpitt/sudokubatch/internal/workorder"
)

// Hooks are optional observers the worker pool calls out to; both may be
// nil.
type Hooks struct {
	// Progress is called after every claim completes, with the running
	// completed/total counts.
	Progress func(completed, total int64)
	// Warn is called when a puzzle's matrix arena overflows, which can
	// only happen on a malformed board.
	Warn func(puzzleIndex int, skippedRows int)
}

// RunPool spawns workers-1 goroutines and has the calling goroutine
// participate as well, so workers effective workers solve the queue.
// It blocks until every puzzle index has been claimed and processed.
func RunPool(q *Queue, workers int, hooks Hooks) {
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers - 1)
	for i := 1; i < workers; i++ {
		go func() {
			defer wg.Done()
			runClaimLoop(q, hooks)
		}()
	}

	runClaimLoop(q, hooks) // the driver thread also participates
	wg.Wait()
}

// runClaimLoop is the tight claim-and-solve loop a single worker runs
// against one thread-local work order, reused across every claim.
func runClaimLoop(q *Queue, hooks Hooks) {
	order := workorder.New()

	for {
		idx, ok := q.Claim()
		if !ok {
			return
		}

		slot := layout.Slot(q.Output, q.HeaderLen, int(idx))
		copy(slot, q.Puzzles[idx][:])
		order.Reset(slot)

		solved, skipped := order.Solve()
		if skipped > 0 && hooks.Warn != nil {
			hooks.Warn(int(idx), skipped)
		}

		if solved {
			q.recordSuccess()
		} else {
			q.recordFailure()
		}

		if hooks.Progress != nil {
			hooks.Progress(q.Completed(), q.Total)
		}
	}
}
