// Command sudokubatch solves every puzzle in a batch input file and
// writes a parallel file pairing each puzzle with its solution.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/kpitt/sudokubatch/internal/batch"
	"github.com/kpitt/sudokubatch/internal/cpuinfo"
	"github.com/kpitt/sudokubatch/internal/ioframe"
	"github.com/kpitt/sudokubatch/internal/layout"
	"github.com/kpitt/sudokubatch/internal/progress"
)

const outputPath = "./PuzzleOutput.txt"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) != 2 {
		fmt.Println("Usage: sudokubatch <puzzle_file>")
		return 1
	}

	puzzles, err := ioframe.Read(args[1])
	if err != nil {
		printError(err)
		return 2
	}

	output := layout.Prepare(puzzles.Header, puzzles.Boards)
	queue := batch.NewQueue(puzzles.Boards, output, len(puzzles.Header))

	reporter := progress.NewReporter()
	hooks := batch.Hooks{
		Progress: reporter.Report,
		Warn: func(puzzleIndex, skippedRows int) {
			reporter.Warnf("puzzle %d: matrix arena overflowed, dropped %d candidate rows",
				puzzleIndex, skippedRows)
		},
	}

	workers := cpuinfo.Count()
	batch.RunPool(queue, workers, hooks)
	reporter.Done(queue.Completed(), queue.Total, queue.Failed())

	if err := ioframe.Write(outputPath, output); err != nil {
		printError(err)
		return 2
	}

	return 0
}

func printError(err error) {
	color.New(color.FgHiRed).Fprintln(os.Stderr, err)
}
