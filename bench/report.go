package bench

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// RunResult holds the timings of one run.
type RunResult struct {
	Entities int
	Arena    time.Duration
	Heap     time.Duration
}

// Report is the outcome of Runner.Run.
type Report struct {
	Config     Config
	Seed       uint64
	EntitySize int
	Runs       []RunResult
}

// ArenaAvg returns the mean arena time per run.
func (r Report) ArenaAvg() time.Duration {
	return r.avg(func(res RunResult) time.Duration { return res.Arena })
}

// HeapAvg returns the mean heap time per run.
func (r Report) HeapAvg() time.Duration {
	return r.avg(func(res RunResult) time.Duration { return res.Heap })
}

func (r Report) avg(pick func(RunResult) time.Duration) time.Duration {
	if len(r.Runs) == 0 {
		return 0
	}
	var total time.Duration
	for _, res := range r.Runs {
		total += pick(res)
	}
	return total / time.Duration(len(r.Runs))
}

// Speedup returns how many times faster the arena was on average than the
// heap. Zero when there is nothing to compare.
func (r Report) Speedup() float64 {
	arena := r.ArenaAvg()
	if arena == 0 {
		return 0
	}
	return float64(r.HeapAvg()) / float64(arena)
}

// WriteTo renders the report for a terminal.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	bold := color.New(color.Bold)
	faster := color.New(color.FgGreen)
	slower := color.New(color.FgRed)

	fmt.Fprintf(&buf, "Sizeof Entity -> %d bytes\n", r.EntitySize)
	fmt.Fprintf(&buf, "Configuration: %s frames, %s arena, seed %d\n",
		humanize.Comma(int64(r.Config.Frames)), humanize.IBytes(uint64(r.Config.Capacity)), r.Seed)
	fmt.Fprintln(&buf)

	for i, res := range r.Runs {
		bold.Fprintf(&buf, "Run %d:", i+1)
		fmt.Fprintf(&buf, " %s entities per frame\n", humanize.Comma(int64(res.Entities)))
		fmt.Fprintf(&buf, "  Arena allocator: %.4f seconds\n", res.Arena.Seconds())
		fmt.Fprintf(&buf, "  Heap allocator:  %.4f seconds\n\n", res.Heap.Seconds())
	}

	bold.Fprintln(&buf, "Average Results:")
	fmt.Fprintf(&buf, "  Arena allocator: %.4f seconds\n", r.ArenaAvg().Seconds())
	fmt.Fprintf(&buf, "  Heap allocator:  %.4f seconds\n", r.HeapAvg().Seconds())
	if s := r.Speedup(); s > 0 {
		c := faster
		if s < 1 {
			c = slower
		}
		fmt.Fprint(&buf, "  Speedup: ")
		c.Fprintf(&buf, "%.2fx\n", s)
	}
	return buf.WriteTo(w)
}
