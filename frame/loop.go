// Package frame drives a fixed number of frames against one arena and owns
// the reset boundary between them.
package frame

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/framearena"
)

// Frame is the context handed to a Func for one unit of work.
// Arena is reset as soon as the Func returns; nothing allocated from it may
// be retained past that point.
type Frame struct {
	Index int
	Arena *framearena.Arena
}

// Func does the work of a single frame.
type Func func(ctx context.Context, f Frame) error

// Stats summarizes a Run.
type Stats struct {
	Frames    int // frames that completed
	Skipped   int // frames abandoned because the arena ran out of space
	PeakBytes int // most arena bytes used by any frame
}

// Option configures a Loop.
type Option func(*Loop)

// WithSkipOutOfSpace makes an out-of-space failure abandon the current frame
// instead of stopping the loop.
func WithSkipOutOfSpace() Option {
	return func(l *Loop) { l.skipOutOfSpace = true }
}

// Loop runs frames against a single arena it does not share with anyone else.
type Loop struct {
	arena          *framearena.Arena
	logger         log.Logger
	skipOutOfSpace bool
}

// NewLoop returns a Loop over a. A nil logger discards all records.
func NewLoop(a *framearena.Arena, logger log.Logger, opts ...Option) *Loop {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	l := &Loop{arena: a, logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run calls fn for frames consecutive frames, resetting the arena after each
// one whether it succeeded or not. It stops at the first error fn returns,
// unless the error is an out-of-space failure and the loop was built with
// WithSkipOutOfSpace. Cancelling ctx stops the loop before the next frame.
func (l *Loop) Run(ctx context.Context, frames int, fn Func) (Stats, error) {
	var stats Stats
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		err := fn(ctx, Frame{Index: i, Arena: l.arena})
		used := l.arena.SizeInUse()
		if used > stats.PeakBytes {
			stats.PeakBytes = used
		}
		l.arena.Reset()

		if err != nil {
			if l.skipOutOfSpace && errors.Is(err, framearena.ErrOutOfSpace) {
				level.Warn(l.logger).Log("msg", "skipping frame", "frame", i, "err", err)
				stats.Skipped++
				continue
			}
			return stats, errors.Wrapf(err, "frame %d", i)
		}
		stats.Frames++
		level.Debug(l.logger).Log("msg", "frame complete", "frame", i, "bytes_used", used, "capacity", l.arena.Capacity())
	}
	return stats, nil
}
