// Command framedemo spawns a player and a wave of enemies per frame from a
// frame arena and prints where everything landed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/framearena"
	"github.com/pavanmanishd/framearena/entity"
	"github.com/pavanmanishd/framearena/frame"
	"github.com/pavanmanishd/framearena/internal/logging"
)

type options struct {
	frames   int
	enemies  int
	capacity int
}

func main() {
	app := kingpin.New("framedemo", "Spawn entities per frame from a fixed-size frame arena.")
	app.HelpFlag.Short('h')

	var opts options
	app.Flag("frames", "Number of frames to simulate.").Default("3").IntVar(&opts.frames)
	app.Flag("enemies", "Enemies spawned per frame.").Default("69").IntVar(&opts.enemies)
	app.Flag("capacity", "Arena capacity in bytes.").Default("8192").IntVar(&opts.capacity)
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").Enum(logging.Levels...)

	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := opts.validate(); err != nil {
		app.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, *logLevel)
	if err != nil {
		app.Fatalf("%v", err)
	}

	if err := run(context.Background(), os.Stdout, logger, opts); err != nil {
		if errors.Is(err, framearena.ErrOutOfSpace) {
			level.Error(logger).Log("msg", "frame does not fit the arena, raise --capacity or lower --enemies", "err", err)
		} else {
			level.Error(logger).Log("msg", "demo failed", "err", err)
		}
		os.Exit(1)
	}
}

// validate rejects flag values the demo cannot run with. A non-positive
// capacity is an error here, not the arena default.
func (o options) validate() error {
	switch {
	case o.frames < 0:
		return errors.Errorf("--frames must not be negative, got %d", o.frames)
	case o.enemies < 0:
		return errors.Errorf("--enemies must not be negative, got %d", o.enemies)
	case o.capacity <= 0:
		return errors.Errorf("--capacity must be positive, got %d", o.capacity)
	}
	return nil
}

func run(ctx context.Context, w io.Writer, logger log.Logger, opts options) error {
	a, err := framearena.NewArena(opts.capacity)
	if err != nil {
		return err
	}
	defer a.Release()

	level.Debug(logger).Log("msg", "arena ready", "capacity", a.Capacity(), "entity_size", entity.Size)

	loop := frame.NewLoop(a, logger)
	_, err = loop.Run(ctx, opts.frames, func(_ context.Context, f frame.Frame) error {
		fmt.Fprintf(w, "\nFrame %d:\n", f.Index)

		wave, err := entity.SpawnWave(f.Arena, opts.enemies)
		if wave.Player != nil {
			fmt.Fprintf(w, "Created player at %.1f, %.1f\n", wave.Player.X, wave.Player.Y)
		}
		if err != nil {
			return err
		}
		for i := range wave.Enemies {
			e := &wave.Enemies[i]
			fmt.Fprintf(w, "Created %d enemy at %.1f, %.1f\n", i+1, e.X, e.Y)
		}

		fmt.Fprintln(w, "Memory reset for next frame")
		return nil
	})
	return err
}
