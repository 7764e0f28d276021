package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/framearena"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, log.NewNopLogger(), options{frames: 3, enemies: 69, capacity: 8192})
	require.NoError(t, err)

	s := out.String()
	assert.Equal(t, 3, strings.Count(s, "Created player at 100.0, 200.0\n"))
	assert.Equal(t, 3, strings.Count(s, "Memory reset for next frame\n"))
	assert.Equal(t, 3, strings.Count(s, "Created 69 enemy at 3400.0, 2040.0\n"))
	assert.True(t, strings.HasPrefix(s, "\nFrame 0:\nCreated player at 100.0, 200.0\nCreated 1 enemy at 0.0, 0.0\n"))
	assert.Contains(t, s, "\nFrame 2:\n")
}

func TestRunOutOfSpace(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, log.NewNopLogger(), options{frames: 3, enemies: 300, capacity: 8192})
	require.ErrorIs(t, err, framearena.ErrOutOfSpace)

	// The player was placed before the enemy batch failed.
	assert.Equal(t, "\nFrame 0:\nCreated player at 100.0, 200.0\n", out.String())
}

func TestOptionsValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts options
		err  string
	}{
		{name: "defaults", opts: options{frames: 3, enemies: 69, capacity: 8192}},
		{name: "no enemies", opts: options{frames: 1, enemies: 0, capacity: 64}},
		{name: "zero capacity", opts: options{frames: 3, enemies: 69, capacity: 0}, err: "--capacity must be positive, got 0"},
		{name: "negative capacity", opts: options{frames: 3, enemies: 69, capacity: -5}, err: "--capacity must be positive, got -5"},
		{name: "negative enemies", opts: options{frames: 3, enemies: -1, capacity: 8192}, err: "--enemies must not be negative, got -1"},
		{name: "negative frames", opts: options{frames: -2, enemies: 1, capacity: 8192}, err: "--frames must not be negative, got -2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.validate()
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.err)
		})
	}
}
