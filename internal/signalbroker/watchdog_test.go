// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type forced struct {
	m    sync.Mutex
	sigs []os.Signal
}

func (f *forced) force(s os.Signal) {
	f.m.Lock()
	defer f.m.Unlock()

	f.sigs = append(f.sigs, s)
}

func (f *forced) get() []os.Signal {
	f.m.Lock()
	defer f.m.Unlock()

	return append([]os.Signal(nil), f.sigs...)
}

func TestWatch_FirstSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 1)
	f := &forced{}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel, f.force)
	}()

	sigCh <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context should be cancelled after the first signal")
	}

	close(sigCh)
	wg.Wait()
	assert.Empty(t, f.get())
}

func TestWatch_SecondSignalForces(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	f := &forced{}

	sigCh <- syscall.SIGTERM
	sigCh <- syscall.SIGTERM

	done := make(chan struct{})

	go func() {
		defer close(done)
		Watch(ctx, sigCh, cancel, f.force)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch should return after forcing")
	}

	require.Equal(t, []os.Signal{syscall.SIGTERM}, f.get())
}

func TestWatch_DifferentSignalsDoNotForce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	f := &forced{}

	sigCh <- syscall.SIGINT
	sigCh <- syscall.SIGTERM
	close(sigCh)

	Watch(ctx, sigCh, cancel, f.force)

	assert.Empty(t, f.get())
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
