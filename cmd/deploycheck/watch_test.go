package deploycheck

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/deploycheck"
	"github.com/smartcontractkit/deploycheck/internal/metrics"
)

func TestWatcher_ListenFailure(t *testing.T) {
	t.Parallel()

	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	w := &watcher{
		addr:     taken.Addr().String(),
		interval: time.Hour,
		recorder: metrics.NewRecorder(),
		check: func(context.Context) (*deploycheck.Report, error) {
			t.Error("check ran without a metrics listener")
			return deploycheck.NewReport(), nil
		},
	}

	err = w.run(context.Background())
	require.ErrorContains(t, err, "failed to listen for metrics on "+taken.Addr().String())
}

func TestWatcher_ServesUntilCancelled(t *testing.T) {
	t.Parallel()

	// Reserve a free port for the watcher.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	checked := make(chan struct{}, 1)
	w := &watcher{
		addr:     addr,
		interval: time.Hour,
		recorder: metrics.NewRecorder(),
		check: func(context.Context) (*deploycheck.Report, error) {
			select {
			case checked <- struct{}{}:
			default:
			}

			return deploycheck.NewReport(), nil
		},
	}

	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()

	<-checked
	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/metrics") //nolint:noctx // test request
		if err != nil {
			return false
		}
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)

		return err == nil && res.StatusCode == http.StatusOK && len(body) > 0
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_CheckFailure(t *testing.T) {
	t.Parallel()

	w := &watcher{
		addr:     "127.0.0.1:0",
		interval: time.Hour,
		recorder: metrics.NewRecorder(),
		check: func(context.Context) (*deploycheck.Report, error) {
			return nil, errors.New("boom")
		},
	}

	assert.EqualError(t, w.run(context.Background()), "boom")
}
