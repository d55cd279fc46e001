package deploycheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/deploycheck"
	"github.com/smartcontractkit/deploycheck/inspectors"
	"github.com/smartcontractkit/deploycheck/internal/metrics"
	"github.com/smartcontractkit/deploycheck/sdk"
)

func buildWatchCmd(root *rootOptions) *cobra.Command {
	var (
		interval       time.Duration
		metricsAddr    string
		bytecodePolicy string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check the deployment periodically and export the results as Prometheus metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			env, err := loadEnvironment(root, bytecodePolicy)
			if err != nil {
				return err
			}

			readers, connectErrs := env.connect(ctx, root.envFile)
			defer closeAll(readers)

			w := &watcher{
				addr:     metricsAddr,
				interval: interval,
				recorder: metrics.NewRecorder(),
				check: func(ctx context.Context) (*deploycheck.Report, error) {
					return evaluate(ctx, env.assembly, asInspectors(readers), connectErrs, env.checker,
						inspectors.WithReadTimeout(root.readTimeout))
				},
			}

			return w.run(ctx)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 5*time.Minute, "Time between checks")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Address to serve /metrics on")
	cmd.Flags().StringVar(&bytecodePolicy, "bytecode-policy", "", "Bytecode comparison: exact or ignore-metadata (defaults to the config)")

	return cmd
}

// watcher runs check every interval and serves the recorded results on addr until its context
// is cancelled or the metrics server fails.
type watcher struct {
	addr     string
	interval time.Duration
	recorder *metrics.Recorder
	check    func(ctx context.Context) (*deploycheck.Report, error)
}

func (w *watcher) run(ctx context.Context) error {
	lggr := sdk.LoggerFrom(ctx)

	ln, err := net.Listen("tcp", w.addr)
	if err != nil {
		return fmt.Errorf("failed to listen for metrics on %s: %w", w.addr, err)
	}

	server := &http.Server{
		Handler:           metricsMux(w.recorder),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lggr.Infof("serving metrics on %s", ln.Addr())
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server failed: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return w.loop(gctx)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}

	return err
}

// loop returns the context error once ctx is done.
func (w *watcher) loop(ctx context.Context) error {
	lggr := sdk.LoggerFrom(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		report, err := w.check(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return err
		}
		w.recorder.Record(report, time.Now())
		lggr.Infof("check complete: %d violations, %d chain errors", report.Count(), len(report.Errors))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func metricsMux(recorder *metrics.Recorder) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())

	return mux
}
