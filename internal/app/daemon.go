package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DaemonOptions configuration for a daemon session.
type DaemonOptions struct {
	// Every is the interval between pipeline runs.
	Every time.Duration

	// Listen is the metrics listen address.
	Listen string

	// Run is applied to every scheduled pipeline run.
	Run RunOptions
}

// Daemon runs the pipeline on a fixed interval, serving run metrics, until
// the context is canceled.
func (a *App) Daemon(ctx context.Context, opts DaemonOptions) error {
	return NewDaemon(a, a.logger).Run(ctx, opts)
}

// Daemon runs the pipeline on a fixed interval and serves run metrics.
type Daemon struct {
	app    *App
	logger ports.Logger

	registry    *prometheus.Registry
	runs        prometheus.Counter
	failures    prometheus.Counter
	rebuilt     prometheus.Counter
	lastPublish prometheus.Gauge
}

// NewDaemon creates a new Daemon around the App.
func NewDaemon(app *App, log ports.Logger) *Daemon {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "packrat_runs_total",
		Help: "Pipeline runs started by the daemon",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "packrat_run_failures_total",
		Help: "Pipeline runs that ended in an error",
	})
	rebuilt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "packrat_packages_rebuilt_total",
		Help: "Packages rebuilt across all runs",
	})
	lastPublish := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "packrat_last_publish_timestamp_seconds",
		Help: "Unix time of the last run that republished the archive",
	})
	registry.MustRegister(runs, failures, rebuilt, lastPublish)

	return &Daemon{
		app:         app,
		logger:      log,
		registry:    registry,
		runs:        runs,
		failures:    failures,
		rebuilt:     rebuilt,
		lastPublish: lastPublish,
	}
}

// Handler returns the metrics endpoint handler.
func (d *Daemon) Handler() http.Handler {
	return promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{})
}

// Run schedules pipeline runs at the configured interval and serves /metrics
// until the context is canceled. The first run starts immediately.
func (d *Daemon) Run(ctx context.Context, opts DaemonOptions) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return zerr.Wrap(err, "failed to create scheduler")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(opts.Every),
		gocron.NewTask(d.runOnce, ctx, opts.Run),
		gocron.WithName("packrat-run"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return zerr.Wrap(err, "failed to schedule pipeline runs")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", d.Handler())
	server := &http.Server{
		Addr:        opts.Listen,
		Handler:     mux,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	scheduler.Start()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return zerr.Wrap(serveErr, "metrics server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		if shutdownErr := scheduler.Shutdown(); shutdownErr != nil {
			d.logger.Error(zerr.Wrap(shutdownErr, "failed to stop scheduler"))
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// runOnce executes one scheduled pipeline run and folds its outcome into the
// metrics. Failures are logged and counted; the daemon keeps going.
func (d *Daemon) runOnce(ctx context.Context, opts RunOptions) {
	d.runs.Inc()

	record, err := d.app.Run(ctx, opts)
	if err != nil {
		d.failures.Inc()
		d.logger.Error(err)
		return
	}

	for _, pkg := range record.Packages {
		if pkg.Rebuilt {
			d.rebuilt.Inc()
		}
	}
	if record.Published {
		d.lastPublish.Set(float64(record.Finished.Unix()))
	}
}
