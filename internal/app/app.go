// Package app wires the shared dependencies of the command line clients.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	"github.com/uber-go/tally/v4/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/abhishek622/moviereviews/auth/pkg/session"
	"github.com/abhishek622/moviereviews/internal/config"
	"github.com/abhishek622/moviereviews/internal/httputil"
	"github.com/abhishek622/moviereviews/internal/logging"
	"github.com/abhishek622/moviereviews/pkg/tracing"
)

// App holds the dependencies every command needs.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Client  *httputil.Client
	Session *session.Session

	component string
	closers   []io.Closer
}

// Setup loads the configuration at path and builds the logger, tracer,
// backend client and credential session for the named component.
func Setup(ctx context.Context, fs afero.Fs, path string, component string) (*App, error) {
	cfg, err := config.Load(fs, path)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Logger: logger.With(zap.String("component", component)), component: component}

	if cfg.Jaeger.Host != "" {
		tracer, closer, err := tracing.NewTracer(component, cfg.Jaeger.Host, cfg.Jaeger.Port, a.Logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		opentracing.SetGlobalTracer(tracer)
		a.closers = append(a.closers, closer)
		a.Logger.Debug("Jaeger tracer initialized", zap.String("agent", cfg.Jaeger.Host+":"+cfg.Jaeger.Port))
	}

	registry, err := cfg.Registry()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init service registry: %w", err)
	}
	opts := []httputil.Option{
		httputil.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		httputil.WithLogger(a.Logger),
	}
	if cfg.API.RateLimit > 0 {
		opts = append(opts, httputil.WithLimiter(rate.NewLimiter(rate.Limit(cfg.API.RateLimit), max(cfg.API.Burst, 1))))
	}
	a.Client = httputil.New(registry, cfg.API.ServiceName, opts...)

	s, closer, err := session.Open(ctx, cfg.Session.Path, a.Logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Session = s
	a.closers = append(a.closers, closer)
	return a, nil
}

// MetricsScope returns a scope reported through Prometheus when a metrics
// port is configured, and a no-op scope otherwise.
func (a *App) MetricsScope() tally.Scope {
	port := a.Config.Prometheus.MetricsPort
	if port == 0 {
		return tally.NoopScope
	}
	reporter := prometheus.NewReporter(prometheus.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags:           map[string]string{"component": a.component},
		CachedReporter: reporter,
		Separator:      prometheus.DefaultSeparator,
	}, time.Second)
	a.closers = append(a.closers, closer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", reporter.HTTPHandler())
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("Failed to start the metrics handler", zap.Error(err))
		}
	}()
	a.closers = append(a.closers, srv)
	return scope
}

// Close releases everything Setup and MetricsScope acquired, newest first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.Logger.Warn("Failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil
	_ = a.Logger.Sync()
}
