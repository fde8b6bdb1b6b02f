package command

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tabsample/internal/bench"
	"github.com/yndnr/tabsample/internal/config"
	"github.com/yndnr/tabsample/internal/infra/confloader"
	"github.com/yndnr/tabsample/internal/infra/shutdown"
	"github.com/yndnr/tabsample/internal/server/httpserver"
	"github.com/yndnr/tabsample/internal/tabledoc"
	"github.com/yndnr/tabsample/internal/telemetry/logger"
	"github.com/yndnr/tabsample/internal/telemetry/metric"
	"github.com/yndnr/tabsample/pkg/sampler"
)

// ServeCommand returns the serve command.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Sample continuously at a fixed rate and expose Prometheus metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Listen address for /metrics",
			},
			&cli.Float64Flag{
				Name:  "rate",
				Usage: "Samples per second",
			},
			&cli.IntFlag{
				Name:  "burst",
				Usage: "Maximum burst of samples",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "Fixture size",
			},
			&cli.StringFlag{
				Name:  "shape",
				Usage: "Fixture shape: dense, strings, mixed, holey",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Sample a YAML table document instead of a fixture",
			},
		},
		Action: serveAction,
	}
}

func serveOverrides(c *cli.Context) map[string]any {
	o := make(map[string]any)
	if c.IsSet("metrics-addr") {
		o["serve.metrics_addr"] = c.String("metrics-addr")
	}
	if c.IsSet("rate") {
		o["serve.rate"] = c.Float64("rate")
	}
	if c.IsSet("burst") {
		o["serve.burst"] = c.Int("burst")
	}
	if c.IsSet("size") {
		o["serve.size"] = c.Int("size")
	}
	if c.IsSet("shape") {
		o["serve.shape"] = c.String("shape")
	}
	return o
}

func serveAction(c *cli.Context) error {
	e, err := setup(c, serveOverrides(c))
	if err != nil {
		return err
	}
	cfg := e.cfg

	ctx := logger.WithRunID(logger.WithLogger(c.Context, e.log), ulid.Make().String())
	log := logger.L(ctx)

	container, name, err := serveContainer(c.String("file"), cfg.Serve)
	if err != nil {
		return err
	}

	registry := metric.NewRegistry()
	if err := registry.Register(metric.NewContainerCollector(name, container, cfg.Sampler.Classifier())); err != nil {
		return fmt.Errorf("register container collector: %w", err)
	}

	loop := bench.NewLoop(container, newObservedSampler(cfg.Sampler, registry), cfg.Serve.Rate, cfg.Serve.Burst)

	ln, err := net.Listen("tcp", cfg.Serve.MetricsAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Serve.MetricsAddr, err)
	}
	srv := httpserver.New(cfg.Serve.MetricsAddr, httpserver.NewRouter(&httpserver.RouterConfig{
		Metrics: registry.Handler(),
		Ready:   loop.Ready,
		Logger:  log,
	}))

	fmt.Fprintf(e.out, "serving metrics on http://%s/metrics\n", ln.Addr())
	log.Info("serve started",
		"metrics_addr", ln.Addr().String(),
		"container", name,
		"config", e.loader.Path(),
	)

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()

	loopCtx, stopLoop := context.WithCancel(ctx)
	loopDone := make(chan error, 1)
	go func() {
		loopDone <- loop.Run(loopCtx)
	}()

	handler := shutdown.NewHandler(cfg.Serve.ShutdownTimeout)
	reload := reloader(ctx, e.loader, loop, registry)
	handler.OnReload(reload)

	if path := e.loader.Path(); path != "" {
		watcher, err := confloader.NewWatcher()
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else if err := watcher.Watch(path); err != nil {
			log.Warn("config watcher unavailable", "error", err)
			watcher.Stop()
		} else {
			watcher.OnChange(func(string) { reload() })
			watcher.StartAsync(ctx)
			handler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	// Hooks run in reverse: stop the loop first, then the server.
	handler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down metrics server")
		return srv.Shutdown(ctx)
	})
	handler.OnShutdown(func(ctx context.Context) error {
		stopLoop()
		select {
		case err := <-loopDone:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	// A loop failure ends serve the same way a signal does.
	go func() {
		select {
		case err := <-loopDone:
			if err != nil {
				log.Error("sampling loop failed", "error", err)
			}
			loopDone <- err
			handler.Trigger()
		case <-handler.Done():
		}
	}()

	err = handler.Wait(ctx)
	log.Info("serve stopped", "samples", loop.Samples(), "errors", loop.Errors())
	return err
}

// serveContainer builds the container serve samples from.
func serveContainer(file string, cfg config.ServeSection) (bench.Fixture, string, error) {
	if file != "" {
		doc, err := tabledoc.LoadFile(file)
		if err != nil {
			return nil, "", err
		}
		return doc, file, nil
	}
	f, err := bench.Build(cfg.Shape, cfg.Size)
	if err != nil {
		return nil, "", err
	}
	return f, fmt.Sprintf("%s/%d", cfg.Shape, cfg.Size), nil
}

func newObservedSampler(cfg config.SamplerSection, registry *metric.Registry) *sampler.Sampler {
	opts := append(cfg.Options(), sampler.WithObserver(registry))
	return sampler.New(opts...)
}

// reloader returns a function that re-reads the configuration and applies
// the settings that can change at runtime: log level, pacing and the
// sampler settings. Other changes need a restart.
func reloader(ctx context.Context, loader *config.Loader, loop *bench.Loop, registry *metric.Registry) func() {
	var mu sync.Mutex
	return func() {
		mu.Lock()
		defer mu.Unlock()

		log := logger.L(ctx)
		cfg, err := loader.Reload()
		if err != nil {
			log.Warn("config reload rejected", "error", err)
			return
		}

		logger.SetLevel(cfg.Log.Level)
		loop.SetRate(cfg.Serve.Rate, cfg.Serve.Burst)
		loop.SetSampler(newObservedSampler(cfg.Sampler, registry))

		log.Info("config reloaded",
			"log_level", cfg.Log.Level,
			"rate", cfg.Serve.Rate,
			"burst", cfg.Serve.Burst,
			"large_threshold", cfg.Sampler.LargeThreshold,
			"fast_path", cfg.Sampler.FastPath,
		)
	}
}
