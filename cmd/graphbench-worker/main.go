// Command graphbench-worker serves one graph partition over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/api"
	"github.com/persistorai/graphbench/internal/config"
	"github.com/persistorai/graphbench/internal/graph"
	"github.com/persistorai/graphbench/internal/report"
	"github.com/persistorai/graphbench/internal/service"
	"github.com/persistorai/graphbench/internal/tracing"
	"github.com/persistorai/graphbench/internal/ws"
)

const shutdownTimeout = 15 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("worker exited")
	}
}

func run(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	log.SetLevel(level)

	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		Exporter:    cfg.TraceExporter,
		ServiceName: "graphbench-worker",
		Version:     config.Version,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.WithError(err).Warn("flushing traces")
		}
	}()

	var storeOpts []graph.Option
	if cfg.WeightSeed != 0 {
		storeOpts = append(storeOpts, graph.WithSeed(cfg.WeightSeed))
	}

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	worker := service.NewWorker(
		graph.NewStore(storeOpts...),
		report.NewFileStore(cfg.ReportDir, cfg.Port),
		hub,
		log,
		service.Options{
			ID:        cfg.Port,
			PoolWidth: cfg.PoolWidth,
			MaxIter:   cfg.PageRankMaxIter,
			Damping:   cfg.PageRankDamping,
		},
	)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(ctx, &api.RouterDeps{
			Log:          log,
			Worker:       worker,
			Hub:          hub,
			CORSOrigins:  cfg.CORSOrigins,
			Version:      config.Version,
			ReportDir:    cfg.ReportDir,
			MaxBodyBytes: cfg.MaxBodyBytes,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":       cfg.Addr(),
			"version":    config.Version,
			"pool_width": cfg.PoolWidth,
			"report_dir": cfg.ReportDir,
		}).Info("worker listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	hub.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
