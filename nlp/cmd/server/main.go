package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/oarkflow/summarise/nlp/config"
	"github.com/oarkflow/summarise/nlp/engine"
	"github.com/oarkflow/summarise/nlp/logging"
	"github.com/oarkflow/summarise/nlp/metrics"
	"github.com/oarkflow/summarise/nlp/server"
)

func main() {
	cfgPath := flag.String("config", "", "YAML or JSON config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("reading .env", slog.String("err", err.Error()))
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("load config", slog.String("err", err.Error()))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	log, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		slog.Error("init logging", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer closer.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	e, err := engine.New(cfg, log, engine.WithMetrics(metrics.New(reg)))
	if err != nil {
		log.Error("init engine", slog.String("err", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := server.New(e, reg, cfg.Server, log)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("addr", cfg.Server.Addr))
		errCh <- app.Listen(cfg.Server.Addr)
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down")
		_ = app.Shutdown()
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil {
		log.Error("server stopped", slog.String("err", err.Error()))
		closer.Close()
		os.Exit(1)
	}
}
