package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"attest/internal/assessment"
	assessmetrics "attest/internal/assessment/metrics"
	"attest/internal/catalog"
	"attest/internal/extract"
	"attest/internal/judge"
	"attest/internal/platform/config"
	"attest/internal/platform/httpserver"
	"attest/internal/platform/logger"
	httptransport "attest/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	cat := catalog.Load()

	// A misconfigured judge must not kill the process: health checks stay
	// reachable and the assessment endpoint reports the configuration error.
	var assessor httptransport.Assessor
	judgeClient, configErr := judge.New(cfg.Judge)
	if configErr != nil {
		log.Error("judge configuration invalid, assessments disabled", "error", configErr)
	} else {
		svc, err := assessment.New(cat, judgeClient,
			assessment.WithLogger(log),
			assessment.WithMetrics(assessmetrics.New()),
		)
		if err != nil {
			log.Error("failed to build assessment service", "error", err)
			os.Exit(1)
		}
		assessor = svc
	}

	handler := httptransport.New(cfg, assessor, extract.NewPDF(), configErr, log)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting attest", "addr", cfg.Addr, "controls", cat.Len())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
