package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/config"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/scheduler"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/server/handlers"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/server/router"
	assistantsvc "github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/assistant"
	reportingsvc "github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/reporting"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/service/stock"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/pkg/clients/gemini"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	sessions := memory.NewStore()

	engine := stock.NewEngine(cfg.Inventory, baseLogger.Named("svc.stock"))
	reportingSvc := reportingsvc.NewService(baseLogger.Named("svc.reporting"))

	var aiClient gemini.Client
	if cfg.Assistant.GeminiKey != "" {
		aiClient = gemini.NewClient(cfg.Assistant.GeminiKey, cfg.Assistant.BaseURL, cfg.Assistant.Model)
		baseLogger.Info("gemini assistant client enabled", zap.String("model", cfg.Assistant.Model))
	} else {
		baseLogger.Warn("gemini api key missing, assistant will answer with a fallback message")
	}
	assistantSvc := assistantsvc.NewService(aiClient, baseLogger.Named("svc.assistant"))

	engineRouter := router.New(router.Handlers{
		Session:   handlers.NewSessionHandler(sessions, baseLogger.Named("handlers.session")),
		Inventory: handlers.NewInventoryHandler(engine, baseLogger.Named("handlers.inventory")),
		Financial: handlers.NewFinancialHandler(engine, baseLogger.Named("handlers.financial")),
		Assistant: handlers.NewAssistantHandler(assistantSvc, baseLogger.Named("handlers.assistant")),
		Reports:   handlers.NewReportsHandler(engine, reportingSvc, baseLogger.Named("handlers.reports")),
	}, sessions, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Session, sessions, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engineRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
