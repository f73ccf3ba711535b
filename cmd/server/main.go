package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/config"
	"github.com/mbodj/clinivet/internal/repository"
	"github.com/mbodj/clinivet/internal/repository/memory"
	"github.com/mbodj/clinivet/internal/repository/mongodb"
	"github.com/mbodj/clinivet/internal/repository/sheets"
	"github.com/mbodj/clinivet/internal/scheduler"
	"github.com/mbodj/clinivet/internal/server/handlers"
	"github.com/mbodj/clinivet/internal/server/router"
	alertssvc "github.com/mbodj/clinivet/internal/service/alerts"
	consultationsvc "github.com/mbodj/clinivet/internal/service/consultations"
	inventorysvc "github.com/mbodj/clinivet/internal/service/inventory"
	registrysvc "github.com/mbodj/clinivet/internal/service/registry"
	reportingsvc "github.com/mbodj/clinivet/internal/service/reporting"
	salessvc "github.com/mbodj/clinivet/internal/service/sales"
	whatsappclient "github.com/mbodj/clinivet/pkg/clients/whatsapp"
	"github.com/mbodj/clinivet/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var store repository.Store
	if cfg.MongoDB.URI != "" {
		mongoStore, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
		}
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoStore
	} else {
		baseLogger.Warn("MONGODB_URI not set, using in-memory store; data is lost on restart")
		store = memory.New()
	}

	var exporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
	} else {
		baseLogger.Info("sheets ledger export disabled")
	}

	inventorySvc := inventorysvc.NewService(store, cfg.Inventory.LowStockThreshold, baseLogger.Named("svc.inventory"))
	salesSvc := salessvc.NewService(store, inventorySvc, baseLogger.Named("svc.sales"))
	consultationSvc := consultationsvc.NewService(store, inventorySvc, baseLogger.Named("svc.consultations"))
	registrySvc := registrysvc.NewService(store, store, baseLogger.Named("svc.registry"))
	reportingSvc := reportingsvc.NewService(inventorySvc, salesSvc, exporter, baseLogger.Named("svc.reporting"))

	var whatsClient whatsappclient.Client
	if cfg.WhatsApp.AccessToken != "" {
		whatsClient = whatsappclient.NewClient(whatsappclient.Options{
			AccessToken:   cfg.WhatsApp.AccessToken,
			PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
			BaseURL:       cfg.WhatsApp.BaseURL,
			APIVersion:    cfg.WhatsApp.APIVersion,
		})
		baseLogger.Info("whatsapp alerts enabled")
	} else {
		baseLogger.Warn("whatsapp token missing, low-stock alerts disabled")
	}
	alertSvc := alertssvc.NewService(whatsClient, cfg.WhatsApp.OwnerPhone, baseLogger.Named("svc.alerts"))

	stockHandler := handlers.NewStockHandler(inventorySvc, baseLogger.Named("handlers.stock"))
	salesHandler := handlers.NewSalesHandler(salesSvc, baseLogger.Named("handlers.sales"))
	consultationHandler := handlers.NewConsultationHandler(consultationSvc, baseLogger.Named("handlers.consultations"))
	registryHandler := handlers.NewRegistryHandler(registrySvc, baseLogger.Named("handlers.registry"))
	engine := router.New(stockHandler, salesHandler, consultationHandler, registryHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, alertSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
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
