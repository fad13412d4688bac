package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"warung-pos/internal/config"
	"warung-pos/internal/db"
	"warung-pos/internal/feed"
	"warung-pos/internal/httpserver"
	categoryrepo "warung-pos/internal/repository/category"
	productrepo "warung-pos/internal/repository/product"
	purchaserepo "warung-pos/internal/repository/purchase"
	salerepo "warung-pos/internal/repository/sale"
	settingsrepo "warung-pos/internal/repository/settings"
	toppingrepo "warung-pos/internal/repository/topping"
	userrepo "warung-pos/internal/repository/user"
	authsvc "warung-pos/internal/service/auth"
	catalogsvc "warung-pos/internal/service/catalog"
	purchasesvc "warung-pos/internal/service/purchase"
	reportsvc "warung-pos/internal/service/report"
	salesvc "warung-pos/internal/service/sale"
	settingssvc "warung-pos/internal/service/settings"
	usersvc "warung-pos/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	toppingRepo := toppingrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	saleRepo := salerepo.NewPostgres(dbpool, logger)
	purchaseRepo := purchaserepo.NewPostgres(dbpool)
	settingsRepo := settingsrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.SessionTTL)
	catalogService := catalogsvc.New(productRepo, toppingRepo, categoryRepo)
	saleService := salesvc.New(saleRepo)
	purchaseService := purchasesvc.New(purchaseRepo)
	settingsService := settingssvc.New(settingsRepo, userRepo)
	reportService := reportsvc.New(saleRepo, purchaseRepo, settingsService)
	userService := usersvc.New(userRepo)

	catalogFeed := feed.NewCatalogWatcher(catalogService, cfg.FeedInterval, logger)
	go catalogFeed.Run(ctx)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:     authService,
		CatalogSvc:  catalogService,
		SaleSvc:     saleService,
		PurchaseSvc: purchaseService,
		ReportSvc:   reportService,
		SettingsSvc: settingsService,
		UserSvc:     userService,
		CatalogFeed: catalogFeed,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
