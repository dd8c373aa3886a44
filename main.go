package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"food-swipe-api/config"
	"food-swipe-api/handlers"
	"food-swipe-api/routes"
	"food-swipe-api/store"
	"food-swipe-api/utils/log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func main() {
	config.LoadDotEnvs()

	cfg, err := config.Load()
	if err != nil {
		log.Log.WithError(err).Fatal("failed to load config")
	}
	log.InitLogger(cfg.LogLevel, cfg.IsProduction())

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	activity, err := newActivityStore(cfg)
	if err != nil {
		log.Log.WithError(err).Fatal("failed to set up activity store")
	}

	ctx := context.Background()
	docs := store.NewFileRepository(cfg.DataFile)
	st, err := store.New(ctx, docs, activity)
	if err != nil {
		log.Log.WithError(err).WithField("data_file", docs.Path()).Fatal("failed to load catalog")
	}
	log.Log.WithField("data_file", docs.Path()).
		WithField("restaurants", len(st.Restaurants())).
		WithField("orders", len(st.Orders())).
		Info("catalog loaded")

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOrigins(); len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r, handlers.New(st))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Log.Infof("server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Log.WithError(err).Error("server shutdown")
	}
	log.Log.Info("server stopped")
}

func newActivityStore(cfg *config.Config) (store.ActivityStore, error) {
	if cfg.ActivityDriver == config.DriverMemory {
		return store.NewMemoryActivityStore(), nil
	}
	db, err := config.OpenActivityDB(cfg)
	if err != nil {
		return nil, err
	}
	log.Log.WithField("driver", cfg.ActivityDriver).Info("activity database connected")
	return store.NewGormActivityStore(db)
}
