// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"caddie/internal/ai"
	"caddie/internal/config"
	httptransport "caddie/internal/http"
	"caddie/internal/infra"
	"caddie/internal/maps"
	"caddie/internal/modules/dialogue"
	"caddie/internal/modules/profile"
	"caddie/internal/modules/stores"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := infra.NewLogger(cfg.Log.Level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	geocoder, err := maps.NewGeocodingService(cfg.Google.MapsKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	cachedGeocoder := maps.NewGeocodeCache(redisClient, geocoder)

	searcher, err := maps.NewPlacesService(cfg.Google.MapsKey)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	gemini, err := ai.NewGeminiProvider(ctx, cfg.Google.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gemini.Close()

	profileStore := profile.NewStore(dbPool)
	if err := profileStore.EnsureSchema(ctx); err != nil {
		log.Fatalf("profile schema: %v", err)
	}
	profileSvc := profile.NewService(profileStore)

	storesSvc := stores.NewService(cachedGeocoder, searcher, logger)

	engine := dialogue.NewService(storesSvc, gemini, profileSvc, logger)
	sessions := dialogue.NewSessionStore(cfg.Sessions.TTL)

	handler := httptransport.NewRouter(engine, sessions, profileSvc, logger)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
