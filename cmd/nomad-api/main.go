// README: Entry point; loads config, runs migrations, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nomad/internal/ai"
	"nomad/internal/config"
	httptransport "nomad/internal/http"
	"nomad/internal/infra"
	"nomad/internal/maps"
	"nomad/internal/modules/bookmark"
	"nomad/internal/modules/destination"
	"nomad/internal/modules/favorite"
	"nomad/internal/modules/hotel"
	"nomad/internal/modules/restaurant"
	"nomad/internal/modules/trip"
	"nomad/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := infra.Migrate(cfg.DB.DSN); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	gen, err := ai.NewGeminiGenerator(ctx, cfg.AI.GeminiKey, cfg.AI.Model, cfg.AI.RequestTimeout, cfg.AI.MaxRetries)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gen.Close()

	mapsSvc, err := maps.NewService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	userSvc := user.NewService(user.NewStore(dbPool))
	tripSvc := trip.NewService(trip.NewStore(dbPool), gen, mapsSvc, cfg.Trip.BudgetTolerance)
	hotelSvc := hotel.NewService(hotel.NewStore(dbPool), gen, mapsSvc)
	restaurantSvc := restaurant.NewService(restaurant.NewStore(dbPool), gen, mapsSvc)
	favoriteSvc := favorite.NewService(favorite.NewStore(dbPool))
	bookmarkSvc := bookmark.NewService(bookmark.NewStore(dbPool))
	destinationSvc := destination.NewService(gen, destination.NewRedisCache(redisClient), cfg.Destination.CacheTTL)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Users:        userSvc,
		Trips:        tripSvc,
		Hotels:       hotelSvc,
		Restaurants:  restaurantSvc,
		Favorites:    favoriteSvc,
		Bookmarks:    bookmarkSvc,
		Destinations: destinationSvc,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
