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

	"cleanair-backend/internal/cache"
	"cleanair-backend/internal/config"
	"cleanair-backend/internal/handlers"
	"cleanair-backend/internal/middleware"
	"cleanair-backend/internal/upstream"
	"cleanair-backend/internal/validation"
	"cleanair-backend/internal/wizard"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	dispatch := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamSecret)
	if dispatch == nil {
		logger.Warn("dispatch upstream disabled; availability and booking will fail")
	} else {
		logger.Info("dispatch upstream enabled", slog.String("base_url", cfg.UpstreamBaseURL))
	}

	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	sessions := wizard.NewStore(sessionTTL)
	go func() {
		ticker := time.NewTicker(sessionTTL / 4)
		defer ticker.Stop()
		for now := range ticker.C {
			if removed := sessions.Sweep(now); removed > 0 {
				logger.Info("sessions swept", slog.Int("removed", removed))
			}
		}
	}()

	server := &handlers.Server{
		Cfg:      cfg,
		Val:      validation.New(),
		Log:      logger,
		Cache:    cacheStore,
		Upstream: dispatch,
		Sessions: sessions,
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.FrontendOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	bookingsLimiter := middleware.NewRateLimiter(cfg.RateLimitBookings, window)
	availabilityLimiter := middleware.NewRateLimiter(cfg.RateLimitAvailability, window)

	r.Route("/api", func(api chi.Router) {
		api.Get("/catalog/services", server.GetCatalogServices)
		api.Get("/catalog/extras", server.GetCatalogExtras)
		api.Get("/catalog/options", server.GetCatalogOptions)

		api.Post("/quote", server.PostQuote)

		api.Post("/sessions", server.CreateSession)
		api.Get("/sessions/{id}", server.GetSession)
		api.Put("/sessions/{id}/selection", server.UpdateSelection)
		api.With(availabilityLimiter.Middleware).Post("/sessions/{id}/availability", server.FetchAvailability)
		api.Delete("/sessions/{id}/availability", server.ResetAvailability)
		api.Post("/sessions/{id}/slot", server.SelectSlot)
		api.With(bookingsLimiter.Middleware).Post("/sessions/{id}/book", server.SubmitBooking)
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
