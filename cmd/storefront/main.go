package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orion-jewellery/storefront/internal/auth"
	"github.com/orion-jewellery/storefront/internal/cart"
	"github.com/orion-jewellery/storefront/internal/catalog"
	"github.com/orion-jewellery/storefront/internal/checkout"
	"github.com/orion-jewellery/storefront/internal/config"
	h "github.com/orion-jewellery/storefront/internal/http"
	"github.com/orion-jewellery/storefront/internal/stylist"
	logx "github.com/orion-jewellery/storefront/pkg/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	logx.Init(cfg.Environment)

	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// Catalog: the commerce API when configured, the built-in collection
	// otherwise. Either way reads go through the Redis cache.
	var catalogClient catalog.Client
	if cfg.Catalog.BaseURL != "" {
		catalogClient = catalog.NewCommerceClient(
			cfg.Catalog.BaseURL,
			cfg.Catalog.ConsumerKey,
			cfg.Catalog.ConsumerSecret,
			cfg.Catalog.Timeout,
		)
		logx.Info().Str("base_url", cfg.Catalog.BaseURL).Msg("using commerce catalog")
	} else {
		catalogClient = catalog.NewFixtureClient()
		logx.Info().Msg("no catalog configured, using fixture collection")
	}
	products := catalog.NewService(catalogClient, catalog.NewRedisCache(rdb))

	carts := cart.NewStore()
	flows := checkout.NewStore()
	quizzes := stylist.NewStore(stylist.DefaultAnalyzeDelay)
	defer quizzes.Close()

	sessions := auth.NewService(auth.NewRedisSessionRepository(rdb), auth.AllowAllVerifier{})

	router := h.NewRouter(h.Handlers{
		Catalog:  h.NewCatalogHandler(products, cfg.RequestTimeout),
		Cart:     h.NewCartHandler(carts, products, cfg.RequestTimeout),
		Auth:     h.NewAuthHandler(sessions, cfg.RequestTimeout),
		Checkout: h.NewCheckoutHandler(flows, carts),
		Stylist:  h.NewStylistHandler(quizzes),
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logx.Info().Str("port", cfg.HTTPPort).Msg("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logx.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logx.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logx.Info().Msg("server exited")
}
