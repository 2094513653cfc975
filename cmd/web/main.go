package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phonekart-backend/api"
	"phonekart-backend/api/handlers"
	"phonekart-backend/internal/config"
	"phonekart-backend/internal/gateway"
	"phonekart-backend/internal/logger"
	"phonekart-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("phonekart-backend", cfg.LogLevel)

	client, err := store.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	stores := store.NewMongo(client.Database(cfg.MongoDBName))
	razorpay := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpaySecret)
	secret := []byte(cfg.JWTSecret)

	h := &api.Handlers{
		Users:     handlers.NewUserHandler(stores.Users, secret, log),
		Products:  handlers.NewProductHandler(stores.Products, log),
		Brands:    handlers.NewBrandHandler(stores.Brands, log),
		Carts:     handlers.NewCartHandler(stores.Users, stores.Products, log),
		Wishlists: handlers.NewWishlistHandler(stores.Users, stores.Products, log),
		Payments:  handlers.NewPaymentHandler(razorpay, stores.Orders, stores.Users, cfg.RazorpayKeyID, cfg.RazorpaySecret, log),
		Contacts:  handlers.NewContactHandler(stores.Contacts, log),
	}

	router := api.NewRouter(h, secret, cfg.CORSOrigins, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
