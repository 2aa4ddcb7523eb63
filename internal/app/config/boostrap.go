package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WarmerStop if set will be called during Shutdown to gracefully stop the
	// catalog cache warmer
	WarmerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WarmerStop != nil {
		b.WarmerStop()
		log.Println("Successfully stopped cache warmer")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	// Sync fails on stdout sinks, flush what we can and move on.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
