package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"autopecas-web/pkg/config"
)

// Store adapta um cliente Redis à interface fiber.Storage, para as sessões de
// login sobreviverem a restart do processo quando SESSION_STORE=redis.
type Store struct {
	client *redis.Client
}

// New conecta ao Redis e valida a conectividade com um ping com timeout.
func New(ctx context.Context, cfg config.SessionConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client}, nil
}

// Get devolve o valor da chave, ou (nil, nil) quando ausente/expirada.
func (s *Store) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

// Set grava o valor com a expiração dada (zero = sem expiração).
func (s *Store) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp).Err()
}

// Delete remove a chave. Chave inexistente não é erro.
func (s *Store) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

// Reset apaga todas as chaves do banco de sessões.
func (s *Store) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

// Close encerra o cliente.
func (s *Store) Close() error {
	return s.client.Close()
}
