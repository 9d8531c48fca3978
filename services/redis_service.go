package services

import (
	"context"
	"encoding/json"
	"hrms-http-service/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	DeletePattern(pattern string) error
	BlacklistToken(jti string, ttl time.Duration) error
	IsTokenBlacklisted(jti string) (bool, error)
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// DeletePattern deletes all keys matching a glob pattern
func (s *RedisService) DeletePattern(pattern string) error {
	keys, err := s.Client.Keys(s.Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(s.Ctx, keys...).Err()
}

// BlacklistToken marks a token jti as logged out until its natural expiry
func (s *RedisService) BlacklistToken(jti string, ttl time.Duration) error {
	return s.Client.Set(s.Ctx, "auth:blacklist:"+jti, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token jti has been logged out
func (s *RedisService) IsTokenBlacklisted(jti string) (bool, error) {
	n, err := s.Client.Exists(s.Ctx, "auth:blacklist:"+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
