package destination

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"nomad/internal/ai"
)

var ErrBadRequest = errors.New("city and country are required")

type Service struct {
	gen   ai.TextGenerator
	cache Cache
	ttl   time.Duration
}

func NewService(gen ai.TextGenerator, cache Cache, ttl time.Duration) *Service {
	return &Service{gen: gen, cache: cache, ttl: ttl}
}

// Insight returns destination background for a city. Cached responses are
// served as-is; on a miss the model is asked once and the parsed result is
// written back with the configured TTL.
func (s *Service) Insight(ctx context.Context, city, country string) (*ai.DestinationInsight, error) {
	if city == "" || country == "" {
		return nil, ErrBadRequest
	}

	key := cacheKey(city, country)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var insight ai.DestinationInsight
		if err := json.Unmarshal([]byte(cached), &insight); err == nil {
			return &insight, nil
		}
		// Unreadable cache entry; fall through and regenerate.
		slog.Warn("dropping corrupt destination cache entry", "key", key)
	} else if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("destination cache read failed", "key", key, "error", err)
	}

	raw, err := s.gen.Generate(ctx, ai.BuildDestinationPrompt(city, country), ai.GenParams{
		Temperature: 0.6,
		MaxTokens:   4000,
	})
	if err != nil {
		return nil, err
	}
	insight, err := ai.ParseDestination(raw)
	if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(insight); err == nil {
		if err := s.cache.Set(ctx, key, string(buf), s.ttl); err != nil {
			slog.Warn("destination cache write failed", "key", key, "error", err)
		}
	}
	return insight, nil
}
