package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pos-service/internal/redisclient"
	"pos-service/internal/store"
	"pos-service/internal/util"

	"go.uber.org/zap"
)

const googleTranslateURL = "https://translation.googleapis.com/language/translate/v2"

// TranslationService resolves English menu text to Spanish through a
// read-through cache: translations table, then Redis, then the Google
// Translate API. API results are written back to both layers.
type TranslationService struct {
	store      *store.Store
	redis      *redisclient.Client
	apiKey     string
	cacheTTL   time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(store *store.Store, redis *redisclient.Client, apiKey string, cacheTTL time.Duration) *TranslationService {
	return &TranslationService{
		store:      store,
		redis:      redis,
		apiKey:     apiKey,
		cacheTTL:   cacheTTL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     util.GetLogger(),
	}
}

// Translate returns the Spanish translation of an English word or phrase.
func (s *TranslationService) Translate(ctx context.Context, english string) (string, error) {
	ctx, span := util.StartSpan(ctx, "TranslationService.Translate")
	defer span.End()

	if english == "" {
		return "", &ValidationError{Violations: []string{"en is required"}}
	}

	spanish, err := s.store.GetTranslation(ctx, english)
	if err != nil {
		return "", fmt.Errorf("translation lookup failed: %w", err)
	}
	if spanish != "" {
		util.TranslationCacheHits.Inc()
		return spanish, nil
	}

	if s.redis != nil {
		cached, ok, err := s.redis.GetTranslation(ctx, english)
		if err != nil {
			s.logger.Warn("Redis translation lookup failed", zap.Error(err))
		} else if ok {
			util.TranslationCacheHits.Inc()
			// Backfill the table so the next lookup skips Redis.
			if err := s.store.SaveTranslation(ctx, english, cached); err != nil {
				s.logger.Warn("Failed to backfill translation", zap.Error(err))
			}
			return cached, nil
		}
	}

	util.TranslationCacheMisses.Inc()
	translated, err := s.callTranslateAPI(ctx, english)
	if err != nil {
		return "", err
	}

	if err := s.store.SaveTranslation(ctx, english, translated); err != nil {
		s.logger.Warn("Failed to persist translation", zap.String("en", english), zap.Error(err))
	}
	if s.redis != nil {
		if err := s.redis.SetTranslation(ctx, english, translated, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache translation in Redis", zap.Error(err))
		}
	}

	s.logger.Info("Translation fetched from API", zap.String("en", english))
	return translated, nil
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func (s *TranslationService) callTranslateAPI(ctx context.Context, english string) (string, error) {
	body, err := json.Marshal(translateRequest{Q: english, Target: "es", Format: "text"})
	if err != nil {
		return "", err
	}

	endpoint := googleTranslateURL + "?key=" + s.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate API returned %d", resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode translate API response: %w", err)
	}
	if len(parsed.Data.Translations) == 0 {
		return "", fmt.Errorf("translate API returned no translations")
	}

	return parsed.Data.Translations[0].TranslatedText, nil
}
