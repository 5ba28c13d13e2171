package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/deyna256/codeforces-rag/internal/logger"
)

const pricingURL = "https://openrouter.ai/api/v1/models"

// ModelPricing holds per-token prices. Multiply by 1e6 to display as
// dollars per million tokens.
type ModelPricing struct {
	PromptPrice     float64 `json:"prompt_price"`
	CompletionPrice float64 `json:"completion_price"`
	Currency        string  `json:"currency"`
}

// PricingManager fetches OpenRouter model prices and caches them on disk so
// repeated runs work offline.
type PricingManager struct {
	cacheFile string
	client    *http.Client
	pricing   map[string]ModelPricing
}

func NewPricingManager(cacheFile string) *PricingManager {
	return &PricingManager{
		cacheFile: cacheFile,
		client:    &http.Client{Timeout: 30 * time.Second},
		pricing:   make(map[string]ModelPricing),
	}
}

// LoadOrFetch returns cached pricing when available, otherwise fetches from
// the OpenRouter API and writes the cache.
func (pm *PricingManager) LoadOrFetch(ctx context.Context, forceRefresh bool) error {
	if !forceRefresh && pm.loadFromCache() {
		return nil
	}

	if err := pm.fetchFromAPI(ctx); err != nil {
		return err
	}

	pm.saveToCache()
	return nil
}

// ForModel returns pricing for a model, or nil when unknown.
func (pm *PricingManager) ForModel(name string) *ModelPricing {
	if p, ok := pm.pricing[name]; ok {
		return &p
	}
	return nil
}

func (pm *PricingManager) loadFromCache() bool {
	data, err := os.ReadFile(pm.cacheFile)
	if err != nil {
		return false
	}

	var cached map[string]ModelPricing
	if err := json.Unmarshal(data, &cached); err != nil {
		logger.Warn("invalid pricing cache, refetching", "path", pm.cacheFile, "error", err)
		return false
	}

	pm.pricing = cached
	return true
}

func (pm *PricingManager) fetchFromAPI(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pricingURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create pricing request: %w", err)
	}

	resp, err := pm.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch pricing: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pricing API returned status %d", resp.StatusCode)
	}

	// prices arrive as strings, sometimes in scientific notation
	var payload struct {
		Data []struct {
			ID      string `json:"id"`
			Pricing struct {
				Prompt     string `json:"prompt"`
				Completion string `json:"completion"`
			} `json:"pricing"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode pricing response: %w", err)
	}

	pm.pricing = make(map[string]ModelPricing, len(payload.Data))
	for _, model := range payload.Data {
		if model.ID == "" {
			continue
		}

		prompt, err := strconv.ParseFloat(model.Pricing.Prompt, 64)
		if err != nil {
			continue
		}
		completion, err := strconv.ParseFloat(model.Pricing.Completion, 64)
		if err != nil {
			continue
		}

		pm.pricing[model.ID] = ModelPricing{
			PromptPrice:     prompt,
			CompletionPrice: completion,
			Currency:        "USD",
		}
	}

	return nil
}

func (pm *PricingManager) saveToCache() {
	if err := os.MkdirAll(filepath.Dir(pm.cacheFile), 0o755); err != nil {
		logger.Warn("failed to create pricing cache dir", "error", err)
		return
	}

	data, err := json.MarshalIndent(pm.pricing, "", "  ")
	if err != nil {
		logger.Warn("failed to encode pricing cache", "error", err)
		return
	}

	if err := os.WriteFile(pm.cacheFile, data, 0o644); err != nil {
		logger.Warn("failed to write pricing cache", "path", pm.cacheFile, "error", err)
	}
}
