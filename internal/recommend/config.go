package recommend

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Config holds the thresholds and list sizes used by the engine.
type Config struct {
	LayeringMinScore float64 `json:"layering_min_score"`
	LayeringLimit    int     `json:"layering_limit"`
	PurchaseMinScore float64 `json:"purchase_min_score"`
	PurchaseLimit    int     `json:"purchase_limit"`
}

// DefaultConfig returns the standard engine settings.
func DefaultConfig() Config {
	return Config{
		LayeringMinScore: 6,
		LayeringLimit:    5,
		PurchaseMinScore: 5,
		PurchaseLimit:    4,
	}
}

// LoadConfigFromFile loads engine settings from a JSON file. On any error the
// defaults are returned together with the error so callers can fall back.
func LoadConfigFromFile(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read recommend config: %w", err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return DefaultConfig(), fmt.Errorf("unmarshal recommend config: %w", err)
	}
	return c.normalized(), nil
}

// normalized fills unset limits and raises thresholds below the defaults, so
// settings can tighten the lists but never admit weaker suggestions.
func (c Config) normalized() Config {
	d := DefaultConfig()
	c.LayeringMinScore = max(c.LayeringMinScore, d.LayeringMinScore)
	c.PurchaseMinScore = max(c.PurchaseMinScore, d.PurchaseMinScore)
	if c.LayeringLimit <= 0 {
		c.LayeringLimit = d.LayeringLimit
	}
	if c.PurchaseLimit <= 0 {
		c.PurchaseLimit = d.PurchaseLimit
	}
	return c
}
