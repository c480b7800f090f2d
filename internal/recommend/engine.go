package recommend

import (
	"fmt"
	"sort"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

// Engine produces layering and purchase suggestions for a collection
// snapshot. It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	cfg      Config
	selector Selector
}

type Option func(*Engine)

// WithSelector sets how description templates are chosen.
func WithSelector(s Selector) Option {
	return func(e *Engine) {
		if s != nil {
			e.selector = s
		}
	}
}

func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg.normalized(), selector: RandomSelector()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Recommend computes both suggestion lists for the collection.
func (e *Engine) Recommend(perfumes []domain.Perfume) domain.Recommendations {
	return domain.Recommendations{
		Layering: e.Layering(perfumes),
		Purchase: e.Purchases(perfumes),
	}
}

// Profile summarizes the collection's preferences.
func (e *Engine) Profile(perfumes []domain.Perfume) domain.PreferenceProfile {
	return BuildProfile(perfumes)
}

// Layering scores every unordered pair of the collection and returns the best
// qualifying pairs, highest compatibility first.
func (e *Engine) Layering(perfumes []domain.Perfume) []domain.LayeringRecommendation {
	out := []domain.LayeringRecommendation{}
	if len(perfumes) < 2 {
		return out
	}

	for i := 0; i < len(perfumes); i++ {
		for j := i + 1; j < len(perfumes); j++ {
			a, b := perfumes[i], perfumes[j]
			score := ScoreLayering(a, b)
			if score < e.cfg.LayeringMinScore {
				continue
			}
			out = append(out, domain.LayeringRecommendation{
				ID:            a.ID + "-" + b.ID,
				Perfumes:      [2]string{a.ID, b.ID},
				Title:         a.Name + " × " + b.Name,
				Description:   Describe(a, b, e.selector),
				Compatibility: score,
				Season:        sharedOrCombined(a.Season, b.Season),
				Occasion:      sharedOrCombined(a.Occasion, b.Occasion),
				Tips:          LayeringTips(a, b),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Compatibility > out[j].Compatibility })
	if len(out) > e.cfg.LayeringLimit {
		out = out[:e.cfg.LayeringLimit]
	}
	return out
}

// Purchases scores the fixed catalog against the collection and returns the
// best qualifying entries, highest compatibility first.
func (e *Engine) Purchases(perfumes []domain.Perfume) []domain.PurchaseRecommendation {
	out := []domain.PurchaseRecommendation{}
	if len(perfumes) == 0 {
		return out
	}

	profile := BuildProfile(perfumes)
	for i, c := range Catalog() {
		score := ScorePurchase(c, profile, perfumes)
		if score < e.cfg.PurchaseMinScore {
			continue
		}
		out = append(out, domain.PurchaseRecommendation{
			ID:              fmt.Sprintf("rec-%d", i),
			Name:            c.Name,
			Brand:           c.Brand,
			FragranceFamily: c.FragranceFamily,
			TopNotes:        c.TopNotes,
			MiddleNotes:     c.MiddleNotes,
			BaseNotes:       c.BaseNotes,
			Reason:          PurchaseReason(c, profile, perfumes),
			Compatibility:   score,
			EstimatedPrice:  c.EstimatedPrice,
			Season:          c.Season,
			Occasion:        c.Occasion,
			SimilarTo:       SimilarTo(c, perfumes),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Compatibility > out[j].Compatibility })
	if len(out) > e.cfg.PurchaseLimit {
		out = out[:e.cfg.PurchaseLimit]
	}
	return out
}
