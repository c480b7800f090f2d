package recommend

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), WithSelector(FixedSelector(0)))
}

func TestEngine_EmptyCollection(t *testing.T) {
	got := newTestEngine().Recommend(nil)
	assert.NotNil(t, got.Layering)
	assert.Empty(t, got.Layering)
	assert.NotNil(t, got.Purchase)
	assert.Empty(t, got.Purchase)
}

func TestEngine_SinglePerfume(t *testing.T) {
	p := perfume("1", "Blue", domain.FamilyFresh, domain.ConcentrationEDT, "Bergamot")
	p.Season = []domain.Season{domain.SeasonSpring}
	p.Occasion = []domain.Occasion{domain.OccasionWork}

	got := newTestEngine().Recommend([]domain.Perfume{p})
	assert.Empty(t, got.Layering)
	require.Len(t, got.Purchase, 4)

	var names []string
	for _, r := range got.Purchase {
		names = append(names, r.Name)
	}
	// Aventus 9.3, Libre 9, then the 7s in catalog order.
	assert.Equal(t, []string{"Aventus", "Libre", "Baccarat Rouge 540", "Ombre Nomade"}, names)
	assert.InDelta(t, 9.3, got.Purchase[0].Compatibility, 1e-9)
	assert.Equal(t, "rec-0", got.Purchase[0].ID)
	assert.Equal(t, "rec-3", got.Purchase[1].ID)
	assert.Equal(t, []string{"Blue"}, got.Purchase[0].SimilarTo)
	assert.Equal(t, []string{}, got.Purchase[2].SimilarTo)
}

func TestEngine_FreshWoodyPair(t *testing.T) {
	a := perfume("a", "Blue", domain.FamilyFresh, domain.ConcentrationEDT, "Bergamot")
	a.Season = []domain.Season{domain.SeasonSpring, domain.SeasonSummer}
	a.Occasion = []domain.Occasion{domain.OccasionWork}
	b := perfume("b", "Cedar", domain.FamilyWoody, domain.ConcentrationEDP, "Bergamot")
	b.Season = []domain.Season{domain.SeasonSummer, domain.SeasonFall}
	b.Occasion = []domain.Occasion{domain.OccasionEvening}

	got := newTestEngine().Layering([]domain.Perfume{a, b})
	require.Len(t, got, 1)

	rec := got[0]
	assert.Equal(t, "a-b", rec.ID)
	assert.Equal(t, [2]string{"a", "b"}, rec.Perfumes)
	assert.Equal(t, "Blue × Cedar", rec.Title)
	assert.Equal(t, 8.5, rec.Compatibility)
	assert.Equal(t, []domain.Season{domain.SeasonSummer}, rec.Season)
	assert.Equal(t, []domain.Occasion{domain.OccasionWork, domain.OccasionEvening}, rec.Occasion)
	assert.Len(t, rec.Tips, 4)
	assert.Contains(t, rec.Description, "Blue")
}

func TestEngine_LayeringThresholdOrderAndLimit(t *testing.T) {
	families := []domain.FragranceFamily{
		domain.FamilyFresh, domain.FamilyWoody, domain.FamilyGourmand, domain.FamilyFloral,
		domain.FamilyOriental, domain.FamilyLeather, domain.FamilyChypre, domain.FamilyWoody,
	}
	concs := []domain.Concentration{domain.ConcentrationEDT, domain.ConcentrationEDP, domain.ConcentrationParfum}

	var items []domain.Perfume
	for i, f := range families {
		items = append(items, perfume(fmt.Sprintf("p%d", i), fmt.Sprintf("P%d", i), f, concs[i%len(concs)], "Musk"))
	}

	got := newTestEngine().Layering(items)
	require.Len(t, got, 5)
	seen := map[string]bool{}
	for i, r := range got {
		assert.GreaterOrEqual(t, r.Compatibility, 6.0)
		assert.NotEqual(t, r.Perfumes[0], r.Perfumes[1])
		assert.False(t, seen[r.ID], "duplicate pair %s", r.ID)
		seen[r.ID] = true
		if i > 0 {
			assert.LessOrEqual(t, r.Compatibility, got[i-1].Compatibility)
		}
	}
	// Fresh/Woody, EDT/EDP, shared Musk: the top pair and formed first.
	assert.Equal(t, "p0-p1", got[0].ID)
}

func TestEngine_LayeringSkipsLowPairs(t *testing.T) {
	a := perfume("1", "A", domain.FamilyLeather, domain.ConcentrationEDT)
	b := perfume("2", "B", domain.FamilyFresh, domain.ConcentrationEDT)
	assert.Empty(t, newTestEngine().Layering([]domain.Perfume{a, b}))
}

func TestEngine_LeatherCollectionPurchases(t *testing.T) {
	got := newTestEngine().Purchases(leatherCollection())

	var ids []string
	for _, r := range got {
		ids = append(ids, r.ID)
		assert.GreaterOrEqual(t, r.Compatibility, 5.0)
		assert.Contains(t, r.Reason, "adds a new")
	}
	assert.Equal(t, []string{"rec-1", "rec-2", "rec-4", "rec-0"}, ids)
}

func TestEngine_ConfigThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PurchaseMinScore = 9
	cfg.PurchaseLimit = 2

	got := NewEngine(cfg).Purchases(leatherCollection())
	require.Len(t, got, 2)
	assert.Equal(t, "Baccarat Rouge 540", got[0].Name)
	assert.Equal(t, "Ombre Nomade", got[1].Name)
}

func TestEngine_Idempotent(t *testing.T) {
	var items []domain.Perfume
	for i, f := range domain.Families {
		p := perfume(fmt.Sprintf("p%d", i), fmt.Sprintf("P%d", i), f, domain.ConcentrationEDT, "Rose", "Musk")
		p.Season = []domain.Season{domain.Seasons[i%4]}
		items = append(items, p)
	}

	e := NewEngine(DefaultConfig())
	first, second := e.Recommend(items), e.Recommend(items)

	require.Equal(t, len(first.Layering), len(second.Layering))
	for i := range first.Layering {
		assert.Equal(t, first.Layering[i].ID, second.Layering[i].ID)
		assert.Equal(t, first.Layering[i].Compatibility, second.Layering[i].Compatibility)
		assert.Equal(t, first.Layering[i].Tips, second.Layering[i].Tips)
	}
	assert.Equal(t, first.Purchase, second.Purchase)
}

func TestEngine_DoesNotMutateInput(t *testing.T) {
	a := perfume("1", "A", domain.FamilyFresh, domain.ConcentrationEDT, "Bergamot")
	a.Season = []domain.Season{domain.SeasonSpring}
	b := perfume("2", "B", domain.FamilyWoody, domain.ConcentrationEDP, "Bergamot")
	b.Season = []domain.Season{domain.SeasonFall}
	items := []domain.Perfume{a, b}

	_ = newTestEngine().Recommend(items)
	assert.Equal(t, []domain.Season{domain.SeasonSpring}, items[0].Season)
	assert.Equal(t, []string{"Bergamot"}, items[1].TopNotes)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recommend.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"layering_limit": 3, "purchase_min_score": 7}`), 0o600))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LayeringLimit)
	assert.Equal(t, 7.0, cfg.PurchaseMinScore)
	assert.Equal(t, 6.0, cfg.LayeringMinScore)
	assert.Equal(t, 4, cfg.PurchaseLimit)

	cfg, err = LoadConfigFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile_ThresholdsNotBelowDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recommend.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"layering_min_score": 0, "purchase_min_score": -1}`), 0o600))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.LayeringMinScore)
	assert.Equal(t, 5.0, cfg.PurchaseMinScore)

	// Leather with Fresh scores 5 and must stay out even with a zero threshold.
	a := perfume("1", "A", domain.FamilyLeather, domain.ConcentrationEDT)
	b := perfume("2", "B", domain.FamilyFresh, domain.ConcentrationEDT)
	e := NewEngine(Config{LayeringMinScore: 0, PurchaseMinScore: 0})
	assert.Empty(t, e.Layering([]domain.Perfume{a, b}))
	for _, r := range e.Purchases([]domain.Perfume{a, b}) {
		assert.GreaterOrEqual(t, r.Compatibility, 5.0)
	}
}
