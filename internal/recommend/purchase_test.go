package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

func catalogEntry(t *testing.T, name string) domain.CatalogEntry {
	t.Helper()
	for _, c := range Catalog() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("catalog entry %q not found", name)
	return domain.CatalogEntry{}
}

func leatherCollection() []domain.Perfume {
	p := perfume("1", "Tuscan", domain.FamilyLeather, domain.ConcentrationEDP, "Tar", "Smoke")
	p.Season = []domain.Season{domain.SeasonWinter}
	p.Occasion = []domain.Occasion{domain.OccasionEvening}
	return []domain.Perfume{p}
}

func TestBuildProfile_Empty(t *testing.T) {
	p := BuildProfile(nil)
	assert.NotNil(t, p.FavoriteNotes)
	assert.Empty(t, p.FavoriteNotes)
	assert.Empty(t, p.FavoriteFamilies)
	assert.Empty(t, p.PreferredSeasons)
	assert.Empty(t, p.PreferredOccasions)
}

func TestBuildProfile_RanksWithFirstSeenTieBreak(t *testing.T) {
	a := perfume("1", "A", domain.FamilyWoody, domain.ConcentrationEDP, "Amber", "Oud")
	a.Season = []domain.Season{domain.SeasonFall, domain.SeasonWinter}
	a.Occasion = []domain.Occasion{domain.OccasionWork}
	b := perfume("2", "B", domain.FamilyFresh, domain.ConcentrationEDT, "Oud")
	b.BaseNotes = []string{"Lemon"}
	b.Season = []domain.Season{domain.SeasonSummer, domain.SeasonWinter}
	b.Occasion = []domain.Occasion{domain.OccasionSport, domain.OccasionDate, domain.OccasionCasual, domain.OccasionWork}
	c := perfume("3", "C", domain.FamilyFresh, domain.ConcentrationEDT)

	p := BuildProfile([]domain.Perfume{a, b, c})

	assert.Equal(t, []string{"Oud", "Amber", "Lemon"}, p.FavoriteNotes)
	assert.Equal(t, []domain.FragranceFamily{domain.FamilyFresh, domain.FamilyWoody}, p.FavoriteFamilies)
	assert.Equal(t, []domain.Season{domain.SeasonWinter, domain.SeasonFall}, p.PreferredSeasons)
	assert.Equal(t, []domain.Occasion{domain.OccasionWork, domain.OccasionSport, domain.OccasionDate}, p.PreferredOccasions)
}

func TestBuildProfile_Bounds(t *testing.T) {
	var items []domain.Perfume
	for i, f := range domain.Families {
		p := perfume("id", "P", f, domain.ConcentrationEDT,
			"N1", "N2", "N3", "N4", "N5", "N6", "N7", "N8", "N9", "N10", "N11", "N12")
		p.Season = domain.Seasons
		p.Occasion = []domain.Occasion{
			domain.OccasionCasual, domain.OccasionWork, domain.OccasionEvening,
			domain.OccasionSpecial, domain.OccasionDate, domain.OccasionSport,
		}
		p.ID = string(rune('a' + i))
		items = append(items, p)
	}

	p := BuildProfile(items)
	assert.Len(t, p.FavoriteNotes, 10)
	assert.Len(t, p.FavoriteFamilies, 3)
	assert.Len(t, p.PreferredSeasons, 2)
	assert.Len(t, p.PreferredOccasions, 3)
	assert.Equal(t, "N1", p.FavoriteNotes[0])
}

func TestScorePurchase_GapFillingForLeatherCollection(t *testing.T) {
	owned := leatherCollection()
	profile := BuildProfile(owned)

	want := map[string]float64{
		"Aventus":            7, // gap only
		"Baccarat Rouge 540": 9, // gap + winter + evening
		"Ombre Nomade":       9,
		"Libre":              7,
		"By the Fireplace":   9,
	}
	for _, c := range Catalog() {
		assert.Equal(t, want[c.Name], ScorePurchase(c, profile, owned), c.Name)
	}

	leather := domain.CatalogEntry{Name: "Cuir", FragranceFamily: domain.FamilyLeather}
	chypre := domain.CatalogEntry{Name: "Mousse", FragranceFamily: domain.FamilyChypre}
	empty := BuildProfile(nil)
	assert.Equal(t, 5.0, ScorePurchase(leather, empty, owned))
	assert.Equal(t, 7.0, ScorePurchase(chypre, empty, owned))
}

func TestScorePurchase_NoteBonusCapped(t *testing.T) {
	owned := []domain.Perfume{perfume("1", "Mine", domain.FamilyFresh, domain.ConcentrationEDT,
		"Pineapple", "Bergamot", "Black Currant", "Apple", "Birch", "Patchouli", "Musk")}
	profile := BuildProfile(owned)

	// family +2, seven favorite notes capped at 1.5
	assert.Equal(t, 8.5, ScorePurchase(catalogEntry(t, "Aventus"), profile, owned))
}

func TestScorePurchase_Clamped(t *testing.T) {
	profile := domain.PreferenceProfile{
		FavoriteNotes:      []string{"Oud", "Rose", "Saffron", "Benzoin", "Raspberry", "Birch"},
		FavoriteFamilies:   []domain.FragranceFamily{domain.FamilyWoody},
		PreferredSeasons:   []domain.Season{domain.SeasonFall},
		PreferredOccasions: []domain.Occasion{domain.OccasionDate},
	}
	// Every term fires: 5 + 2 + 1 + 1 + 2 + 1.5 = 12.5
	assert.Equal(t, 10.0, ScorePurchase(catalogEntry(t, "Ombre Nomade"), profile, nil))
}

func TestPurchaseReason(t *testing.T) {
	aventus := catalogEntry(t, "Aventus")

	t.Run("gap filling", func(t *testing.T) {
		owned := leatherCollection()
		assert.Equal(t, "This fragrance adds a new fresh dimension to your collection.",
			PurchaseReason(aventus, BuildProfile(owned), owned))
	})

	t.Run("family and notes", func(t *testing.T) {
		owned := []domain.Perfume{perfume("1", "Mine", domain.FamilyFresh, domain.ConcentrationEDT, "Vanilla", "Musk", "Bergamot")}
		assert.Equal(t,
			"This fragrance matches your preference for fresh fragrances and features your favorite notes: Bergamot, Musk.",
			PurchaseReason(aventus, BuildProfile(owned), owned))
	})

	t.Run("fallback", func(t *testing.T) {
		owned := []domain.Perfume{perfume("1", "Mine", domain.FamilyFresh, domain.ConcentrationEDT)}
		assert.Equal(t,
			"This fragrance offers a unique olfactory experience that complements your current collection.",
			PurchaseReason(aventus, domain.PreferenceProfile{}, owned))
	})
}

func TestSimilarTo(t *testing.T) {
	ombre := catalogEntry(t, "Ombre Nomade")
	owned := []domain.Perfume{
		perfume("1", "One Note", domain.FamilyFresh, domain.ConcentrationEDT, "Rose"),
		perfume("2", "Forest", domain.FamilyWoody, domain.ConcentrationEDT),
		perfume("3", "Garden", domain.FamilyFloral, domain.ConcentrationEDT, "Rose", "Birch"),
		perfume("4", "Grove", domain.FamilyWoody, domain.ConcentrationEDT),
	}

	assert.Equal(t, []string{"Forest", "Garden"}, SimilarTo(ombre, owned))
	assert.Empty(t, SimilarTo(ombre, owned[:1]))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	first := Catalog()
	require.Len(t, first, 5)
	first[0].TopNotes[0] = "Changed"
	first[0].Name = "Changed"

	again := Catalog()
	assert.Equal(t, "Aventus", again[0].Name)
	assert.Equal(t, "Pineapple", again[0].TopNotes[0])
}
