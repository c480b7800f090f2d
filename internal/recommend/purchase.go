package recommend

import (
	"slices"
	"strings"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

const (
	purchaseBase   = 5.0
	maxSimilarTo   = 2
	maxReasonNotes = 2
)

// ScorePurchase rates a catalog entry against the collection, from 1 to 10.
func ScorePurchase(c domain.CatalogEntry, profile domain.PreferenceProfile, owned []domain.Perfume) float64 {
	score := purchaseBase

	if slices.Contains(profile.FavoriteFamilies, c.FragranceFamily) {
		score += 2
	}
	if anyIn(c.Season, profile.PreferredSeasons) {
		score++
	}
	if anyIn(c.Occasion, profile.PreferredOccasions) {
		score++
	}
	if !ownsFamily(owned, c.FragranceFamily) {
		score += 2
	}

	score += min(0.3*float64(len(favoriteNoteMatches(c, profile))), 1.5)

	return clamp(score, 1, 10)
}

// PurchaseReason explains in one sentence why the entry was suggested.
func PurchaseReason(c domain.CatalogEntry, profile domain.PreferenceProfile, owned []domain.Perfume) string {
	family := strings.ToLower(string(c.FragranceFamily))

	var reasons []string
	if slices.Contains(profile.FavoriteFamilies, c.FragranceFamily) {
		reasons = append(reasons, "matches your preference for "+family+" fragrances")
	}
	if !ownsFamily(owned, c.FragranceFamily) {
		reasons = append(reasons, "adds a new "+family+" dimension to your collection")
	}
	if matches := favoriteNoteMatches(c, profile); len(matches) > 0 {
		if len(matches) > maxReasonNotes {
			matches = matches[:maxReasonNotes]
		}
		reasons = append(reasons, "features your favorite notes: "+strings.Join(matches, ", "))
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "offers a unique olfactory experience that complements your current collection")
	}

	return "This fragrance " + strings.Join(reasons, " and ") + "."
}

// SimilarTo returns names of up to two owned perfumes that share the entry's
// family or at least two of its notes, in collection order.
func SimilarTo(c domain.CatalogEntry, owned []domain.Perfume) []string {
	notes := c.AllNotes()
	out := []string{}
	for _, p := range owned {
		if len(out) == maxSimilarTo {
			break
		}
		if p.FragranceFamily == c.FragranceFamily || countMembers(notes, p.AllNotes()) >= 2 {
			out = append(out, p.Name)
		}
	}
	return out
}

// favoriteNoteMatches lists the entry's notes (with repeats) that are among
// the profile's favorites, in tier order.
func favoriteNoteMatches(c domain.CatalogEntry, profile domain.PreferenceProfile) []string {
	var out []string
	for _, n := range c.AllNotes() {
		if slices.Contains(profile.FavoriteNotes, n) {
			out = append(out, n)
		}
	}
	return out
}

func ownsFamily(owned []domain.Perfume, f domain.FragranceFamily) bool {
	for _, p := range owned {
		if p.FragranceFamily == f {
			return true
		}
	}
	return false
}

func anyIn[T comparable](values, set []T) bool {
	for _, v := range values {
		if slices.Contains(set, v) {
			return true
		}
	}
	return false
}
