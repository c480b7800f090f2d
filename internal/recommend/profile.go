package recommend

import (
	"slices"
	"sort"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

const (
	maxFavoriteNotes      = 10
	maxFavoriteFamilies   = 3
	maxPreferredSeasons   = 2
	maxPreferredOccasions = 3
)

// BuildProfile summarizes what the collection leans towards. Each list is
// ranked by descending frequency; equal counts keep first-seen order.
func BuildProfile(perfumes []domain.Perfume) domain.PreferenceProfile {
	var notes []string
	var families []domain.FragranceFamily
	var seasons []domain.Season
	var occasions []domain.Occasion

	for _, p := range perfumes {
		notes = append(notes, p.AllNotes()...)
		families = append(families, p.FragranceFamily)
		seasons = append(seasons, p.Season...)
		occasions = append(occasions, p.Occasion...)
	}

	return domain.PreferenceProfile{
		FavoriteNotes:      topByFrequency(notes, maxFavoriteNotes),
		FavoriteFamilies:   topByFrequency(families, maxFavoriteFamilies),
		PreferredSeasons:   topByFrequency(seasons, maxPreferredSeasons),
		PreferredOccasions: topByFrequency(occasions, maxPreferredOccasions),
	}
}

func topByFrequency[T comparable](items []T, limit int) []T {
	counts := make(map[T]int, len(items))
	order := make([]T, 0, len(items))
	for _, it := range items {
		if _, seen := counts[it]; !seen {
			order = append(order, it)
		}
		counts[it]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// countMembers counts entries of items (with repeats) that appear in set.
func countMembers(items, set []string) int {
	n := 0
	for _, it := range items {
		if slices.Contains(set, it) {
			n++
		}
	}
	return n
}
