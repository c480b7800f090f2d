package recommend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

const layeringBase = 5.0

// complementaryFamilies are family pairs that layer well in either order. Two
// perfumes match a pair when both families are members of it, so Woody with
// Woody counts as well.
var complementaryFamilies = [][2]domain.FragranceFamily{
	{domain.FamilyFresh, domain.FamilyWoody},
	{domain.FamilyFloral, domain.FamilyOriental},
	{domain.FamilyGourmand, domain.FamilyWoody},
}

// ScoreLayering rates how well two perfumes layer, from 1 to 10 in 0.5 steps.
// The result does not depend on argument order.
func ScoreLayering(a, b domain.Perfume) float64 {
	score := layeringBase

	if a.FragranceFamily == b.FragranceFamily {
		score++
	}
	if isComplementary(a.FragranceFamily, b.FragranceFamily) {
		score += 2
	}

	score += min(0.5*float64(sharedNotes(a, b)), 2)

	if a.Concentration != b.Concentration {
		score++
	}

	return clamp(score, 1, 10)
}

func isComplementary(x, y domain.FragranceFamily) bool {
	for _, pair := range complementaryFamilies {
		if (x == pair[0] || x == pair[1]) && (y == pair[0] || y == pair[1]) {
			return true
		}
	}
	return false
}

// sharedNotes counts notes of one perfume found in the other. Repeated notes
// count once per occurrence; the larger directional count is used so the
// result is the same for (a, b) and (b, a).
func sharedNotes(a, b domain.Perfume) int {
	na, nb := a.AllNotes(), b.AllNotes()
	return max(countMembers(na, nb), countMembers(nb, na))
}

// Describe returns a short suggestion text for wearing a and b together.
func Describe(a, b domain.Perfume, sel Selector) string {
	return pick(sel, []string{
		fmt.Sprintf("Combine the %s essence of %s with the %s character of %s for a unique, personalized scent.",
			strings.ToLower(string(a.FragranceFamily)), a.Name, strings.ToLower(string(b.FragranceFamily)), b.Name),
		fmt.Sprintf("Layer %s's distinctive profile with %s to create depth and complexity that evolves throughout the day.",
			a.Name, b.Name),
		fmt.Sprintf("The complementary notes in %s and %s create a harmonious blend that enhances both fragrances.",
			a.Name, b.Name),
	})
}

const maxTips = 4

// LayeringTips returns up to four application tips for the pair. Tips about
// longevity and sillage are appended after the generic ones and the list is
// then cut to size.
func LayeringTips(a, b domain.Perfume) []string {
	tips := []string{
		fmt.Sprintf("Apply %s first as the base layer, then mist %s lightly on top.", a.Name, b.Name),
		"Focus application on pulse points: wrists, neck, and behind ears.",
		"Allow each layer to dry before applying the next for best results.",
		"Start with lighter concentrations and build up intensity gradually.",
	}

	if a.Longevity != b.Longevity {
		longer := a
		if b.Longevity > a.Longevity {
			longer = b
		}
		tips = append(tips, fmt.Sprintf("%s has better longevity, so use it as your base layer.", longer.Name))
	}
	if a.Sillage != b.Sillage {
		louder := a
		if b.Sillage > a.Sillage {
			louder = b
		}
		tips = append(tips, fmt.Sprintf("Use %s sparingly as it has strong projection.", louder.Name))
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

// sharedOrCombined returns the values present in both lists (in a's order),
// or the de-duplicated union of both when they have nothing in common.
func sharedOrCombined[T comparable](a, b []T) []T {
	var common []T
	for _, v := range a {
		if slices.Contains(b, v) && !slices.Contains(common, v) {
			common = append(common, v)
		}
	}
	if len(common) > 0 {
		return common
	}

	union := make([]T, 0, len(a)+len(b))
	for _, v := range append(append([]T(nil), a...), b...) {
		if !slices.Contains(union, v) {
			union = append(union, v)
		}
	}
	return union
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
