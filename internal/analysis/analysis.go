// Package analysis aggregates collection statistics for display.
package analysis

import (
	"math"
	"sort"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

const (
	highRatingThreshold = 4
	notesPerTier        = 8
)

// Summarize computes display statistics. Averages and percentages are left at
// zero when there is nothing to divide by.
func Summarize(perfumes []domain.Perfume) domain.CollectionStats {
	st := domain.CollectionStats{
		TotalPerfumes: len(perfumes),
		Families:      []domain.Count{},
	}

	var ratingSum, longevitySum, sillageSum float64
	families := newCounter()
	concentrations := newCounter()
	for _, p := range perfumes {
		if p.Price != nil {
			st.TotalValue += *p.Price
		}
		ratingSum += p.PersonalRating
		longevitySum += p.Longevity
		sillageSum += p.Sillage
		if p.PersonalRating >= highRatingThreshold {
			st.HighRated++
		}
		families.add(string(p.FragranceFamily))
		concentrations.add(string(p.Concentration))
	}

	if n := float64(len(perfumes)); n > 0 {
		st.AverageRating = round1(ratingSum / n)
		st.AverageLongevity = round1(longevitySum / n)
		st.AverageSillage = round1(sillageSum / n)
	}

	st.Families = families.ranked(0)
	if len(st.Families) > 0 {
		top := st.Families[0]
		st.TopFamily = &top
	}
	if c := concentrations.ranked(1); len(c) > 0 {
		st.TopConcentration = &c[0]
	}

	st.Seasons = seasonBreakdown(perfumes)
	st.Notes = domain.NoteTiers{
		Top:    noteShares(perfumes, func(p domain.Perfume) []string { return p.TopNotes }),
		Middle: noteShares(perfumes, func(p domain.Perfume) []string { return p.MiddleNotes }),
		Base:   noteShares(perfumes, func(p domain.Perfume) []string { return p.BaseNotes }),
	}
	return st
}

// seasonBreakdown reports each season's share of all season assignments.
func seasonBreakdown(perfumes []domain.Perfume) []domain.SeasonShare {
	counts := make(map[domain.Season]int, len(domain.Seasons))
	total := 0
	for _, p := range perfumes {
		for _, s := range p.Season {
			counts[s]++
			total++
		}
	}

	out := make([]domain.SeasonShare, 0, len(domain.Seasons))
	for _, s := range domain.Seasons {
		share := domain.SeasonShare{Season: s, Count: counts[s]}
		if total > 0 {
			share.Percent = round1(float64(counts[s]) / float64(total) * 100)
		}
		out = append(out, share)
	}
	return out
}

// noteShares ranks the notes of one tier; Percent is relative to the most
// frequent note of that tier.
func noteShares(perfumes []domain.Perfume, tier func(domain.Perfume) []string) []domain.NoteShare {
	c := newCounter()
	for _, p := range perfumes {
		for _, n := range tier(p) {
			c.add(n)
		}
	}

	ranked := c.ranked(notesPerTier)
	out := make([]domain.NoteShare, 0, len(ranked))
	if len(ranked) == 0 {
		return out
	}
	best := ranked[0].Count
	for _, r := range ranked {
		out = append(out, domain.NoteShare{
			Note:    r.Label,
			Count:   r.Count,
			Percent: round1(float64(r.Count) / float64(best) * 100),
		})
	}
	return out
}

type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// ranked returns labels by descending count, first-seen order on ties.
// limit <= 0 returns all of them.
func (c *counter) ranked(limit int) []domain.Count {
	out := make([]domain.Count, 0, len(c.order))
	for _, l := range c.order {
		out = append(out, domain.Count{Label: l, Count: c.counts[l]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
