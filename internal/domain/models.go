package domain

import "time"

type Concentration string

const (
	ConcentrationEDT     Concentration = "EDT"
	ConcentrationEDP     Concentration = "EDP"
	ConcentrationParfum  Concentration = "Parfum"
	ConcentrationCologne Concentration = "Cologne"
	ConcentrationOil     Concentration = "Oil"
)

type FragranceFamily string

const (
	FamilyFresh    FragranceFamily = "Fresh"
	FamilyFloral   FragranceFamily = "Floral"
	FamilyOriental FragranceFamily = "Oriental"
	FamilyWoody    FragranceFamily = "Woody"
	FamilyGourmand FragranceFamily = "Gourmand"
	FamilyFougere  FragranceFamily = "Fougère"
	FamilyChypre   FragranceFamily = "Chypre"
	FamilyLeather  FragranceFamily = "Leather"
)

type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
)

type Occasion string

const (
	OccasionCasual  Occasion = "Casual"
	OccasionWork    Occasion = "Work"
	OccasionEvening Occasion = "Evening"
	OccasionSpecial Occasion = "Special"
	OccasionDate    Occasion = "Date"
	OccasionSport   Occasion = "Sport"
)

// Families lists every fragrance family in display order.
var Families = []FragranceFamily{
	FamilyFresh, FamilyFloral, FamilyOriental, FamilyWoody,
	FamilyGourmand, FamilyFougere, FamilyChypre, FamilyLeather,
}

var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Perfume is an owned item of the collection. Ratings are expected within
// Longevity/Sillage 1..10 and PersonalRating 1..5; the entry boundary
// validates them, scoring code takes them as-is.
type Perfume struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	Concentration   Concentration   `json:"concentration"`
	TopNotes        []string        `json:"top_notes"`
	MiddleNotes     []string        `json:"middle_notes"`
	BaseNotes       []string        `json:"base_notes"`
	FragranceFamily FragranceFamily `json:"fragrance_family"`
	Season          []Season        `json:"season"`
	Occasion        []Occasion      `json:"occasion"`
	Longevity       float64         `json:"longevity"`
	Sillage         float64         `json:"sillage"`
	PersonalRating  float64         `json:"personal_rating"`
	Price           *float64        `json:"price,omitempty"`
	Description     string          `json:"description,omitempty"`
	PurchaseDate    *time.Time      `json:"purchase_date,omitempty"`
	Image           string          `json:"image,omitempty"`
}

// AllNotes returns top, middle and base notes in that order.
func (p Perfume) AllNotes() []string {
	return joinNotes(p.TopNotes, p.MiddleNotes, p.BaseNotes)
}

// CatalogEntry is a purchasable fragrance that is not part of the collection.
type CatalogEntry struct {
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	FragranceFamily FragranceFamily `json:"fragrance_family"`
	TopNotes        []string        `json:"top_notes"`
	MiddleNotes     []string        `json:"middle_notes"`
	BaseNotes       []string        `json:"base_notes"`
	EstimatedPrice  float64         `json:"estimated_price"`
	Season          []Season        `json:"season"`
	Occasion        []Occasion      `json:"occasion"`
}

func (c CatalogEntry) AllNotes() []string {
	return joinNotes(c.TopNotes, c.MiddleNotes, c.BaseNotes)
}

func joinNotes(tiers ...[]string) []string {
	n := 0
	for _, t := range tiers {
		n += len(t)
	}
	out := make([]string, 0, n)
	for _, t := range tiers {
		out = append(out, t...)
	}
	return out
}

type PreferenceProfile struct {
	FavoriteNotes      []string          `json:"favorite_notes"`
	FavoriteFamilies   []FragranceFamily `json:"favorite_families"`
	PreferredSeasons   []Season          `json:"preferred_seasons"`
	PreferredOccasions []Occasion        `json:"preferred_occasions"`
}

type LayeringRecommendation struct {
	ID            string     `json:"id"`
	Perfumes      [2]string  `json:"perfumes"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Compatibility float64    `json:"compatibility"`
	Season        []Season   `json:"season"`
	Occasion      []Occasion `json:"occasion"`
	Tips          []string   `json:"tips"`
}

type PurchaseRecommendation struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	FragranceFamily FragranceFamily `json:"fragrance_family"`
	TopNotes        []string        `json:"top_notes"`
	MiddleNotes     []string        `json:"middle_notes"`
	BaseNotes       []string        `json:"base_notes"`
	Reason          string          `json:"reason"`
	Compatibility   float64         `json:"compatibility"`
	EstimatedPrice  float64         `json:"estimated_price"`
	Season          []Season        `json:"season"`
	Occasion        []Occasion      `json:"occasion"`
	SimilarTo       []string        `json:"similar_to"`
}

type Recommendations struct {
	Layering []LayeringRecommendation `json:"layering"`
	Purchase []PurchaseRecommendation `json:"purchase"`
}
