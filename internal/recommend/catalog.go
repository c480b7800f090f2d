package recommend

import "github.com/denisok6893-rgb/fragrance-matching/internal/domain"

// catalog is the fixed list of purchase candidates. It is never mutated;
// Catalog hands out deep copies.
var catalog = [...]domain.CatalogEntry{
	{
		Name:            "Aventus",
		Brand:           "Creed",
		FragranceFamily: domain.FamilyFresh,
		TopNotes:        []string{"Pineapple", "Bergamot", "Black Currant", "Apple"},
		MiddleNotes:     []string{"Birch", "Patchouli", "Moroccan Jasmine", "Rose"},
		BaseNotes:       []string{"Musk", "Oak Moss", "Ambergris", "Vanilla"},
		EstimatedPrice:  350,
		Season:          []domain.Season{domain.SeasonSpring, domain.SeasonSummer},
		Occasion:        []domain.Occasion{domain.OccasionWork, domain.OccasionSpecial},
	},
	{
		Name:            "Baccarat Rouge 540",
		Brand:           "Maison Francis Kurkdjian",
		FragranceFamily: domain.FamilyOriental,
		TopNotes:        []string{"Jasmine", "Saffron"},
		MiddleNotes:     []string{"Amberwood", "Ambergris"},
		BaseNotes:       []string{"Fir Resin", "Cedar"},
		EstimatedPrice:  325,
		Season:          []domain.Season{domain.SeasonFall, domain.SeasonWinter},
		Occasion:        []domain.Occasion{domain.OccasionEvening, domain.OccasionSpecial},
	},
	{
		Name:            "Ombre Nomade",
		Brand:           "Louis Vuitton",
		FragranceFamily: domain.FamilyWoody,
		TopNotes:        []string{"Oud", "Rose"},
		MiddleNotes:     []string{"Saffron", "Benzoin"},
		BaseNotes:       []string{"Raspberry", "Birch"},
		EstimatedPrice:  320,
		Season:          []domain.Season{domain.SeasonFall, domain.SeasonWinter},
		Occasion:        []domain.Occasion{domain.OccasionEvening, domain.OccasionDate},
	},
	{
		Name:            "Libre",
		Brand:           "Yves Saint Laurent",
		FragranceFamily: domain.FamilyFloral,
		TopNotes:        []string{"Mandarin Orange", "Black Currant", "Petitgrain"},
		MiddleNotes:     []string{"Jasmine", "Orange Blossom", "Lavender"},
		BaseNotes:       []string{"Madagascar Vanilla", "Ambergris", "Cedar"},
		EstimatedPrice:  100,
		Season:          []domain.Season{domain.SeasonSpring, domain.SeasonSummer},
		Occasion:        []domain.Occasion{domain.OccasionCasual, domain.OccasionWork, domain.OccasionDate},
	},
	{
		Name:            "By the Fireplace",
		Brand:           "Replica",
		FragranceFamily: domain.FamilyGourmand,
		TopNotes:        []string{"Pink Pepper", "Orange", "Clove"},
		MiddleNotes:     []string{"Guaiac Wood", "Juniper", "Rose"},
		BaseNotes:       []string{"Vanilla", "Cashmeran", "Chestnut"},
		EstimatedPrice:  130,
		Season:          []domain.Season{domain.SeasonFall, domain.SeasonWinter},
		Occasion:        []domain.Occasion{domain.OccasionCasual, domain.OccasionEvening},
	},
}

// Catalog returns a copy of the purchase candidates in their fixed order.
func Catalog() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(catalog))
	for i, c := range catalog {
		out[i] = copyEntry(c)
	}
	return out
}

func copyEntry(c domain.CatalogEntry) domain.CatalogEntry {
	c.TopNotes = append([]string(nil), c.TopNotes...)
	c.MiddleNotes = append([]string(nil), c.MiddleNotes...)
	c.BaseNotes = append([]string(nil), c.BaseNotes...)
	c.Season = append([]domain.Season(nil), c.Season...)
	c.Occasion = append([]domain.Occasion(nil), c.Occasion...)
	return c
}
