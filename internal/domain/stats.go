package domain

type CollectionStats struct {
	TotalPerfumes    int           `json:"total_perfumes"`
	TotalValue       float64       `json:"total_value"`
	AverageRating    float64       `json:"average_rating"`
	AverageLongevity float64       `json:"average_longevity"`
	AverageSillage   float64       `json:"average_sillage"`
	HighRated        int           `json:"high_rated"`
	TopFamily        *Count        `json:"top_family,omitempty"`
	TopConcentration *Count        `json:"top_concentration,omitempty"`
	Families         []Count       `json:"families"`
	Seasons          []SeasonShare `json:"seasons"`
	Notes            NoteTiers     `json:"notes"`
}

// Count is a label with its number of occurrences.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SeasonShare struct {
	Season  Season  `json:"season"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type NoteShare struct {
	Note    string  `json:"note"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type NoteTiers struct {
	Top    []NoteShare `json:"top"`
	Middle []NoteShare `json:"middle"`
	Base   []NoteShare `json:"base"`
}
