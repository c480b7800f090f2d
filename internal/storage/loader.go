package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
)

// LoadPerfumesFromFile reads a JSON array of perfumes.
func LoadPerfumesFromFile(path string) ([]domain.Perfume, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read perfumes file: %w", err)
	}

	var perfumes []domain.Perfume
	if err := json.Unmarshal(b, &perfumes); err != nil {
		return nil, fmt.Errorf("unmarshal perfumes: %w", err)
	}
	return perfumes, nil
}

// SeedIfEmpty loads the file at path into an empty store and reports how many
// perfumes were inserted. A store that already has data is left untouched.
func (s *SQLiteStore) SeedIfEmpty(ctx context.Context, path string) (int, error) {
	n, err := s.CountPerfumes(ctx)
	if err != nil {
		return 0, fmt.Errorf("count perfumes: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	perfumes, err := LoadPerfumesFromFile(path)
	if err != nil {
		return 0, err
	}
	if err := s.UpsertMany(ctx, perfumes); err != nil {
		return 0, fmt.Errorf("seed perfumes: %w", err)
	}
	return len(perfumes), nil
}
