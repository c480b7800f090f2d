package httpapi

import (
	"context"

	"github.com/denisok6893-rgb/fragrance-matching/internal/domain"
	"github.com/denisok6893-rgb/fragrance-matching/internal/storage"
)

// PerfumeRepository is the collection store the API reads and writes.
type PerfumeRepository interface {
	Ping(ctx context.Context) error
	AllPerfumes(ctx context.Context) ([]domain.Perfume, error)
	ListPerfumes(ctx context.Context, f storage.ListFilter) ([]domain.Perfume, int, error)
	GetPerfume(ctx context.Context, id string) (domain.Perfume, bool, error)
	CreatePerfume(ctx context.Context, p domain.Perfume) (domain.Perfume, error)
	UpdatePerfume(ctx context.Context, p domain.Perfume) (bool, error)
	DeletePerfume(ctx context.Context, id string) (bool, error)
}

var _ PerfumeRepository = (*storage.SQLiteStore)(nil)
