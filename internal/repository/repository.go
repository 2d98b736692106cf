package repository

import (
	"context"
	"fmt"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// Store описывает хранилище маппингов код-URL.
// Реализации: in-memory, файловое и PostgreSQL
type Store interface {
	CreateURL(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error)
	CreateBatch(ctx context.Context, urls map[model.Code]model.URL) error
	FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error)
	FindCodeByURL(ctx context.Context, url model.URL) (model.Code, error)
	ResolveURL(ctx context.Context, code model.Code) (model.URL, error)
	AddClick(ctx context.Context, code model.Code) error
	CodeExists(ctx context.Context, code model.Code) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Ping проверяет доступность хранилища
func (r Repository) Ping(ctx context.Context) error {
	if err := r.underlying.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping store: %w", err)
	}

	return nil
}

// Close освобождает ресурсы хранилища
func (r Repository) Close() error {
	if err := r.underlying.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}

	return nil
}
