package service

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

import (
	"context"

	"github.com/okian/olympia/internal/domain/model"
)

// Source provides the Olympic Games collections.
type Source interface {
	Disciplines(ctx context.Context) ([]model.Discipline, error)
	Countries(ctx context.Context, page int) (model.CountryPage, error)
	Events(ctx context.Context, page int) (model.EventPage, error)
}
