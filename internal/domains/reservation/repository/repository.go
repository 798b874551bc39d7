package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"path/filepath"

	"posada/config"
	"posada/infras/jsonstore"
	"posada/infras/otel"
	"posada/internal/domains/reservation/model"
	gRepo "posada/shared/repository"
)

type Reservation interface {
	LoadAll(ctx context.Context) []model.Reservation
	SaveAll(ctx context.Context, reservations []model.Reservation) error
}

type repositoryImpl struct {
	*gRepo.Collection[model.Reservation]
}

func New(cfg *config.Config, otel otel.Otel) Reservation {
	store := jsonstore.New(filepath.Join(cfg.Data.Dir, model.FileName))

	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Reservation](model.EntityName, store, otel),
	}
}
