package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"path/filepath"

	"posada/config"
	"posada/infras/jsonstore"
	"posada/infras/otel"
	"posada/internal/domains/hotel/model"
	gRepo "posada/shared/repository"
)

type Hotel interface {
	LoadAll(ctx context.Context) []model.Hotel
	SaveAll(ctx context.Context, hotels []model.Hotel) error
}

type repositoryImpl struct {
	*gRepo.Collection[model.Hotel]
}

func New(cfg *config.Config, otel otel.Otel) Hotel {
	store := jsonstore.New(filepath.Join(cfg.Data.Dir, model.FileName))

	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Hotel](model.EntityName, store, otel),
	}
}
