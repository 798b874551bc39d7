package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"path/filepath"

	"posada/config"
	"posada/infras/jsonstore"
	"posada/infras/otel"
	"posada/internal/domains/customer/model"
	gRepo "posada/shared/repository"
)

type Customer interface {
	LoadAll(ctx context.Context) []model.Customer
	SaveAll(ctx context.Context, customers []model.Customer) error
}

type repositoryImpl struct {
	*gRepo.Collection[model.Customer]
}

func New(cfg *config.Config, otel otel.Otel) Customer {
	store := jsonstore.New(filepath.Join(cfg.Data.Dir, model.FileName))

	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Customer](model.EntityName, store, otel),
	}
}
