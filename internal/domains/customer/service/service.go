package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/infras/otel"
	"posada/internal/domains/customer/model"
	"posada/internal/domains/customer/model/dto"
	"posada/internal/domains/customer/repository"
	"posada/shared"
	"posada/shared/cache"
	"posada/shared/constant"
	"posada/shared/failure"
)

const (
	cacheGetCustomer    = "customer:get"
	cacheGetAllCustomer = "customer:gets"
)

// ReservationGuard answers whether an ACTIVE reservation still references a
// customer. Implemented by the reservation domain.
type ReservationGuard interface {
	HasActiveForCustomer(ctx context.Context, customerID string) bool
}

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	GetAll(ctx context.Context) (dto.GetCustomersResponse, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (dto.CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Customer
	guard ReservationGuard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, guard ReservationGuard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		guard: guard,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer := req.ToModel()
	if err = customer.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid customer")

		return res, err
	}

	customers := s.repo.LoadAll(ctx)
	for _, c := range customers {
		if c.ID == customer.ID {
			return res, failure.Conflict("customer already exists: " + customer.ID) // nolint:wrapcheck
		}
	}

	customers = append(customers, customer)
	if err = s.repo.SaveAll(ctx, customers); err != nil {
		log.Error().Err(err).Msg("failed to persist customers")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	s.invalidate(ctx, customer.ID)

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomers")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllCustomer, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllCustomer).Msg("cache hit for customers")

		return res, nil
	}

	customers := s.repo.LoadAll(ctx)
	res.FromModels(customers)

	if err := s.cache.Save(ctx, cacheGetAllCustomer, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save customers to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customers := s.repo.LoadAll(ctx)
	for _, c := range customers {
		if c.ID != id {
			continue
		}

		res.FromModel(c)

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}

		return res, nil
	}

	return res, failure.NotFound(model.EntityName, id) // nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customers := s.repo.LoadAll(ctx)

	found := -1
	for i, c := range customers {
		if c.ID == id {
			found = i

			break
		}
	}

	if found < 0 {
		return res, failure.NotFound(model.EntityName, id) // nolint:wrapcheck
	}

	merged := req.Merge(customers[found])
	if err = merged.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid customer after merge")

		return res, err
	}

	customers[found] = merged
	if err = s.repo.SaveAll(ctx, customers); err != nil {
		log.Error().Err(err).Msg("failed to persist customers")

		return res, fmt.Errorf("failed to update customer: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(merged)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customers := s.repo.LoadAll(ctx)

	found := false
	remaining := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID == id {
			found = true

			continue
		}

		remaining = append(remaining, c)
	}

	if !found {
		return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
	}

	if s.guard.HasActiveForCustomer(ctx, id) {
		return failure.Conflict("cannot delete customer with active reservations") // nolint:wrapcheck
	}

	if err = s.repo.SaveAll(ctx, remaining); err != nil {
		log.Error().Err(err).Msg("failed to persist customers")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetCustomer, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete customer cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCustomer)
}
