package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/infras/otel"
	"posada/internal/domains/hotel/model"
	"posada/internal/domains/hotel/model/dto"
	"posada/internal/domains/hotel/repository"
	"posada/shared"
	"posada/shared/cache"
	"posada/shared/constant"
	"posada/shared/failure"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
)

// ReservationGuard answers whether an ACTIVE reservation still references a
// hotel. It is implemented by the reservation domain and injected here to keep
// the two domains from depending on each other directly.
type ReservationGuard interface {
	HasActiveForHotel(ctx context.Context, hotelID string) bool
}

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (dto.HotelResponse, error)
	Delete(ctx context.Context, id string) error
	ReserveRooms(ctx context.Context, id string, count int) (dto.HotelResponse, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	guard ReservationGuard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, guard ReservationGuard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		guard: guard,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel := req.ToModel()
	if err = hotel.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid hotel")

		return res, err
	}

	hotels := s.repo.LoadAll(ctx)
	for _, h := range hotels {
		if h.ID == hotel.ID {
			return res, failure.Conflict("hotel already exists: " + hotel.ID) // nolint:wrapcheck
		}
	}

	hotels = append(hotels, hotel)
	if err = s.repo.SaveAll(ctx, hotels); err != nil {
		log.Error().Err(err).Msg("failed to persist hotels")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	s.invalidate(ctx, hotel.ID)

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllHotel, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllHotel).Msg("cache hit for hotels")

		return res, nil
	}

	hotels := s.repo.LoadAll(ctx)
	res.FromModels(hotels)

	if err := s.cache.Save(ctx, cacheGetAllHotel, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save hotels to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotels := s.repo.LoadAll(ctx)
	for _, h := range hotels {
		if h.ID != id {
			continue
		}

		res.FromModel(h)

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}

		return res, nil
	}

	return res, failure.NotFound(model.EntityName, id) // nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotels := s.repo.LoadAll(ctx)

	found := -1
	for i, h := range hotels {
		if h.ID == id {
			found = i

			break
		}
	}

	if found < 0 {
		return res, failure.NotFound(model.EntityName, id) // nolint:wrapcheck
	}

	merged := req.Merge(hotels[found])
	if err = merged.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid hotel after merge")

		return res, err
	}

	hotels[found] = merged
	if err = s.repo.SaveAll(ctx, hotels); err != nil {
		log.Error().Err(err).Msg("failed to persist hotels")

		return res, fmt.Errorf("failed to update hotel: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(merged)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotels := s.repo.LoadAll(ctx)

	found := false
	remaining := make([]model.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.ID == id {
			found = true

			continue
		}

		remaining = append(remaining, h)
	}

	if !found {
		return failure.NotFound(model.EntityName, id) // nolint:wrapcheck
	}

	if s.guard.HasActiveForHotel(ctx, id) {
		return failure.Conflict("cannot delete hotel with active reservations") // nolint:wrapcheck
	}

	if err = s.repo.SaveAll(ctx, remaining); err != nil {
		log.Error().Err(err).Msg("failed to persist hotels")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ReserveRooms(ctx context.Context, id string, count int) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReserveRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	if count <= 0 {
		return res, failure.Validation("room_count must be positive") // nolint:wrapcheck
	}

	hotels := s.repo.LoadAll(ctx)

	found := -1
	for i, h := range hotels {
		if h.ID == id {
			found = i

			break
		}
	}

	if found < 0 {
		return res, failure.NotFound(model.EntityName, id) // nolint:wrapcheck
	}

	if hotels[found].RoomsAvailable < count {
		return res, failure.Conflict("not enough rooms available") // nolint:wrapcheck
	}

	hotels[found].RoomsAvailable -= count
	if err = s.repo.SaveAll(ctx, hotels); err != nil {
		log.Error().Err(err).Msg("failed to persist hotels")

		return res, fmt.Errorf("failed to reserve rooms: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(hotels[found])

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllHotel)
}
