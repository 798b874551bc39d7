package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/infras/otel"
	customerService "posada/internal/domains/customer/service"
	hotelDto "posada/internal/domains/hotel/model/dto"
	hotelService "posada/internal/domains/hotel/service"
	"posada/internal/domains/reservation/guard"
	"posada/internal/domains/reservation/model"
	"posada/internal/domains/reservation/model/dto"
	"posada/internal/domains/reservation/repository"
	"posada/internal/events"
	"posada/shared"
	"posada/shared/cache"
	"posada/shared/constant"
	"posada/shared/failure"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	HasActiveForHotel(ctx context.Context, hotelID string) bool
	HasActiveForCustomer(ctx context.Context, customerID string) bool
}

type serviceImpl struct {
	repo      repository.Reservation
	hotels    hotelService.Hotel
	customers customerService.Customer
	guard     *guard.Query
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	hotels hotelService.Hotel,
	customers customerService.Customer,
	guard *guard.Query,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		hotels:    hotels,
		customers: customers,
		guard:     guard,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create books rooms for a customer. The uniqueness check runs before the
// inventory decrement, so a duplicate reservation id never leaves the hotel
// collection mutated. The decrement and the reservation append remain two
// separate store writes with no cross-collection transaction between them.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation := req.ToModel()
	if err = reservation.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid reservation")

		return res, err
	}

	reservations := s.repo.LoadAll(ctx)
	for _, r := range reservations {
		if r.ID == reservation.ID {
			return res, failure.Conflict("reservation already exists: " + reservation.ID) // nolint:wrapcheck
		}
	}

	if _, err = s.customers.Get(ctx, reservation.CustomerID); err != nil {
		log.Error().Err(err).Str("customer_id", reservation.CustomerID).Msg("customer lookup failed")

		return res, err
	}

	if _, err = s.hotels.Get(ctx, reservation.HotelID); err != nil {
		log.Error().Err(err).Str("hotel_id", reservation.HotelID).Msg("hotel lookup failed")

		return res, err
	}

	// re-checks existence and availability, then persists the decrement
	if _, err = s.hotels.ReserveRooms(ctx, reservation.HotelID, reservation.RoomCount); err != nil {
		log.Error().Err(err).Str("hotel_id", reservation.HotelID).Msg("failed to reserve rooms")

		return res, err
	}

	reservations = append(reservations, reservation)
	if err = s.repo.SaveAll(ctx, reservations); err != nil {
		log.Error().Err(err).Msg("failed to persist reservations")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.invalidate(ctx, reservation.ID)
	s.publisher.Publish(ctx, events.TypeReservationCreated, reservation.ID, reservation)

	res.FromModel(reservation)

	return res, nil
}

// Cancel flips an ACTIVE reservation to CANCELLED and restores the exact room
// count it had taken from the hotel. CANCELLED is terminal: re-cancelling is
// rejected. The original creation timestamp is preserved.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservations := s.repo.LoadAll(ctx)

	found := -1
	for i, r := range reservations {
		if r.ID == id {
			found = i

			break
		}
	}

	if found < 0 {
		return res, failure.NotFound(model.EntityName, id) // nolint:wrapcheck
	}

	if !reservations[found].IsActive() {
		return res, failure.Conflict("reservation already cancelled") // nolint:wrapcheck
	}

	hotel, err := s.hotels.Get(ctx, reservations[found].HotelID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", reservations[found].HotelID).Msg("hotel lookup failed")

		return res, err
	}

	restored := hotel.RoomsAvailable + reservations[found].RoomCount
	if _, err = s.hotels.Update(ctx, hotelDto.UpdateHotelRequest{RoomsAvailable: &restored}, hotel.ID); err != nil {
		log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to restore room availability")

		return res, err
	}

	reservations[found].Status = model.StatusCancelled
	if err = s.repo.SaveAll(ctx, reservations); err != nil {
		log.Error().Err(err).Msg("failed to persist reservations")

		return res, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.invalidate(ctx, id)
	s.publisher.Publish(ctx, events.TypeReservationCancelled, id, reservations[found])

	res.FromModel(reservations[found])

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllReservation, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllReservation).Msg("cache hit for reservations")

		return res, nil
	}

	reservations := s.repo.LoadAll(ctx)
	res.FromModels(reservations)

	if err := s.cache.Save(ctx, cacheGetAllReservation, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save reservations to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservations := s.repo.LoadAll(ctx)
	for _, r := range reservations {
		if r.ID != id {
			continue
		}

		res.FromModel(r)

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}

		return res, nil
	}

	return res, failure.NotFound(model.EntityName, id) // nolint:wrapcheck
}

func (s *serviceImpl) HasActiveForHotel(ctx context.Context, hotelID string) bool {
	return s.guard.HasActiveForHotel(ctx, hotelID)
}

func (s *serviceImpl) HasActiveForCustomer(ctx context.Context, customerID string) bool {
	return s.guard.HasActiveForCustomer(ctx, customerID)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)
}
