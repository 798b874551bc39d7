package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posada/config"
	"posada/infras/otel/mocks"
	customerDto "posada/internal/domains/customer/model/dto"
	customerSvcMocks "posada/internal/domains/customer/service/mocks"
	hotelDto "posada/internal/domains/hotel/model/dto"
	hotelSvcMocks "posada/internal/domains/hotel/service/mocks"
	"posada/internal/domains/reservation/guard"
	reservationMocks "posada/internal/domains/reservation/mocks"
	"posada/internal/domains/reservation/model"
	"posada/internal/domains/reservation/model/dto"
	"posada/internal/domains/reservation/service"
	"posada/internal/events"
	eventMocks "posada/internal/events/mocks"
	"posada/shared/cache"
	cacheMocks "posada/shared/cache/mocks"
	"posada/shared/failure"
)

type testMocks struct {
	repo      *reservationMocks.MockReservation
	hotels    *hotelSvcMocks.MockHotel
	customers *customerSvcMocks.MockCustomer
	publisher *eventMocks.MockPublisher
}

func newTestService(t *testing.T) (service.Reservation, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := testMocks{
		repo:      reservationMocks.NewMockReservation(ctrl),
		hotels:    hotelSvcMocks.NewMockHotel(ctrl),
		customers: customerSvcMocks.NewMockCustomer(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(
		m.repo,
		m.hotels,
		m.customers,
		guard.New(m.repo),
		m.publisher,
		cfg,
		mockCache,
		mocks.NewOtel(),
	)

	return svc, m
}

func intPtr(v int) *int {
	return &v
}

func TestReservationService_Create(t *testing.T) {
	req := dto.CreateReservationRequest{
		ID:         "R1",
		CustomerID: "C1",
		HotelID:    "H1",
		RoomCount:  intPtr(2),
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{})
		m.customers.EXPECT().Get(gomock.Any(), "C1").Return(customerDto.CustomerResponse{ID: "C1"}, nil)
		m.hotels.EXPECT().Get(gomock.Any(), "H1").Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 5}, nil)
		m.hotels.EXPECT().ReserveRooms(gomock.Any(), "H1", 2).Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 3}, nil)
		m.repo.EXPECT().
			SaveAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservations []model.Reservation) error {
				require.Len(t, reservations, 1)
				assert.Equal(t, model.StatusActive, reservations[0].Status)
				assert.Equal(t, 2, reservations[0].RoomCount)
				assert.False(t, reservations[0].CreatedAt.IsZero())

				return nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), events.TypeReservationCreated, "R1", gomock.Any())

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "R1", res.ID)
		assert.Equal(t, model.StatusActive, res.Status)
	})

	t.Run("room count defaults to one", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{})
		m.customers.EXPECT().Get(gomock.Any(), "C1").Return(customerDto.CustomerResponse{ID: "C1"}, nil)
		m.hotels.EXPECT().Get(gomock.Any(), "H1").Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 5}, nil)
		m.hotels.EXPECT().ReserveRooms(gomock.Any(), "H1", 1).Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 4}, nil)
		m.repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), events.TypeReservationCreated, "R1", gomock.Any())

		res, err := svc.Create(context.Background(), dto.CreateReservationRequest{ID: "R1", CustomerID: "C1", HotelID: "H1"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.RoomCount)
	})

	t.Run("duplicate id leaves inventory untouched", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{
			{ID: "R1", CustomerID: "C9", HotelID: "H9", RoomCount: 1, Status: model.StatusActive, CreatedAt: time.Now()},
		})

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("unknown customer stops before the decrement", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{})
		m.customers.EXPECT().Get(gomock.Any(), "C1").Return(customerDto.CustomerResponse{}, failure.NotFound("customer", "C1"))

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("unknown hotel stops before the decrement", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{})
		m.customers.EXPECT().Get(gomock.Any(), "C1").Return(customerDto.CustomerResponse{ID: "C1"}, nil)
		m.hotels.EXPECT().Get(gomock.Any(), "H1").Return(hotelDto.HotelResponse{}, failure.NotFound("hotel", "H1"))

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("insufficient inventory is a conflict", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{})
		m.customers.EXPECT().Get(gomock.Any(), "C1").Return(customerDto.CustomerResponse{ID: "C1"}, nil)
		m.hotels.EXPECT().Get(gomock.Any(), "H1").Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 1}, nil)
		m.hotels.EXPECT().ReserveRooms(gomock.Any(), "H1", 2).Return(hotelDto.HotelResponse{}, failure.Conflict("not enough rooms available"))

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("persist error", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{})
		m.customers.EXPECT().Get(gomock.Any(), "C1").Return(customerDto.CustomerResponse{ID: "C1"}, nil)
		m.hotels.EXPECT().Get(gomock.Any(), "H1").Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 5}, nil)
		m.hotels.EXPECT().ReserveRooms(gomock.Any(), "H1", 2).Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 3}, nil)
		m.repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestReservationService_Cancel(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	active := model.Reservation{
		ID:         "R1",
		CustomerID: "C1",
		HotelID:    "H1",
		RoomCount:  2,
		Status:     model.StatusActive,
		CreatedAt:  createdAt,
	}

	t.Run("cancelling restores the room count", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{active})
		m.hotels.EXPECT().Get(gomock.Any(), "H1").Return(hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 3}, nil)
		m.hotels.EXPECT().
			Update(gomock.Any(), gomock.Any(), "H1").
			DoAndReturn(func(_ context.Context, req hotelDto.UpdateHotelRequest, _ string) (hotelDto.HotelResponse, error) {
				require.NotNil(t, req.RoomsAvailable)
				assert.Equal(t, 5, *req.RoomsAvailable)

				return hotelDto.HotelResponse{ID: "H1", RoomsTotal: 5, RoomsAvailable: 5}, nil
			})
		m.repo.EXPECT().
			SaveAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservations []model.Reservation) error {
				require.Len(t, reservations, 1)
				assert.Equal(t, model.StatusCancelled, reservations[0].Status)
				assert.Equal(t, createdAt, reservations[0].CreatedAt)

				return nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), events.TypeReservationCancelled, "R1", gomock.Any())

		res, err := svc.Cancel(context.Background(), "R1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, res.Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		svc, m := newTestService(t)

		cancelled := active
		cancelled.Status = model.StatusCancelled

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{cancelled})

		_, err := svc.Cancel(context.Background(), "R1")
		require.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{})

		_, err := svc.Cancel(context.Background(), "R404")
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestReservationService_Get(t *testing.T) {
	svc, m := newTestService(t)

	stored := []model.Reservation{{ID: "R1", CustomerID: "C1", HotelID: "H1", RoomCount: 1, Status: model.StatusActive, CreatedAt: time.Now()}}
	m.repo.EXPECT().LoadAll(gomock.Any()).Return(stored).Times(2)

	res, err := svc.Get(context.Background(), "R1")
	require.NoError(t, err)
	assert.Equal(t, "R1", res.ID)

	_, err = svc.Get(context.Background(), "R404")
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}

func TestReservationService_GetAll(t *testing.T) {
	svc, m := newTestService(t)

	m.repo.EXPECT().LoadAll(gomock.Any()).Return([]model.Reservation{
		{ID: "R1", CustomerID: "C1", HotelID: "H1", RoomCount: 1, Status: model.StatusActive, CreatedAt: time.Now()},
		{ID: "R2", CustomerID: "C2", HotelID: "H1", RoomCount: 2, Status: model.StatusCancelled, CreatedAt: time.Now()},
	})

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, model.StatusCancelled, res.Reservations[1].Status)
}

func TestReservationService_HasActive(t *testing.T) {
	stored := []model.Reservation{
		{ID: "R1", CustomerID: "C1", HotelID: "H1", RoomCount: 1, Status: model.StatusActive, CreatedAt: time.Now()},
		{ID: "R2", CustomerID: "C2", HotelID: "H2", RoomCount: 1, Status: model.StatusCancelled, CreatedAt: time.Now()},
	}

	t.Run("hotel with an active reservation", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(stored)

		assert.True(t, svc.HasActiveForHotel(context.Background(), "H1"))
	})

	t.Run("hotel with only cancelled reservations", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(stored)

		assert.False(t, svc.HasActiveForHotel(context.Background(), "H2"))
	})

	t.Run("customer with an active reservation", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(stored)

		assert.True(t, svc.HasActiveForCustomer(context.Background(), "C1"))
	})

	t.Run("customer with only cancelled reservations", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(stored)

		assert.False(t, svc.HasActiveForCustomer(context.Background(), "C2"))
	})
}
