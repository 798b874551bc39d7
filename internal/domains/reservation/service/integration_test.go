package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posada/config"
	"posada/infras/otel/mocks"
	customerDto "posada/internal/domains/customer/model/dto"
	customerRepository "posada/internal/domains/customer/repository"
	customerService "posada/internal/domains/customer/service"
	hotelDto "posada/internal/domains/hotel/model/dto"
	hotelRepository "posada/internal/domains/hotel/repository"
	hotelService "posada/internal/domains/hotel/service"
	"posada/internal/domains/reservation/guard"
	"posada/internal/domains/reservation/model"
	"posada/internal/domains/reservation/model/dto"
	reservationRepository "posada/internal/domains/reservation/repository"
	"posada/internal/domains/reservation/service"
	"posada/internal/events"
	"posada/shared/cache"
	cacheMocks "posada/shared/cache/mocks"
	"posada/shared/failure"
)

type fixture struct {
	hotels       hotelService.Hotel
	customers    customerService.Customer
	reservations service.Reservation
}

// newFixture wires the three services over real file-backed repositories in a
// temp directory, so every mutation goes through a full load, mutate, save
// cycle against actual store files.
func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Data.Dir = t.TempDir()

	ot := mocks.NewOtel()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	reservationRepo := reservationRepository.New(cfg, ot)
	guardQuery := guard.New(reservationRepo)

	hotels := hotelService.New(hotelRepository.New(cfg, ot), guardQuery, cfg, mockCache, ot)
	customers := customerService.New(customerRepository.New(cfg, ot), guardQuery, cfg, mockCache, ot)
	reservations := service.New(
		reservationRepo, hotels, customers, guardQuery, events.New(cfg, nil, ot), cfg, mockCache, ot,
	)

	return fixture{hotels: hotels, customers: customers, reservations: reservations}
}

func TestReservationLifecycleAgainstStores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	available := 5
	_, err := f.hotels.Create(ctx, hotelDto.CreateHotelRequest{
		ID:             "H1",
		Name:           "Grand Plaza",
		RoomsTotal:     5,
		RoomsAvailable: &available,
	})
	require.NoError(t, err)

	_, err = f.customers.Create(ctx, customerDto.CreateCustomerRequest{
		ID:    "C1",
		Name:  "Alice",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	rooms := 2
	res, err := f.reservations.Create(ctx, dto.CreateReservationRequest{
		ID:         "R1",
		CustomerID: "C1",
		HotelID:    "H1",
		RoomCount:  &rooms,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, res.Status)

	hotel, err := f.hotels.Get(ctx, "H1")
	require.NoError(t, err)
	assert.Equal(t, 3, hotel.RoomsAvailable)

	t.Run("guards block deletes while the reservation is active", func(t *testing.T) {
		err := f.hotels.Delete(ctx, "H1")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))

		err = f.customers.Delete(ctx, "C1")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("duplicate id conflicts and leaves inventory untouched", func(t *testing.T) {
		_, err := f.reservations.Create(ctx, dto.CreateReservationRequest{
			ID:         "R1",
			CustomerID: "C1",
			HotelID:    "H1",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))

		hotel, err := f.hotels.Get(ctx, "H1")
		require.NoError(t, err)
		assert.Equal(t, 3, hotel.RoomsAvailable)
	})

	t.Run("cancel restores availability and keeps the record", func(t *testing.T) {
		cancelled, err := f.reservations.Cancel(ctx, "R1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, cancelled.Status)
		assert.Equal(t, res.CreatedAt, cancelled.CreatedAt)

		hotel, err := f.hotels.Get(ctx, "H1")
		require.NoError(t, err)
		assert.Equal(t, 5, hotel.RoomsAvailable)

		kept, err := f.reservations.Get(ctx, "R1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, kept.Status)
	})

	t.Run("cancel again conflicts", func(t *testing.T) {
		_, err := f.reservations.Cancel(ctx, "R1")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("deletes succeed once the reservation is cancelled", func(t *testing.T) {
		require.NoError(t, f.hotels.Delete(ctx, "H1"))
		require.NoError(t, f.customers.Delete(ctx, "C1"))
	})
}
