//go:build wireinject
// +build wireinject

package di

import (
	"posada/config"
	"posada/infras/kafka"
	"posada/infras/otel"
	"posada/infras/redis"
	"posada/internal/events"
	customerHandler "posada/internal/handlers/customer"
	hotelHandler "posada/internal/handlers/hotel"
	reservationHandler "posada/internal/handlers/reservation"
	"posada/shared/cache"
	"posada/transport/http"
	"posada/transport/http/middleware"
	"posada/transport/http/router"

	customerRepository "posada/internal/domains/customer/repository"
	customerService "posada/internal/domains/customer/service"
	hotelRepository "posada/internal/domains/hotel/repository"
	hotelService "posada/internal/domains/hotel/service"
	"posada/internal/domains/reservation/guard"
	reservationRepository "posada/internal/domains/reservation/repository"
	reservationService "posada/internal/domains/reservation/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	guard.New,
	wire.Bind(new(hotelService.ReservationGuard), new(*guard.Query)),
	wire.Bind(new(customerService.ReservationGuard), new(*guard.Query)),
	events.New,
	reservationService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	customerDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	customerHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
