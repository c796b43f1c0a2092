//go:build wireinject
// +build wireinject

package di

import (
	"classbooking/config"
	"classbooking/infras/kafka"
	"classbooking/infras/otel"
	"classbooking/infras/postgres"
	"classbooking/infras/redis"
	healthHandler "classbooking/internal/handlers/health"
	slotHandler "classbooking/internal/handlers/slot"
	"classbooking/shared/cache"
	"classbooking/transport/http"
	"classbooking/transport/http/middleware"
	"classbooking/transport/http/router"

	"classbooking/internal/domains/classroom/catalog"
	classroomRepository "classbooking/internal/domains/classroom/repository"

	allocationRepository "classbooking/internal/domains/allocation/repository"
	allocationService "classbooking/internal/domains/allocation/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTxRunner,
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

var classroomDomain = wire.NewSet(
	catalog.New,
	classroomRepository.New,
)

var allocationDomain = wire.NewSet(
	allocationRepository.NewDateAllocation,
	allocationRepository.NewTimeAllocation,
	allocationService.New,
)

var domains = wire.NewSet(
	classroomDomain,
	allocationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	slotHandler.New,
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
