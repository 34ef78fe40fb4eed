// Package di provides dependency injection configuration for the StayNest client.
package di

import (
	"github.com/samber/do/v2"

	"github.com/staynestapp/staynest-client/internal/di/providers"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideNotifier)

	// Data layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideGateway)

	// Business services
	do.Provide(injector, providers.ProvideSessionService)
	do.Provide(injector, providers.ProvideBookingService)
	do.Provide(injector, providers.ProvideFavoriteService)

	// Application
	do.Provide(injector, providers.ProvideApp)

	return injector
}
