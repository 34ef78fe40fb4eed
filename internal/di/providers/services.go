package providers

import (
	"github.com/samber/do/v2"

	"github.com/staynestapp/staynest-client/internal/app"
	"github.com/staynestapp/staynest-client/internal/gateway"
	"github.com/staynestapp/staynest-client/internal/logger"
	"github.com/staynestapp/staynest-client/internal/notify"
	"github.com/staynestapp/staynest-client/internal/service"
	"github.com/staynestapp/staynest-client/internal/validation"
)

// ProvideSessionService provides the session service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSessionService(gw, storeHandle.Store, v, log.Logger), nil
}

// ProvideBookingService provides the booking service.
func ProvideBookingService(i do.Injector) (*service.BookingService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookingService(gw, v, log.Logger), nil
}

// ProvideFavoriteService provides the favorite service.
func ProvideFavoriteService(i do.Injector) (*service.FavoriteService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFavoriteService(gw, log.Logger), nil
}

// ProvideApp provides the application controller.
func ProvideApp(i do.Injector) (*app.App, error) {
	session := do.MustInvoke[*service.SessionService](i)
	bookings := do.MustInvoke[*service.BookingService](i)
	favorites := do.MustInvoke[*service.FavoriteService](i)
	gw := do.MustInvoke[*gateway.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	notifier := do.MustInvoke[notify.Notifier](i)
	log := do.MustInvoke[*logger.Logger](i)

	return app.New(session, bookings, favorites, gw, storeHandle.Store, notifier, log.Logger), nil
}
