// Package providers contains dependency injection providers for the StayNest client.
package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/staynestapp/staynest-client/internal/config"
	"github.com/staynestapp/staynest-client/internal/logger"
	"github.com/staynestapp/staynest-client/internal/notify"
	"github.com/staynestapp/staynest-client/internal/validation"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting StayNest client",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"store_url", cfg.Store.BaseURL,
	)

	return log, nil
}

// ProvideSlogLogger provides the underlying slog.Logger for packages that need it.
func ProvideSlogLogger(i do.Injector) (*slog.Logger, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return log.Logger, nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideNotifier provides the user-facing notifier.
func ProvideNotifier(i do.Injector) (notify.Notifier, error) {
	log := do.MustInvoke[*slog.Logger](i)
	return notify.NewLogNotifier(log), nil
}
