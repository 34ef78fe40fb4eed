package providers

import (
	"log/slog"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/staynestapp/staynest-client/internal/config"
	"github.com/staynestapp/staynest-client/internal/gateway"
	"github.com/staynestapp/staynest-client/internal/logger"
	"github.com/staynestapp/staynest-client/internal/store"
)

// StoreHandle wraps the local state store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the local state store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.State.Dir, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Local state initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// ProvideGateway provides the remote data store client.
func ProvideGateway(i do.Injector) (*gateway.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	return gateway.New(cfg.Store.BaseURL, cfg.Store.RequestTimeout, log), nil
}
