package app

import (
	"fmt"

	"github.com/staynestapp/staynest-client/internal/errors"
)

// SafeRender runs a render function under a panic boundary. A panicking
// renderer yields a diagnostic fallback instead of taking the whole
// client down, and the fault is logged with the panic value.
func (a *App) SafeRender(name string, render func() string) string {
	out, err := a.renderGuarded(name, render)
	if err != nil {
		a.logger.Error("render fault", "view", name, "error", err)
		return fmt.Sprintf("Something went wrong rendering %s. Please try again.", name)
	}
	return out
}

func (a *App) renderGuarded(name string, render func() string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Render(fmt.Sprintf("%s panicked: %v", name, r))
		}
	}()
	return render(), nil
}
