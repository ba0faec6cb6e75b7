//go:build !ebiten

package app

import (
	"errors"
	"log/slog"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the windowed runner requires building with -tags ebiten")

// Run reports that the GUI build tag is missing.
func Run(*Config, *slog.Logger) error {
	return ErrNoGUI
}
