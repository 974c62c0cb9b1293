package app

import (
	"go.trai.ch/glhost/internal/core/ports"
)

// Components bundles the fully wired application with the pieces the CLI
// layer needs direct access to.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
