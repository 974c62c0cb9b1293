// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/glhost/internal/adapters/cachestore"
	_ "go.trai.ch/glhost/internal/adapters/classify"
	_ "go.trai.ch/glhost/internal/adapters/config"
	_ "go.trai.ch/glhost/internal/adapters/eglvendor"
	_ "go.trai.ch/glhost/internal/adapters/fs"
	_ "go.trai.ch/glhost/internal/adapters/launcher"
	_ "go.trai.ch/glhost/internal/adapters/ldpath"
	_ "go.trai.ch/glhost/internal/adapters/lock"
	_ "go.trai.ch/glhost/internal/adapters/logger"
	_ "go.trai.ch/glhost/internal/adapters/patchelf"
	_ "go.trai.ch/glhost/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/glhost/internal/app"
	_ "go.trai.ch/glhost/internal/engine/builder"
)
