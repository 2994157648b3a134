// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.limmat.ch/packrat/internal/adapters/apt"
	_ "go.limmat.ch/packrat/internal/adapters/aptly"
	_ "go.limmat.ch/packrat/internal/adapters/config"
	_ "go.limmat.ch/packrat/internal/adapters/debian"
	_ "go.limmat.ch/packrat/internal/adapters/detector"
	_ "go.limmat.ch/packrat/internal/adapters/fs"
	_ "go.limmat.ch/packrat/internal/adapters/gitvcs"
	_ "go.limmat.ch/packrat/internal/adapters/httpfetch"
	_ "go.limmat.ch/packrat/internal/adapters/journal"
	_ "go.limmat.ch/packrat/internal/adapters/logger"
	_ "go.limmat.ch/packrat/internal/adapters/pool"
	_ "go.limmat.ch/packrat/internal/adapters/shell"
	_ "go.limmat.ch/packrat/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.limmat.ch/packrat/internal/app"
	_ "go.limmat.ch/packrat/internal/engine/pipeline"
)
