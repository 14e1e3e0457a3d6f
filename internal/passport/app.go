// Package passport wires the travel domain to storage and exposes the
// services that commands and the TUI consume.
package passport

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/passport/internal/core/config"
	"github.com/colonyops/passport/internal/core/geo"
	"github.com/colonyops/passport/internal/core/kv"
)

// App is the central entry point for all passport operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Travel  *TravelService
	Doctor  *DoctorService
	Reports *ReportService

	Config  *config.Config
	Atlas   *geo.Atlas
	Backend *Backend
}

// NewApp constructs an App over an opened backend.
func NewApp(backend *Backend, cfg *config.Config, atlas *geo.Atlas, log zerolog.Logger) *App {
	travelSvc := NewTravelService(backend.Store, atlas, log.With().Str("component", "travel").Logger())
	return &App{
		Travel:  travelSvc,
		Doctor:  NewDoctorService(travelSvc, backend.Store, backend.Schema, cfg, atlas),
		Reports: NewReportService(travelSvc, atlas, cfg),
		Config:  cfg,
		Atlas:   atlas,
		Backend: backend,
	}
}

// Store returns the key-value store backing the app.
func (a *App) Store() kv.KV { return a.Backend.Store }
