package passport

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/passport/internal/core/config"
	"github.com/colonyops/passport/internal/core/doctor"
	"github.com/colonyops/passport/internal/core/geo"
	"github.com/colonyops/passport/internal/core/travel"
)

func newTestApp(t *testing.T, backend config.Backend) *App {
	t.Helper()

	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)
	cfg.Storage.Backend = backend

	b, err := OpenBackend(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	app := NewApp(b, cfg, geo.New(), zerolog.Nop())
	require.NoError(t, app.Travel.Load(context.Background()))
	return app
}

func resultNamed(results []doctor.Result, name string) doctor.Result {
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	return doctor.Result{}
}

func TestDoctorService_CleanSetup(t *testing.T) {
	app := newTestApp(t, config.BackendSQLite)
	ctx := context.Background()

	_, err := app.Travel.AddVisitedCountry(ctx, "France", travel.OriginForm)
	require.NoError(t, err)

	results := app.Doctor.RunChecks(ctx, "", false)
	require.Len(t, results, 4)

	_, _, failed := doctor.Summary(results)
	assert.Zero(t, failed)

	storage := resultNamed(results, "Storage")
	require.NotEmpty(t, storage.Items)
	assert.Equal(t, doctor.StatusPass, storage.Items[len(storage.Items)-1].Status, "schema is current")
}

func TestDoctorService_AutofixRepairsLegacyData(t *testing.T) {
	app := newTestApp(t, config.BackendMemory)
	ctx := context.Background()

	require.NoError(t, app.Store().Set(ctx, travel.KeyVisitedCountries, []string{"France", "France"}))
	require.NoError(t, app.Travel.Load(ctx))

	results := app.Doctor.RunChecks(ctx, "", false)
	assert.Positive(t, doctor.CountFixable(results))

	results = app.Doctor.RunChecks(ctx, "", true)
	_, _, failed := doctor.Summary(results)
	assert.Zero(t, failed)

	assert.Equal(t, []string{"France"}, app.Travel.State().VisitedNames())
	assert.Equal(t, travel.FormatStructured, app.Travel.Format())

	results = app.Doctor.RunChecks(ctx, "", false)
	assert.Zero(t, doctor.CountFixable(results))
}

func TestDoctorService_UnreadableData(t *testing.T) {
	app := newTestApp(t, config.BackendMemory)
	ctx := context.Background()

	require.NoError(t, app.Store().Set(ctx, travel.KeyVisitedCountries, map[string]int{"France": 1}))

	results := app.Doctor.RunChecks(ctx, "", true)
	data := resultNamed(results, "Travel Data")
	require.Len(t, data.Items, 1)
	assert.Equal(t, doctor.StatusFail, data.Items[0].Status)
}
