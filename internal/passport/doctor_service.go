package passport

import (
	"context"
	"path/filepath"
	"time"

	"github.com/colonyops/passport/internal/core/config"
	"github.com/colonyops/passport/internal/core/doctor"
	"github.com/colonyops/passport/internal/core/kv"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/data/db"
)

// DoctorService runs health checks on the passport setup and stored data.
type DoctorService struct {
	travel *TravelService
	store  kv.KV
	schema doctor.SchemaReporter
	config *config.Config
	atlas  travel.Atlas
	now    func() time.Time
}

// NewDoctorService creates a new DoctorService. schema may be nil for
// backends without migrations.
func NewDoctorService(ts *TravelService, store kv.KV, schema doctor.SchemaReporter, cfg *config.Config, atlas travel.Atlas) *DoctorService {
	return &DoctorService{
		travel: ts,
		store:  store,
		schema: schema,
		config: cfg,
		atlas:  atlas,
		now:    time.Now,
	}
}

// RunChecks executes all doctor checks and returns results.
func (d *DoctorService) RunChecks(ctx context.Context, configPath string, autofix bool) []doctor.Result {
	checks := []doctor.Check{
		doctor.NewConfigCheck(d.config, configPath),
		doctor.NewPathsCheck(d.paths(configPath)...),
		doctor.NewStorageCheck(string(d.config.Storage.Backend), d.store, d.schema),
	}

	snap, err := d.travel.Snapshot(ctx)
	if err != nil {
		checks = append(checks, failedCheck{name: "Travel Data", err: err})
		return doctor.RunAll(ctx, checks)
	}

	var fix doctor.FixFunc
	if autofix {
		fix = d.travel.SaveSnapshot
	}
	checks = append(checks, doctor.NewIntegrityCheck(snap, d.atlas, d.now(), fix))

	return doctor.RunAll(ctx, checks)
}

func (d *DoctorService) paths(configPath string) []doctor.Path {
	paths := []doctor.Path{
		{Label: "data directory", Path: d.config.DataDir, Dir: true},
	}
	if configPath != "" {
		paths = append(paths, doctor.Path{Label: "config file", Path: configPath})
	}

	switch d.config.Storage.Backend {
	case config.BackendSQLite:
		paths = append(paths, doctor.Path{Label: "database", Path: filepath.Join(d.config.DataDir, db.FileName)})
	case config.BackendJSONFile:
		paths = append(paths, doctor.Path{Label: "storage directory", Path: d.config.StorageDir(), Dir: true})
	}

	if tpl := d.config.ReportTemplatePath(configPath); tpl != "" {
		paths = append(paths, doctor.Path{Label: "report template", Path: tpl})
	}
	return paths
}

// failedCheck reports a check that could not gather its input.
type failedCheck struct {
	name string
	err  error
}

func (f failedCheck) Name() string { return f.name }

func (f failedCheck) Run(context.Context) doctor.Result {
	return doctor.Result{
		Name: f.name,
		Items: []doctor.CheckItem{{
			Label:  "read",
			Status: doctor.StatusFail,
			Detail: f.err.Error(),
		}},
	}
}
