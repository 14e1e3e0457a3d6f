package passport

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/colonyops/passport/internal/core/config"
	"github.com/colonyops/passport/internal/core/geo"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/pkg/tmpl"
)

//go:embed templates/report.md.tmpl
var defaultReportTemplate string

// DefaultReportTemplate returns the built-in markdown report template.
func DefaultReportTemplate() string { return defaultReportTemplate }

// ReportCountry is a visited country as presented in a report.
type ReportCountry struct {
	Flag      string
	Name      string
	Continent string
	Cities    []travel.City // newest first
}

// ReportWish is a wishlist entry as presented in a report.
type ReportWish struct {
	Flag string
	Name string
}

// ReportData is the value report templates execute against.
type ReportData struct {
	GeneratedAt  string
	Year         int
	Stats        travel.Stats
	WorldPercent float64
	Countries    []ReportCountry
	Wishlist     []ReportWish
}

// ReportService renders the markdown travel report.
type ReportService struct {
	travel *TravelService
	atlas  *geo.Atlas
	config *config.Config
	now    func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(ts *TravelService, atlas *geo.Atlas, cfg *config.Config) *ReportService {
	return &ReportService{travel: ts, atlas: atlas, config: cfg, now: time.Now}
}

// Data assembles the report view of the current state.
func (r *ReportService) Data() ReportData {
	now := r.now()
	st := r.travel.State()
	stats := travel.ComputeStats(st, r.atlas, now)

	pct, _ := strconv.ParseFloat(stats.WorldPercentage, 64)

	data := ReportData{
		GeneratedAt:  now.Format(time.DateOnly),
		Year:         now.Year(),
		Stats:        stats,
		WorldPercent: pct,
		Countries:    make([]ReportCountry, 0, len(st.Visited)),
		Wishlist:     make([]ReportWish, 0, len(st.Wishlist)),
	}

	for _, c := range st.Visited {
		continent, _ := r.atlas.Continent(c.Name)
		data.Countries = append(data.Countries, ReportCountry{
			Flag:      r.atlas.Flag(c.Name),
			Name:      c.Name,
			Continent: continent,
			Cities:    c.CitiesByDate(),
		})
	}
	for _, w := range st.Wishlist {
		data.Wishlist = append(data.Wishlist, ReportWish{Flag: r.atlas.Flag(w), Name: w})
	}
	return data
}

// Markdown renders the report with the configured template, or the built-in
// one when none is configured.
func (r *ReportService) Markdown(configPath string) (string, error) {
	text := defaultReportTemplate
	if path := r.config.ReportTemplatePath(configPath); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read report template: %w", err)
		}
		text = string(b)
	}

	out, err := tmpl.Render(text, r.Data())
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}
