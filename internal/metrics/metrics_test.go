package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/passport/internal/core/travel"
)

func TestMetrics_ObserveMutation(t *testing.T) {
	m := New(func() travel.Stats { return travel.Stats{} })

	start := time.Now()
	m.ObserveMutation("add country", OutcomeApplied, start)
	m.ObserveMutation("add country", OutcomeApplied, start)
	m.ObserveMutation("add country", OutcomeRejected, start)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Mutations.WithLabelValues("add country", OutcomeApplied)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Mutations.WithLabelValues("add country", OutcomeRejected)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.MutationDuration))
}

func scrape(t *testing.T, url string) string {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_HandlerServesGauges(t *testing.T) {
	stats := travel.Stats{VisitedCount: 3, ContinentsVisited: 2, TotalCities: 5, WishlistCount: 1}
	m := New(func() travel.Stats { return stats })

	srv := httptest.NewServer(m.Handler())
	t.Cleanup(srv.Close)

	body := scrape(t, srv.URL)
	for _, line := range []string{
		"passport_visited_countries 3",
		"passport_continents_visited 2",
		"passport_cities 5",
		"passport_wishlist 1",
	} {
		assert.True(t, strings.Contains(body, line), "missing %q", line)
	}

	// Gauges follow the stats source on each scrape.
	stats.VisitedCount = 4
	assert.Contains(t, scrape(t, srv.URL), "passport_visited_countries 4")
}
