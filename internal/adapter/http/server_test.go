package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "github.com/lacvoile/foil-report/internal/adapter/http"
	"github.com/lacvoile/foil-report/internal/domain"
	"github.com/lacvoile/foil-report/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

func newTestServer(readyErr error, reports httpadapter.ReportSource) *httpadapter.Server {
	if reports == nil {
		reports = store.NewMemoryStore()
	}
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, reports, slog.Default())
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(fmt.Errorf("not ready yet"), nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestReportEndpoint(t *testing.T) {
	reports := store.NewMemoryStore()
	reports.Save(domain.SiteReport{
		SiteID:      72305,
		SiteName:    "Le Grand Large",
		GeneratedAt: time.Date(2026, time.July, 14, 9, 30, 0, 0, time.UTC),
		Hours: []domain.ScoredHour{
			{Label: "Tu14.13h", Stars: 3, Rated: true, Source: domain.ModelPrimary},
		},
	})
	srv := newTestServer(nil, reports)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sites/72305/report", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report domain.SiteReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 72305, report.SiteID)
	assert.Equal(t, "Le Grand Large", report.SiteName)
	require.Len(t, report.Hours, 1)
	assert.Equal(t, 3, report.Hours[0].Stars)
}

func TestReportEndpointReturns404(t *testing.T) {
	srv := newTestServer(nil, nil)

	for _, path := range []string{
		"/sites/99999/report", // no report stored
		"/sites/abc/report",   // non-numeric id
		"/sites/-1/report",    // invalid id
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)

		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
