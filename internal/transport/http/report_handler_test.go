package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distrep/internal/config"
	"distrep/internal/report"
	"distrep/internal/services"
	"distrep/pkg/contracts/domain"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Upload.TempDir = t.TempDir()

	agg := report.NewAggregatorWithClock(func() time.Time {
		return time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)
	})
	service := services.NewReportServiceWithAggregator(slog.Default(), agg)
	return NewRouter(&cfg, slog.Default(), service)
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postFiles(t *testing.T, router http.Handler, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, "/api/reports/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProcessUpload(t *testing.T) {
	router := testRouter(t)

	rec := postFiles(t, router, map[string]string{
		"Northwind Report.csv": "Retailer Name,SKU Description,Qty\nAcme Store,Widget Pro * Blue,4\n",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var combined domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &combined))
	require.Len(t, combined.Rows, 1)
	assert.Equal(t, "Acme Store", combined.Rows[0].Customer)
	assert.Equal(t, "Northwind Report", combined.Rows[0].Distributor)
	assert.Equal(t, "Q3 2026", combined.Quarter)
}

func TestProcessNoFiles(t *testing.T) {
	router := testRouter(t)

	rec := postFiles(t, router, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_FILES")
}

func TestProcessTooManyFiles(t *testing.T) {
	router := testRouter(t)

	uploads := map[string]string{}
	for _, name := range []string{"a.csv", "b.csv", "c.csv", "d.csv", "e.csv", "f.csv"} {
		uploads[name] = "Customer Name,Product,Quantity\nAcme,Widget,1\n"
	}

	rec := postFiles(t, router, uploads)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOO_MANY_FILES")
}

func TestProcessRejectsBadFileType(t *testing.T) {
	router := testRouter(t)

	rec := postFiles(t, router, map[string]string{"notes.txt": "hello"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_FILE_TYPE")
}

// A file no strategy can read still yields a 200 with an empty report; the
// batch endpoint never fails because of bad content.
func TestProcessUnreadableContent(t *testing.T) {
	router := testRouter(t)

	rec := postFiles(t, router, map[string]string{"opaque.csv": "1,2,3\n4,5,6\n"})
	require.Equal(t, http.StatusOK, rec.Code)

	var combined domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &combined))
	assert.Empty(t, combined.Rows)
}

func TestLatestBeforeAnyBatch(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/api/reports/latest", "/api/reports/summary", "/api/reports/latest/csv"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "NO_DATA", path)
	}
}

func TestLatestAfterBatch(t *testing.T) {
	router := testRouter(t)

	rec := postFiles(t, router, map[string]string{
		"Northwind Report.csv": "Customer Name,Product,Quantity\nAcme Store,Widget,4\n",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/latest", nil)
	latestRec := httptest.NewRecorder()
	router.ServeHTTP(latestRec, req)
	require.Equal(t, http.StatusOK, latestRec.Code)

	var latest domain.Report
	require.NoError(t, json.Unmarshal(latestRec.Body.Bytes(), &latest))
	require.Len(t, latest.Rows, 1)
	assert.Equal(t, "Acme Store", latest.Rows[0].Customer)
}

func TestSummaryAfterBatch(t *testing.T) {
	router := testRouter(t)

	rec := postFiles(t, router, map[string]string{
		"Northwind Report.csv": "Customer Name,Product,Quantity\nAcme Store,Widget,4\nGlobex,Widget,2\n",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil)
	sumRec := httptest.NewRecorder()
	router.ServeHTTP(sumRec, req)
	require.Equal(t, http.StatusOK, sumRec.Code)

	var summary report.Summary
	require.NoError(t, json.Unmarshal(sumRec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, "Q3 2026", summary.Quarter)
}

func TestExportCSVDownload(t *testing.T) {
	router := testRouter(t)

	rec := postFiles(t, router, map[string]string{
		"Northwind Report.csv": "Customer Name,Product,Quantity\nAcme Store,Widget,4\n",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/latest/csv", nil)
	csvRec := httptest.NewRecorder()
	router.ServeHTTP(csvRec, req)

	require.Equal(t, http.StatusOK, csvRec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", csvRec.Header().Get("Content-Type"))
	assert.Contains(t, csvRec.Header().Get("Content-Disposition"), "combined_report.csv")
	assert.True(t, bytes.HasPrefix(csvRec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, csvRec.Body.String(), "Acme Store")
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRequestIDHeader(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
