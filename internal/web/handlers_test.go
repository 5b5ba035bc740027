package web

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ats/internal/config"
	"ats/internal/core"
	"ats/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  60 * time.Second,
		},
		Upload: config.UploadConfig{
			MaxFileSize: 1 << 20,
			MaxRows:     100,
		},
		Rate:     config.RateLimitConfig{Enabled: false},
		Security: config.SecurityConfig{EnableCSP: true},
		Logging:  config.LoggingConfig{Level: "error", Format: "text"},
	}
}

func newTestServer(t *testing.T) (*Server, *core.Store, *notify.Center) {
	t.Helper()
	center := notify.NewCenter(notify.DefaultCapacity)
	store := core.NewStore(center)
	return NewServer(store, center, testConfig()), store, center
}

func addApplicant(t *testing.T, store *core.Store, name, email string) core.Applicant {
	t.Helper()
	a, err := store.Add(core.Draft{Name: name, Email: email, Position: "Engineer"})
	require.NoError(t, err)
	return a
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestListApplicants(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")
	addApplicant(t, store, "Bob", "bob@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/applicants", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Applicants []core.Applicant `json:"applicants"`
		Count      int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Applicants, 2)
}

func TestListApplicants_Filtered(t *testing.T) {
	srv, store, _ := newTestServer(t)
	a := addApplicant(t, store, "Alice", "alice@example.com")
	addApplicant(t, store, "Bob", "bob@example.com")

	hired := core.StatusHired
	require.NoError(t, store.Update(a.ID, core.Update{Status: &hired}))

	rec := doJSON(t, srv, http.MethodGet, "/api/applicants?status=Hired", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Applicants []core.Applicant `json:"applicants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applicants, 1)
	assert.Equal(t, "Alice", resp.Applicants[0].Name)
}

func TestCreateApplicant(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/applicants", core.Draft{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created core.Applicant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ATS8001", created.TrackingNumber)
	assert.Equal(t, core.StatusNew, created.Status)
}

func TestCreateApplicant_DuplicateEmail(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/applicants", core.Draft{
		Name:  "Other",
		Email: "ALICE@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "APP001", resp.Code)
}

func TestCreateApplicant_MissingFields(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/applicants", core.Draft{Name: "No Email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VAL001", resp.Code)
}

func TestCreateApplicant_InvalidStatus(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/applicants", map[string]string{
		"name":   "Alice",
		"email":  "alice@example.com",
		"status": "hired", // statuses are case-sensitive
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VAL002", resp.Code)
}

func TestGetApplicant(t *testing.T) {
	srv, store, _ := newTestServer(t)
	a := addApplicant(t, store, "Alice", "alice@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/applicants/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got core.Applicant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
}

func TestGetApplicant_NotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/applicants/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "APP002", resp.Code)
}

func TestUpdateApplicant(t *testing.T) {
	srv, store, _ := newTestServer(t)
	a := addApplicant(t, store, "Alice", "alice@example.com")

	rec := doJSON(t, srv, http.MethodPut, "/api/applicants/"+a.ID, map[string]string{
		"status": "Interview",
		"notes":  "strong candidate",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got core.Applicant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, core.StatusInterview, got.Status)
	assert.Equal(t, "strong candidate", got.Notes)
	// untouched fields survive
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUpdateApplicant_DuplicateEmail(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")
	b := addApplicant(t, store, "Bob", "bob@example.com")

	rec := doJSON(t, srv, http.MethodPut, "/api/applicants/"+b.ID, map[string]string{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	// the update was rejected wholesale
	got, ok := store.GetByID(b.ID)
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", got.Email)
}

func TestUpdateApplicant_NotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/api/applicants/nope", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteApplicant(t *testing.T) {
	srv, store, _ := newTestServer(t)
	a := addApplicant(t, store, "Alice", "alice@example.com")

	rec := doJSON(t, srv, http.MethodDelete, "/api/applicants/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := store.GetByID(a.ID)
	assert.False(t, ok)

	rec = doJSON(t, srv, http.MethodDelete, "/api/applicants/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBulkStatus(t *testing.T) {
	srv, store, _ := newTestServer(t)
	a := addApplicant(t, store, "Alice", "alice@example.com")
	b := addApplicant(t, store, "Bob", "bob@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/applicants/bulk-status", map[string]interface{}{
		"ids":    []string{a.ID, b.ID, "missing"},
		"status": "Screening",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp["updated"])

	got, _ := store.GetByID(a.ID)
	assert.Equal(t, core.StatusScreening, got.Status)
}

func TestBulkStatus_InvalidStatus(t *testing.T) {
	srv, store, _ := newTestServer(t)
	a := addApplicant(t, store, "Alice", "alice@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/applicants/bulk-status", map[string]interface{}{
		"ids":    []string{a.ID},
		"status": "Unknown",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckDuplicate(t *testing.T) {
	srv, store, _ := newTestServer(t)
	a := addApplicant(t, store, "Alice", "alice@example.com")

	tests := []struct {
		name      string
		email     string
		excludeID string
		want      bool
	}{
		{"existing email", "alice@example.com", "", true},
		{"case folded", "ALICE@EXAMPLE.COM", "", true},
		{"own record excluded", "alice@example.com", a.ID, false},
		{"fresh email", "new@example.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/api/check-duplicate", map[string]string{
				"email":     tt.email,
				"excludeId": tt.excludeID,
			})
			require.Equal(t, http.StatusOK, rec.Code)

			var resp map[string]bool
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp["duplicate"])
		})
	}
}

func uploadCSV(t *testing.T, srv *Server, csvText string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "applicants.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvText))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestUpload(t *testing.T) {
	srv, store, _ := newTestServer(t)

	rec := uploadCSV(t, srv, "Name,Email,Position\nAlice,alice@example.com,Engineer\nBob,bob@example.com,Designer\n")
	require.Equal(t, http.StatusOK, rec.Code)

	var result core.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Duplicates)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, store.Count())
}

func TestUpload_DuplicatesReported(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")

	rec := uploadCSV(t, srv, "Name,Email\nAlice,alice@example.com\nBob,bob@example.com\n")
	require.Equal(t, http.StatusOK, rec.Code)

	var result core.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Duplicates)
}

func TestUpload_NoFile(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "FILE004", resp.Code)
}

func TestUpload_NoUsableRows(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := uploadCSV(t, srv, "Name,Email\n,missing-name@example.com\nNo Email,\n")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "FILE003", resp.Code)
}

func TestDownloadTemplate(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/template", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "applicant_template.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Email,Phone,Position,Status,Source,Experience,Skills,Education,ResumeURL,Notes", lines[0])
}

func TestExport(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")
	addApplicant(t, store, "Bob", "bob@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "alice@example.com")
	assert.Contains(t, body, "ATS8001")
	assert.Contains(t, body, "ATS8002")
}

func TestExport_Filtered(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")
	addApplicant(t, store, "Bob", "bob@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/export?search=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "alice@example.com")
	assert.NotContains(t, body, "bob@example.com")
}

func TestStats(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats core.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[core.StatusNew])
}

func TestNotifications(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Toasts []json.RawMessage `json:"toasts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Toasts, 1)

	// HTML rendering for the toast poller
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Accept", "text/html")
	htmlRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(htmlRec, req)
	require.Equal(t, http.StatusOK, htmlRec.Code)
	assert.Contains(t, htmlRec.Body.String(), "Applicant Added")
}

func TestDismissNotification(t *testing.T) {
	srv, store, center := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")
	addApplicant(t, store, "Bob", "bob@example.com")
	require.Len(t, center.Active(), 2)

	id := center.Active()[0].ID
	rec := doJSON(t, srv, http.MethodPost, "/api/notifications/dismiss", map[string]string{"id": id})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, center.Active(), 1)

	rec = doJSON(t, srv, http.MethodPost, "/api/notifications/dismiss", map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, center.Active())
}

func TestDashboardPage(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Applicant Tracker")
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "ATS8001")
}

func TestApplicantTablePartial(t *testing.T) {
	srv, store, _ := newTestServer(t)
	addApplicant(t, store, "Alice", "alice@example.com")
	addApplicant(t, store, "Bob", "bob@example.com")

	req := httptest.NewRequest(http.MethodGet, "/applicants?search=bob", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bob")
	assert.NotContains(t, rec.Body.String(), "Alice")
}

func TestSecurityHeaders(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestErrorPartialForHTMX(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/applicants/nope", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "APP002")
}
