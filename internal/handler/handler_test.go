package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"internship-tracker/internal/model"
	"internship-tracker/internal/service"
)

type mockAuth struct {
	registerFunc func(ctx context.Context, email, password string) (string, string, error)
	loginFunc    func(ctx context.Context, email, password string) (string, string, error)
}

func (m *mockAuth) Register(ctx context.Context, email, password string) (string, string, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, email, password)
	}
	return "", "", errors.New("not implemented")
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return "", "", errors.New("not implemented")
}

type mockInternships struct {
	createFunc func(ctx context.Context, userID string, input service.InternshipInput) (model.Snapshot, error)
	listFunc   func(ctx context.Context, userID string) ([]model.Snapshot, error)
	updateFunc func(ctx context.Context, userID, id string, update service.InternshipUpdate) (model.Snapshot, error)
	deleteFunc func(ctx context.Context, userID, id string) error
}

func (m *mockInternships) Create(ctx context.Context, userID string, input service.InternshipInput) (model.Snapshot, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, input)
	}
	return model.Snapshot{}, errors.New("not implemented")
}

func (m *mockInternships) List(ctx context.Context, userID string) ([]model.Snapshot, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInternships) Update(ctx context.Context, userID, id string, update service.InternshipUpdate) (model.Snapshot, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, id, update)
	}
	return model.Snapshot{}, errors.New("not implemented")
}

func (m *mockInternships) Delete(ctx context.Context, userID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, id)
	}
	return errors.New("not implemented")
}

type mockWorkLogs struct {
	saveFunc   func(ctx context.Context, userID, internshipID, dateKey string, hours float64, notes string) (model.Snapshot, error)
	deleteFunc func(ctx context.Context, userID, internshipID, dateKey string) (model.Snapshot, error)
}

func (m *mockWorkLogs) SaveLog(ctx context.Context, userID, internshipID, dateKey string, hours float64, notes string) (model.Snapshot, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, userID, internshipID, dateKey, hours, notes)
	}
	return model.Snapshot{}, errors.New("not implemented")
}

func (m *mockWorkLogs) DeleteLog(ctx context.Context, userID, internshipID, dateKey string) (model.Snapshot, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, internshipID, dateKey)
	}
	return model.Snapshot{}, errors.New("not implemented")
}

type mockExporter struct {
	exportFunc func(ctx context.Context, userID, internshipID string, opts service.ExportOptions) ([]byte, error)
}

func (m *mockExporter) Export(ctx context.Context, userID, internshipID string, opts service.ExportOptions) ([]byte, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, userID, internshipID, opts)
	}
	return nil, errors.New("not implemented")
}

type mockTokens struct{}

func (mockTokens) Parse(token string) (string, error) {
	if token == "good-token" {
		return "user-1", nil
	}
	return "", errors.New("bad token")
}

func newTestHandler(auth *mockAuth, internships *mockInternships, workLogs *mockWorkLogs, exporter *mockExporter) *Handler {
	core, _ := observer.New(zapcore.InfoLevel)
	return New(zap.New(core), validator.New(), auth, internships, workLogs, exporter, mockTokens{})
}

func TestRegisterValidation(t *testing.T) {
	h := newTestHandler(&mockAuth{}, &mockInternships{}, &mockWorkLogs{}, &mockExporter{})

	tests := []struct {
		name         string
		body         string
		expectCode   int
		expectedBody string
	}{
		{
			name:         "missing email",
			body:         `{"password":"hunter2hunter2"}`,
			expectCode:   http.StatusBadRequest,
			expectedBody: `[{"Email":"is required"}]`,
		},
		{
			name:         "bad email",
			body:         `{"email":"nope","password":"hunter2hunter2"}`,
			expectCode:   http.StatusBadRequest,
			expectedBody: `[{"Email":"must be a valid email address"}]`,
		},
		{
			name:         "short password",
			body:         `{"email":"a@b.com","password":"short"}`,
			expectCode:   http.StatusBadRequest,
			expectedBody: `[{"Password":"must be at least 8 characters long"}]`,
		},
		{
			name:         "malformed json",
			body:         `{`,
			expectCode:   http.StatusBadRequest,
			expectedBody: `{"error":"invalid request payload"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Routes().ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	auth := &mockAuth{
		registerFunc: func(_ context.Context, email, password string) (string, string, error) {
			assert.Equal(t, "a@b.com", email)
			return "user-1", "token-1", nil
		},
	}
	h := newTestHandler(auth, &mockInternships{}, &mockWorkLogs{}, &mockExporter{})

	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(`{"email":"a@b.com","password":"hunter2hunter2"}`))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"user_id":"user-1","token":"token-1"}`, rec.Body.String())
}

func TestAuthMiddleware(t *testing.T) {
	h := newTestHandler(&mockAuth{}, &mockInternships{
		listFunc: func(_ context.Context, userID string) ([]model.Snapshot, error) {
			assert.Equal(t, "user-1", userID)
			return []model.Snapshot{}, nil
		},
	}, &mockWorkLogs{}, &mockExporter{})
	router := h.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/internships", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/internships", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/internships", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveWorkLog(t *testing.T) {
	workLogs := &mockWorkLogs{
		saveFunc: func(_ context.Context, userID, internshipID, dateKey string, hours float64, notes string) (model.Snapshot, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "intern-1", internshipID)
			assert.Equal(t, "2024-01-01", dateKey)
			assert.Equal(t, 8.0, hours)
			snapshot := model.NewSnapshot(model.Internship{ID: internshipID, TotalHours: 100}, []model.WorkLog{
				{LogDate: dateKey, Hours: hours, Notes: notes},
			})
			return snapshot, nil
		},
	}
	h := newTestHandler(&mockAuth{}, &mockInternships{}, workLogs, &mockExporter{})

	body := bytes.NewBufferString(`{"hours":8,"notes":"first day"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/internships/intern-1/logs/2024-01-01", body)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot model.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 8.0, snapshot.CompletedHours)
	assert.True(t, snapshot.WorkDays["2024-01-01"])
}

func TestSaveWorkLogRejectsNegativeHours(t *testing.T) {
	h := newTestHandler(&mockAuth{}, &mockInternships{}, &mockWorkLogs{}, &mockExporter{})

	body := bytes.NewBufferString(`{"hours":-2}`)
	req := httptest.NewRequest(http.MethodPut, "/api/internships/intern-1/logs/2024-01-01", body)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"Hours":"must be zero or greater"}]`, rec.Body.String())
}

func TestSaveWorkLogUnknownInternship(t *testing.T) {
	workLogs := &mockWorkLogs{
		saveFunc: func(_ context.Context, _, _, _ string, _ float64, _ string) (model.Snapshot, error) {
			return model.Snapshot{}, gorm.ErrRecordNotFound
		},
	}
	h := newTestHandler(&mockAuth{}, &mockInternships{}, workLogs, &mockExporter{})

	body := bytes.NewBufferString(`{"hours":8}`)
	req := httptest.NewRequest(http.MethodPut, "/api/internships/missing/logs/2024-01-01", body)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportReturnsPDF(t *testing.T) {
	exporter := &mockExporter{
		exportFunc: func(_ context.Context, _, _ string, opts service.ExportOptions) ([]byte, error) {
			assert.Equal(t, "summary", opts.Format)
			assert.True(t, opts.IncludeNotes)
			return []byte("%PDF-1.3 fake"), nil
		},
	}
	h := newTestHandler(&mockAuth{}, &mockInternships{}, &mockWorkLogs{}, exporter)

	body := bytes.NewBufferString(`{"format":"summary","include_notes":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/internships/intern-1/export", body)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "work-log-intern-1.pdf")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	h := newTestHandler(&mockAuth{}, &mockInternships{}, &mockWorkLogs{}, &mockExporter{})

	body := bytes.NewBufferString(`{"format":"csv"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/internships/intern-1/export", body)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"Format":"must be either summary or detailed"}]`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(&mockAuth{}, &mockInternships{}, &mockWorkLogs{}, &mockExporter{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
