package delete_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/middleware"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	calls  int
	lastID int64
	err    error
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	f.calls++
	f.lastID = id
	return f.err
}

func performRequest(t *testing.T, service *fakeService, url, adminHeader string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service, nopLogger{})
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/appointments/{appointmentId}", handler.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, url, nil)
	if adminHeader != "" {
		req.Header.Set("X-Admin-ID", adminHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandle(t *testing.T) {
	service := &fakeService{}

	recorder := performRequest(t, service, "/api/v1/appointments/10", "42")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, 1, service.calls)
	assert.Equal(t, int64(10), service.lastID)
}

func TestHandle_MissingAdminHeader(t *testing.T) {
	service := &fakeService{}

	recorder := performRequest(t, service, "/api/v1/appointments/10", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, 0, service.calls)
}

func TestHandle_NotDeletable(t *testing.T) {
	service := &fakeService{err: appointments.ErrNotDeletable}

	recorder := performRequest(t, service, "/api/v1/appointments/10", "42")

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), msgNotDeletable)
}

func TestHandle_InvalidAppointmentID(t *testing.T) {
	service := &fakeService{}

	recorder := performRequest(t, service, "/api/v1/appointments/abc", "42")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, service.calls)
}
