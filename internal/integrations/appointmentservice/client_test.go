package appointmentservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second, nopLogger{}), server
}

func TestClient_Get(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/internal/appointments/10", r.URL.Path)

		json.NewEncoder(w).Encode(Appointment{
			ID:              10,
			TicketNumber:    "TKT-0042",
			Status:          "pending",
			AppointmentDate: "2025-03-10",
			AppointmentTime: "14:00:00",
			User:            User{ID: 7, Name: "Client"},
			Services:        []Service{{ID: 1, Name: "Haircut", Price: "150.00"}},
			FinalTotal:      "150.00",
		})
	})
	defer server.Close()

	appointment, err := client.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "TKT-0042", appointment.TicketNumber)

	// Время с секундами нормализуется при конвертации в домен
	d, err := appointment.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:00"), d.StartTime)
	assert.Equal(t, 150.0, d.FinalTotal)
	assert.Equal(t, int64(7), d.CustomerID)
}

func TestClient_Get_NotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.Get(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestClient_Update_ConflictDetail(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ErrorResponse{
			Message: "seat already taken",
			Errors:  map[string][]string{"seat_id": {"seat 3 is occupied"}},
		})
	})
	defer server.Close()

	_, err := client.Update(context.Background(), 10, &UpdateRequest{Status: "pending"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "seat already taken")
	assert.Contains(t, err.Error(), "seat 3 is occupied")
}

func TestClient_UpdateSeatStatus(t *testing.T) {
	var got SeatStatusRequest
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/internal/appointments/10/seat-status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	err := client.UpdateSeatStatus(context.Background(), 10, "in_progress", 3)
	require.NoError(t, err)
	assert.Equal(t, SeatStatusRequest{Status: "in_progress", SeatID: 3}, got)
}

func TestClient_UpdateStatus_Unauthorized(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer server.Close()

	err := client.UpdateStatus(context.Background(), 10, "completed")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

	_, err := client.Get(context.Background(), 10)
	assert.ErrorIs(t, err, ErrUnavailable)
}
