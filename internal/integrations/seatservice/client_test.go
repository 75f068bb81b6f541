package seatservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_CheckAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/seats/3/availability", r.URL.Path)
		json.NewEncoder(w).Encode(AvailabilityResponse{Available: false})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	available, err := client.CheckAvailability(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestClient_ListSeats(t *testing.T) {
	occupiedBy := int64(42)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/seats", r.URL.Path)
		json.NewEncoder(w).Encode(SeatListResponse{Seats: []Seat{
			{ID: 1, Name: "Seat 1", Status: "available"},
			{ID: 2, Name: "Seat 2", Status: "occupied", ActiveAppointmentID: &occupiedBy},
			{ID: 3, Name: "Seat 3", Status: "cleaning"},
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	seats, err := client.ListSeats(context.Background())
	require.NoError(t, err)
	require.Len(t, seats, 3)

	second := seats[1].ToDomain()
	assert.Equal(t, domain.SeatOccupied, second.Status)
	require.NotNil(t, second.ActiveAppointmentID)
	assert.Equal(t, int64(42), *second.ActiveAppointmentID)
	assert.False(t, second.IsAvailable())
}

func TestClient_CheckAvailability_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.CheckAvailability(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}
