package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	snapshot *appointmentservice.Appointment
	getErr   error

	statusCalls int
	lastStatus  string
	statusErr   error

	deleteCalls int
	deleteErr   error
}

func (f *fakeClient) Get(_ context.Context, _ int64) (*appointmentservice.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshot, nil
}

func (f *fakeClient) UpdateStatus(_ context.Context, _ int64, status string) error {
	f.statusCalls++
	f.lastStatus = status
	return f.statusErr
}

func (f *fakeClient) Delete(_ context.Context, _ int64) error {
	f.deleteCalls++
	return f.deleteErr
}

func snapshot(status string, seatID *int64) *appointmentservice.Appointment {
	return &appointmentservice.Appointment{
		ID:              10,
		TicketNumber:    "TKT-0042",
		Status:          status,
		AppointmentDate: "2025-03-10",
		AppointmentTime: "14:00",
		User:            appointmentservice.User{ID: 7},
		Services: []appointmentservice.Service{
			{ID: 1, Name: "Haircut", Price: "150", SeatID: seatID},
		},
	}
}

func TestGetByID_DerivesApproved(t *testing.T) {
	client := &fakeClient{snapshot: snapshot("pending", ptr.Ptr(int64(2)))}
	svc := NewService(client, nopLogger{})

	view, err := svc.GetByID(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "approved", view.Status, "pending with a seat reads as approved")
	require.NotNil(t, view.SeatID)
	assert.Equal(t, int64(2), *view.SeatID)
}

func TestGetByID_BarePending(t *testing.T) {
	client := &fakeClient{snapshot: snapshot("pending", nil)}
	svc := NewService(client, nopLogger{})

	view, err := svc.GetByID(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "pending", view.Status)
	assert.Nil(t, view.SeatID)
}

func TestComplete(t *testing.T) {
	client := &fakeClient{snapshot: snapshot("in_progress", ptr.Ptr(int64(2)))}
	svc := NewService(client, nopLogger{})

	result, err := svc.Complete(context.Background(), 10)
	require.NoError(t, err)

	require.Equal(t, 1, client.statusCalls)
	assert.Equal(t, "completed", client.lastStatus)
	require.NotNil(t, result.ReleasedSeatID)
	assert.Equal(t, int64(2), *result.ReleasedSeatID)
}

func TestComplete_OnlyFromInProgress(t *testing.T) {
	for _, status := range []string{"pending", "completed", "cancelled"} {
		t.Run(status, func(t *testing.T) {
			client := &fakeClient{snapshot: snapshot(status, nil)}
			svc := NewService(client, nopLogger{})

			_, err := svc.Complete(context.Background(), 10)
			assert.ErrorIs(t, err, ErrIllegalTransition)
			assert.Equal(t, 0, client.statusCalls)
		})
	}
}

func TestCancel(t *testing.T) {
	client := &fakeClient{snapshot: snapshot("in_progress", ptr.Ptr(int64(2)))}
	svc := NewService(client, nopLogger{})

	result, err := svc.Cancel(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", client.lastStatus)
	assert.Equal(t, "cancelled", result.Status)
}

// Прямой прыжок pending -> cancelled запрещён
func TestCancel_PendingIsRejected(t *testing.T) {
	client := &fakeClient{snapshot: snapshot("pending", nil)}
	svc := NewService(client, nopLogger{})

	_, err := svc.Cancel(context.Background(), 10)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, client.statusCalls)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		seatID  *int64
		wantErr error
	}{
		{name: "pending is deletable", status: "pending"},
		{name: "cancelled is deletable", status: "cancelled"},
		{name: "approved is deletable", status: "pending", seatID: ptr.Ptr(int64(2))},
		{name: "in_progress is not", status: "in_progress", seatID: ptr.Ptr(int64(2)), wantErr: ErrNotDeletable},
		{name: "completed is not", status: "completed", wantErr: ErrNotDeletable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{snapshot: snapshot(tt.status, tt.seatID)}
			svc := NewService(client, nopLogger{})

			err := svc.Delete(context.Background(), 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, client.deleteCalls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, client.deleteCalls)
		})
	}
}

func TestDelete_NotFound(t *testing.T) {
	client := &fakeClient{getErr: appointmentservice.ErrAppointmentNotFound}
	svc := NewService(client, nopLogger{})

	err := svc.Delete(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
