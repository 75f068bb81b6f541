package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointments struct {
	snapshot *appointmentservice.Appointment
	getErr   error

	updateCalls int
	lastUpdate  *appointmentservice.UpdateRequest
	updateErr   error
}

func (f *fakeAppointments) Get(_ context.Context, _ int64) (*appointmentservice.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshot, nil
}

func (f *fakeAppointments) Update(_ context.Context, id int64, req *appointmentservice.UpdateRequest) (*appointmentservice.Appointment, error) {
	f.updateCalls++
	f.lastUpdate = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	services := make([]appointmentservice.Service, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, appointmentservice.Service{ID: s.ID, SeatID: req.SeatID, StaffID: req.StaffID})
	}
	return &appointmentservice.Appointment{
		ID:              id,
		TicketNumber:    f.snapshot.TicketNumber,
		Status:          req.Status,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		User:            appointmentservice.User{ID: req.UserID},
		Services:        services,
		Notes:           req.Notes,
	}, nil
}

type fakeBranch struct {
	hours *branchservice.WorkingHoursResponse
	calls int
}

func (f *fakeBranch) GetWorkingHours(_ context.Context) (*branchservice.WorkingHoursResponse, error) {
	f.calls++
	return f.hours, nil
}

func workingHours() *branchservice.WorkingHoursResponse {
	return &branchservice.WorkingHoursResponse{WorkingHours: []branchservice.WorkingHour{
		{Day: "Monday", Open: "09:00", Close: "18:00"},
		{Day: "Tuesday", Open: "09:00", Close: "18:00"},
		{Day: "Wednesday", Open: "09:00", Close: "18:00"},
		{Day: "Thursday", Open: "09:00", Close: "18:00"},
		{Day: "Friday", Open: "09:00", Close: "18:00"},
		{Day: "Saturday", Open: "10:00", Close: "16:00"},
		{Day: "Sunday", IsClosed: true},
	}}
}

var (
	now    = time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
)

func snapshotWithStatus(status string) *appointmentservice.Appointment {
	return &appointmentservice.Appointment{
		ID:              10,
		TicketNumber:    "TKT-0042",
		Status:          status,
		AppointmentDate: "2025-03-10",
		AppointmentTime: "14:00:00",
		User:            appointmentservice.User{ID: 7},
		Services:        []appointmentservice.Service{{ID: 1, Name: "Haircut", Price: "150"}},
	}
}

func newUseCase(appointments *fakeAppointments, branch *fakeBranch) *UseCase {
	uc := NewUseCase(appointments, branch, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		AppointmentID: 10,
		CustomerID:    7,
		Date:          monday,
		StartTime:     "15:30",
		Services:      []ServiceSelection{{ID: 1, Price: "150"}, {ID: 2, Price: "99,50"}},
		Status:        "pending",
	}
}

func TestUpdateAppointment(t *testing.T) {
	appointments := &fakeAppointments{snapshot: snapshotWithStatus("pending")}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, 1, appointments.updateCalls)
	sent := appointments.lastUpdate
	assert.Equal(t, "pending", sent.Status)
	assert.Equal(t, "15:30", sent.AppointmentTime)
	require.Len(t, sent.Services, 2)

	assert.Equal(t, "pending", resp.Status)
}

// Терминальная запись неизменяема: отказ до отправки обновления
func TestUpdateAppointment_CompletedIsImmutable(t *testing.T) {
	for _, status := range []string{"completed", "cancelled"} {
		t.Run(status, func(t *testing.T) {
			appointments := &fakeAppointments{snapshot: snapshotWithStatus(status)}
			branch := &fakeBranch{hours: workingHours()}
			uc := newUseCase(appointments, branch)

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrNotEditable)
			assert.Equal(t, 0, appointments.updateCalls, "no update reaches the network")
			assert.Equal(t, 0, branch.calls)
		})
	}
}

func TestUpdateAppointment_SeatRequiredForNonPending(t *testing.T) {
	appointments := &fakeAppointments{snapshot: snapshotWithStatus("in_progress")}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	req := validRequest()
	req.Status = "in_progress"
	req.SeatID = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSeatRequired)
	assert.Equal(t, 0, appointments.updateCalls)
}

// Проверка места идёт последней: когда не заполнены и время, и место,
// администратор видит ошибку про время.
func TestUpdateAppointment_TimeCheckedBeforeSeat(t *testing.T) {
	appointments := &fakeAppointments{snapshot: snapshotWithStatus("in_progress")}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	req := validRequest()
	req.Status = "in_progress"
	req.SeatID = nil
	req.StartTime = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrSeatRequired)
	assert.Contains(t, err.Error(), "time")
	assert.Equal(t, 0, appointments.updateCalls)
}

func TestUpdateAppointment_InProgressWithSeat(t *testing.T) {
	appointments := &fakeAppointments{snapshot: snapshotWithStatus("in_progress")}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	req := validRequest()
	req.Status = "in_progress"
	req.SeatID = ptr.Ptr(int64(3))
	req.StaffID = ptr.Ptr(int64(12))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	sent := appointments.lastUpdate
	require.NotNil(t, sent.SeatID)
	assert.Equal(t, int64(3), *sent.SeatID)
	assert.Equal(t, "in_progress", resp.Status)
}

func TestUpdateAppointment_UnknownStatus(t *testing.T) {
	appointments := &fakeAppointments{snapshot: snapshotWithStatus("pending")}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	req := validRequest()
	req.Status = "approved" // производный статус не является wire-значением

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAppointment_RemoteConflict(t *testing.T) {
	appointments := &fakeAppointments{
		snapshot:  snapshotWithStatus("pending"),
		updateErr: appointmentservice.ErrConflict,
	}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	appointments := &fakeAppointments{getErr: appointmentservice.ErrAppointmentNotFound}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
