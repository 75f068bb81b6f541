package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointments struct {
	createCalls int
	lastCreate  *appointmentservice.UpdateRequest
	err         error
}

func (f *fakeAppointments) Create(_ context.Context, req *appointmentservice.UpdateRequest) (*appointmentservice.Appointment, error) {
	f.createCalls++
	f.lastCreate = req
	if f.err != nil {
		return nil, f.err
	}

	services := make([]appointmentservice.Service, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, appointmentservice.Service{ID: s.ID})
	}
	return &appointmentservice.Appointment{
		ID:              100,
		TicketNumber:    "TKT-0100",
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
	err   error
	calls int
}

func (f *fakeBranch) GetWorkingHours(_ context.Context) (*branchservice.WorkingHoursResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
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
	now    = time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)  // суббота
	monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)  // понедельник
	sunday = time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)  // воскресенье
)

func newUseCase(appointments *fakeAppointments, branch *fakeBranch) *UseCase {
	uc := NewUseCase(appointments, branch, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID: 7,
		Date:       monday,
		StartTime:  "14:00",
		Services:   []ServiceSelection{{ID: 1, Price: "150"}},
	}
}

func TestCreateAppointment(t *testing.T) {
	appointments := &fakeAppointments{}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, 1, appointments.createCalls)
	sent := appointments.lastCreate
	assert.Equal(t, "pending", sent.Status)
	assert.Nil(t, sent.SeatID, "a new appointment is created without a seat")
	assert.Nil(t, sent.StaffID)
	assert.Equal(t, "2025-03-10", sent.AppointmentDate)
	assert.Equal(t, "14:00", sent.AppointmentTime)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "TKT-0100", resp.TicketNumber)
}

func TestCreateAppointment_ClosedSunday(t *testing.T) {
	appointments := &fakeAppointments{}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	req := validRequest()
	req.Date = sunday
	// Время не выбрано: в форме оно недоступно для закрытого дня
	req.StartTime = ""

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrBranchClosed)
	assert.Contains(t, err.Error(), "closed on Sunday")
	assert.Equal(t, 0, appointments.createCalls)
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	appointments := &fakeAppointments{}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	req := validRequest()
	req.StartTime = "20:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	assert.Equal(t, 0, appointments.createCalls)
}

func TestCreateAppointment_PastDate(t *testing.T) {
	appointments := &fakeAppointments{}
	branch := &fakeBranch{hours: workingHours()}
	uc := newUseCase(appointments, branch)

	req := validRequest()
	req.Date = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
	// Локальная валидация не дошла до сети
	assert.Equal(t, 0, branch.calls)
	assert.Equal(t, 0, appointments.createCalls)
}

func TestCreateAppointment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "customer required", mutate: func(r *Request) { r.CustomerID = 0 }, wantErr: ErrInvalidInput},
		{name: "date required", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "time required", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrInvalidInput},
		{name: "services required", mutate: func(r *Request) { r.Services = nil }, wantErr: ErrInvalidInput},
		{name: "negative price", mutate: func(r *Request) { r.Services[0].Price = "-5" }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointments := &fakeAppointments{}
			uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, appointments.createCalls)
		})
	}
}

func TestCreateAppointment_LenientPrice(t *testing.T) {
	// Нераспознаваемая цена превращается в 0 и не валит форму:
	// авторитетную сумму пересчитает удалённый сервис
	appointments := &fakeAppointments{}
	uc := newUseCase(appointments, &fakeBranch{hours: workingHours()})

	req := validRequest()
	req.Services[0].Price = "not-a-number"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, appointments.createCalls)
}
