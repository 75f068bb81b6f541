package appointmentservice

import (
	"strings"
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/numparse"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// Appointment модель записи из RemoteAppointmentService
type Appointment struct {
	ID              int64     `json:"id"`
	TicketNumber    string    `json:"ticket_number"`
	Status          string    `json:"status"`
	AppointmentDate string    `json:"appointment_date"` // "YYYY-MM-DD"
	AppointmentTime string    `json:"appointment_time"` // "HH:mm" или "HH:mm:ss"
	Notes           *string   `json:"notes,omitempty"`
	User            User      `json:"user"`
	BranchID        *int64    `json:"branch_id,omitempty"`
	Services        []Service `json:"services"`
	OriginalTotal   string    `json:"original_total"`
	DiscountAmount  string    `json:"discount_amount"`
	FinalTotal      string    `json:"final_total"`
	CurrencySymbol  string    `json:"currency_symbol"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// Service строка услуги в записи
type Service struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	SeatID  *int64 `json:"seat_id,omitempty"`
	StaffID *int64 `json:"staff_id,omitempty"`
}

// User клиент салона, владелец записи
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UpdateRequest тело полного обновления записи (PUT).
// Используется и для approve, и для редактирования формы.
type UpdateRequest struct {
	UserID          int64        `json:"user_id"`
	AppointmentDate string       `json:"appointment_date"`
	AppointmentTime string       `json:"appointment_time"` // всегда нормализовано до "HH:mm"
	Services        []ServiceRef `json:"services"`
	Status          string       `json:"status"`
	SeatID          *int64       `json:"seat_id"`
	Notes           *string      `json:"notes"`
	StaffID         *int64       `json:"staff_id"`
}

// ServiceRef ссылка на услугу в теле обновления
type ServiceRef struct {
	ID int64 `json:"id"`
}

// StatusRequest тело перехода только по статусу
type StatusRequest struct {
	Status string `json:"status"`
}

// SeatStatusRequest тело комбинированного перехода статус+место
type SeatStatusRequest struct {
	Status string `json:"status"`
	SeatID int64  `json:"seat_id"`
}

// ErrorResponse модель ошибки от сервиса.
// Errors содержит детализацию по полям при отклонении валидацией.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Detail собирает человекочитаемую причину отказа
func (e *ErrorResponse) Detail() string {
	parts := make([]string, 0, 1+len(e.Errors))
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	for field, msgs := range e.Errors {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return strings.Join(parts, "; ")
}

// ToDomain конвертирует wire-модель в доменную.
// Время нормализуется до "HH:mm", денежные поля парсятся лениентно
// (авторитетные суммы принадлежат удалённому сервису).
func (a *Appointment) ToDomain() (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, a.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(a.AppointmentTime)
	if err != nil {
		return nil, err
	}

	services := make([]domain.ServiceLine, 0, len(a.Services))
	for _, s := range a.Services {
		services = append(services, domain.ServiceLine{
			ServiceID: s.ID,
			Name:      s.Name,
			Price:     numparse.FloatOrZero(s.Price),
			SeatID:    s.SeatID,
			StaffID:   s.StaffID,
		})
	}

	// Таймстемпы носят справочный характер, ошибки парсинга не фатальны
	createdAt, _ := time.Parse(time.RFC3339, a.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, a.UpdatedAt)

	return &domain.Appointment{
		ID:             a.ID,
		TicketNumber:   a.TicketNumber,
		CustomerID:     a.User.ID,
		BranchID:       a.BranchID,
		Date:           date,
		StartTime:      startTime,
		Status:         domain.AppointmentStatus(a.Status),
		Notes:          a.Notes,
		Services:       services,
		OriginalTotal:  numparse.FloatOrZero(a.OriginalTotal),
		DiscountAmount: numparse.FloatOrZero(a.DiscountAmount),
		FinalTotal:     numparse.FloatOrZero(a.FinalTotal),
		CurrencySymbol: a.CurrencySymbol,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}
