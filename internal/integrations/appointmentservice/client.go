package appointmentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с RemoteAppointmentService —
// владельцем записей и финальным арбитром конфликтов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RemoteAppointmentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetTransport подменяет транспорт HTTP-клиента (используется для метрик)
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.httpClient.Transport = rt
}

// Get получает снапшот записи по ID
func (c *Client) Get(ctx context.Context, id int64) (*Appointment, error) {
	url := fmt.Sprintf("%s/internal/appointments/%d", c.baseURL, id)

	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &appointment, nil
}

// Create создает новую запись (статус pending, без места)
func (c *Client) Create(ctx context.Context, req *UpdateRequest) (*Appointment, error) {
	url := fmt.Sprintf("%s/internal/appointments", c.baseURL)

	resp, err := c.do(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &appointment, nil
}

// Update выполняет полное обновление записи (full-replace PUT).
// Используется и для approve (seat_id + статус pending), и для редактирования.
func (c *Client) Update(ctx context.Context, id int64, req *UpdateRequest) (*Appointment, error) {
	url := fmt.Sprintf("%s/internal/appointments/%d", c.baseURL, id)

	resp, err := c.do(ctx, http.MethodPut, url, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &appointment, nil
}

// UpdateStatus выполняет переход только по статусу (completed/cancelled)
func (c *Client) UpdateStatus(ctx context.Context, id int64, status string) error {
	url := fmt.Sprintf("%s/internal/appointments/%d/status", c.baseURL, id)

	resp, err := c.do(ctx, http.MethodPut, url, &StatusRequest{Status: status})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// UpdateSeatStatus выполняет комбинированный переход статус+место.
// Используется картой мест для assign/move/release-to-pending.
func (c *Client) UpdateSeatStatus(ctx context.Context, id int64, status string, seatID int64) error {
	url := fmt.Sprintf("%s/internal/appointments/%d/seat-status", c.baseURL, id)

	resp, err := c.do(ctx, http.MethodPut, url, &SeatStatusRequest{Status: status, SeatID: seatID})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// Delete удаляет запись. Удалённый сервис отклоняет удаление записей
// вне статусов pending/cancelled.
func (c *Client) Delete(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/internal/appointments/%d", c.baseURL, id)

	resp, err := c.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// do собирает и выполняет запрос с JSON-телом
func (c *Client) do(ctx context.Context, method, url string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return resp, nil
}

// checkStatus маппит статус-коды ответа на ошибки клиента
func (c *Client) checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		// Отказ арбитра: возвращаем первопричину для показа администратору
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail() != "" {
			return fmt.Errorf("%w: %s", ErrConflict, errResp.Detail())
		}
		return ErrConflict
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
