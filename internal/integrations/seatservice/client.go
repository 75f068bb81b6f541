package seatservice

import (
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

// Client клиент для работы с RemoteSeatService — инвентарём мест
// и источником живой доступности
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RemoteSeatService
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

// ListSeats возвращает снапшот инвентаря мест.
// Снапшот предназначен только для отображения: он может устареть
// в момент получения и никогда не используется как гард привязки.
func (c *Client) ListSeats(ctx context.Context) ([]Seat, error) {
	url := fmt.Sprintf("%s/internal/seats", c.baseURL)

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var list SeatListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return list.Seats, nil
}

// GetSeat возвращает снапшот одного места
func (c *Client) GetSeat(ctx context.Context, seatID int64) (*Seat, error) {
	url := fmt.Sprintf("%s/internal/seats/%d", c.baseURL, seatID)

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var seat Seat
	if err := json.NewDecoder(resp.Body).Decode(&seat); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &seat, nil
}

// CheckAvailability выполняет живую проверку доступности места.
// Вызывается непосредственно перед привязкой, чтобы сузить окно между
// снапшотом UI и фактическим коммитом. Результат не кэшируется.
func (c *Client) CheckAvailability(ctx context.Context, seatID int64) (bool, error) {
	url := fmt.Sprintf("%s/internal/seats/%d/availability", c.baseURL, seatID)

	resp, err := c.get(ctx, url)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return false, err
	}

	var availability AvailabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&availability); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return availability.Available, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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

func (c *Client) checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrSeatNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
