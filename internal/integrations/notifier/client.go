package notifier

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

// Client клиент шлюза уведомлений
// Шлюз берет на себя рассылку email и SMS клиенту и бригаде
// и синхронизацию с календарем; само бронирование от доставки
// уведомлений не зависит
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет событие в шлюз уведомлений
func (c *Client) Send(ctx context.Context, event Event) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("notifier: event %s delivered for booking_id=%s", event.Type, event.BookingID)
	return nil
}

// NoopClient заглушка клиента уведомлений
// Используется, когда шлюз выключен в конфигурации
type NoopClient struct {
	log Logger
}

// NewNoopClient создает заглушку клиента уведомлений
func NewNoopClient(log Logger) *NoopClient {
	return &NoopClient{log: log}
}

// Send логирует событие без отправки
func (c *NoopClient) Send(_ context.Context, event Event) error {
	c.log.Info("notifier disabled, skipping event %s for booking_id=%s", event.Type, event.BookingID)
	return nil
}
