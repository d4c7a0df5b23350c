package servicecatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client клиент каталога дополнительных услуг
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога услуг
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAdditionalServices получает услуги объекта по списку ID
// Пустой список ids возвращает пустой результат без запроса
func (c *Client) GetAdditionalServices(ctx context.Context, facilityID string, ids []string) ([]Service, error) {
	if len(ids) == 0 {
		return []Service{}, nil
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: service catalog url is not configured", ErrInternal)
	}

	endpoint := fmt.Sprintf("%s/internal/facilities/%s/services?ids=%s",
		c.baseURL, url.PathEscape(facilityID), url.QueryEscape(strings.Join(ids, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrFacilityNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var list ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return list.Services, nil
}

// GetAdditionalServicesWithGracefulDegradation получает услуги с graceful degradation
// При недоступности каталога возвращает ErrServiceDegraded: цена считается без услуг
func (c *Client) GetAdditionalServicesWithGracefulDegradation(ctx context.Context, facilityID string, ids []string) ([]Service, error) {
	c.log.Info("Fetching %d additional services for facility=%s", len(ids), facilityID)

	services, err := c.GetAdditionalServices(ctx, facilityID, ids)
	if err != nil {
		if errors.Is(err, ErrFacilityNotFound) {
			c.log.Warn("Facility=%s is unknown to service catalog", facilityID)
			return nil, err
		}

		c.log.Error("Service catalog unavailable, applying graceful degradation for facility=%s: %v", facilityID, err)
		return nil, fmt.Errorf("%w: facility=%s, error=%v", ErrServiceDegraded, facilityID, err)
	}

	c.log.Info("Fetched %d additional services for facility=%s", len(services), facilityID)
	return services, nil
}
