package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом каталога вещей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetItems получает набор вещей каталога одним запросом
// Если хотя бы одна вещь отсутствует, возвращает ErrItemNotFound
func (c *Client) GetItems(ctx context.Context, itemIDs []int64) (map[int64]*Item, error) {
	result := make(map[int64]*Item, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	ids := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	body, err := c.get(ctx, fmt.Sprintf("%s/api/items?%s", c.baseURL, query.Encode()))
	if err != nil {
		return nil, err
	}

	items, err := unwrap[[]Item](body)
	if err != nil {
		return nil, err
	}

	for i := range items {
		result[items[i].ID] = &items[i]
	}

	for _, id := range itemIDs {
		if _, ok := result[id]; !ok {
			c.log.Warn("GetItems: item id=%d missing in catalog response", id)
			return nil, fmt.Errorf("%w: id=%d", ErrItemNotFound, id)
		}
	}

	return result, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Catalog request %s failed: %v", endpoint, err)
		return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrItemNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
