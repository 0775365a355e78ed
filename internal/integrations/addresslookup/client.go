package addresslookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса подбора адреса по почтовому индексу
// Провайдер для нас непрозрачен: важны только форма ответа и статус-коды
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger

	// coverage outward-коды зоны обслуживания в верхнем регистре
	coverage map[string]bool
}

// NewClient создает новый экземпляр клиента подбора адреса
func NewClient(baseURL, apiKey string, timeout time.Duration, coverageOutwardCodes []string, log Logger) *Client {
	coverage := make(map[string]bool, len(coverageOutwardCodes))
	for _, code := range coverageOutwardCodes {
		coverage[strings.ToUpper(strings.TrimSpace(code))] = true
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		coverage: coverage,
	}
}

// OutwardCode возвращает outward-часть индекса ("SW1A 1AA" -> "SW1A")
// Для индекса без пробела отрезаются три последних символа inward-части
func OutwardCode(postcode string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postcode), " ", ""))
	if len(cleaned) < 5 {
		return cleaned
	}
	return cleaned[:len(cleaned)-3]
}

// Covered проверяет, входит ли индекс в зону обслуживания
// Сравнивает по outward-коду, при несовпадении пробует area-код
// (буквенный префикс: "SW1A" -> "SW")
func (c *Client) Covered(postcode string) bool {
	outward := OutwardCode(postcode)
	if c.coverage[outward] {
		return true
	}

	// area-код - буквенный префикс outward-кода ("SW1A" -> "SW")
	return c.coverage[leadingLetters(outward)]
}

// Lookup возвращает список адресов-кандидатов по индексу
// Перед обращением к провайдеру проверяется зона обслуживания
func (c *Client) Lookup(ctx context.Context, postcode string) ([]Candidate, error) {
	trimmed := strings.TrimSpace(postcode)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty postcode", ErrInvalidPostcode)
	}

	if !c.Covered(trimmed) {
		c.log.Info("Address lookup skipped, postcode %s outside coverage", trimmed)
		return nil, ErrOutsideCoverage
	}

	lookupURL := fmt.Sprintf("%s/postcodes/%s?api_key=%s",
		c.baseURL, url.PathEscape(trimmed), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов: каждому классу ошибки соответствует
	// свое пользовательское сообщение на стороне handler
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var parsed lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(parsed.Addresses) == 0 {
		return nil, ErrNotFound
	}

	return parsed.Addresses, nil
}

// leadingLetters возвращает буквенный префикс строки
func leadingLetters(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			return s[:i]
		}
	}
	return s
}
