// Package weather предоставляет клиент для OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"

// Client — клиент текущей погоды. Все отказы (сеть, таймаут, не-200,
// кривой JSON) деградируют до «температура неизвестна» и наружу
// никогда не выходят ошибкой.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент с ограниченным таймаутом запроса.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// currentResponse — ответ /data/2.5/weather (интересует только температура).
type currentResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Temperature возвращает температуру в городе в °C.
// false означает, что узнать её не удалось.
func (c *Client) Temperature(ctx context.Context, city string) (float64, bool) {
	temp, err := c.fetch(ctx, city)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("Не удалось получить температуру")
		return 0, false
	}
	return temp, true
}

func (c *Client) fetch(ctx context.Context, city string) (float64, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ошибка HTTP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("weather API error %d", resp.StatusCode)
	}

	var cur currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&cur); err != nil {
		return 0, fmt.Errorf("неверный JSON ответа: %w", err)
	}
	return cur.Main.Temp, nil
}
