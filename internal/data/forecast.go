package data

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"solar-feasibility/internal/model"
)

// ForecastClient fetches hourly irradiance forecasts from an external
// provider. The engine itself never performs I/O; this client is the input
// adapter that feeds it.
type ForecastClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewForecastClient creates a forecast API client.
// If baseURL is empty, defaults to "https://api.solarcast.example.com".
func NewForecastClient(apiKey string, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = "https://api.solarcast.example.com"
	}
	return &ForecastClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QueryForecastParams defines parameters for querying irradiance samples.
type QueryForecastParams struct {
	LocationID string    // catalog location, e.g. "johannesburg"
	StartTime  time.Time // start of the forecast window
	EndTime    time.Time // end of the forecast window
}

// ForecastError represents an error response from the forecast API.
type ForecastError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // for rate limit errors
}

func (e *ForecastError) Error() string {
	return e.Message
}

// ForecastResponse matches the provider's JSON shape.
type ForecastResponse struct {
	StatusCode int                    `json:"status_code"`
	Location   string                 `json:"location"`
	Data       []model.ForecastSample `json:"data"`
}

// QueryIrradiance fetches forecast samples for a location and window.
//
// If caching is enabled (ENABLE_FORECAST_CACHE=true, development only),
// responses may be served from the in-memory cache.
func (c *ForecastClient) QueryIrradiance(params QueryForecastParams) (*ForecastResponse, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("forecast API key is required")
	}
	if params.LocationID == "" {
		return nil, fmt.Errorf("location_id is required")
	}
	if params.StartTime.IsZero() || params.EndTime.IsZero() {
		return nil, fmt.Errorf("start_time and end_time are required")
	}
	if params.StartTime.After(params.EndTime) {
		return nil, fmt.Errorf("start_time must be before end_time")
	}

	cache := GetCache()
	if cache != nil {
		if cached, found := cache.Get(CacheKey(params)); found {
			log.Printf("[Forecast] Cache hit: %d samples (location=%s, start=%s, end=%s)",
				len(cached.Data), params.LocationID,
				params.StartTime.Format("2006-01-02"), params.EndTime.Format("2006-01-02"))
			return cached, nil
		}
	}

	u, err := url.Parse(c.BaseURL + "/v1/irradiance/" + params.LocationID)
	if err != nil {
		return nil, fmt.Errorf("invalid forecast URL: %w", err)
	}
	q := u.Query()
	q.Set("start", params.StartTime.UTC().Format(time.RFC3339))
	q.Set("end", params.EndTime.UTC().Format(time.RFC3339))
	q.Set("resolution", "hourly")
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		fe := &ForecastError{
			StatusCode: resp.StatusCode,
			Code:       "FORECAST_ERROR",
			Message:    fmt.Sprintf("forecast API returned status %d", resp.StatusCode),
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			fe.Code = "INVALID_API_KEY"
			fe.Message = "forecast API rejected the API key"
		case http.StatusTooManyRequests:
			fe.Code = "RATE_LIMITED"
			fe.Message = "forecast API rate limit exceeded"
			fe.RetryAfter = resp.Header.Get("Retry-After")
		}
		return nil, fe
	}

	var out ForecastResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}

	if cache != nil {
		cache.Set(CacheKey(params), &out)
	}
	return &out, nil
}

// LoadForecastJSON loads a saved forecast response from disk, for offline
// runs and the demo.
func LoadForecastJSON(path string) (*ForecastResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp ForecastResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
