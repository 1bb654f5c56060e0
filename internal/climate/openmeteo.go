package climate

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/upstream"
)

const (
	// UpstreamName labels Open-Meteo in metrics and logs
	UpstreamName = "open-meteo"

	forecastPath    = "/v1/forecast"
	forecastDays    = 16
	secondsPerHour  = 3600.0
	dailyParameters = "temperature_2m_max,temperature_2m_min,rain_sum,sunshine_duration"
)

type forecastResponse struct {
	Daily struct {
		TemperatureMax   []*float64 `json:"temperature_2m_max"`
		TemperatureMin   []*float64 `json:"temperature_2m_min"`
		RainSum          []*float64 `json:"rain_sum"`
		SunshineDuration []*float64 `json:"sunshine_duration"` // seconds
	} `json:"daily"`
}

// OpenMeteoProvider averages the Open-Meteo daily forecast
type OpenMeteoProvider struct {
	client *upstream.Client
}

// NewOpenMeteoProvider creates a provider against baseURL
func NewOpenMeteoProvider(baseURL string, timeout time.Duration) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		client: upstream.NewClient(upstream.Options{
			Name:    UpstreamName,
			BaseURL: baseURL,
			Timeout: timeout,
		}),
	}
}

// GetClimate fetches the daily forecast and averages each series.
// Sunshine is converted from seconds to hours per day.
func (p *OpenMeteoProvider) GetClimate(ctx context.Context, latitude, longitude float64) (*domain.Climate, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	query.Set("daily", dailyParameters)
	query.Set("forecast_days", strconv.Itoa(forecastDays))
	query.Set("timezone", "auto")

	var resp forecastResponse
	if err := p.client.GetJSON(ctx, forecastPath, query, &resp); err != nil {
		return nil, fmt.Errorf("%w: climate: %w", domain.ErrDataUnavailable, err)
	}

	series := []struct {
		name   string
		values []*float64
	}{
		{"temperature_2m_min", resp.Daily.TemperatureMin},
		{"temperature_2m_max", resp.Daily.TemperatureMax},
		{"rain_sum", resp.Daily.RainSum},
		{"sunshine_duration", resp.Daily.SunshineDuration},
	}
	avgs := make([]float64, len(series))
	var missing []string
	for i, s := range series {
		avg, ok := average(s.values)
		if !ok {
			missing = append(missing, s.name)
		}
		avgs[i] = avg
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: climate: empty series %s", domain.ErrDataUnavailable, strings.Join(missing, ", "))
	}

	c := &domain.Climate{
		TempMin:  avgs[0],
		TempMax:  avgs[1],
		Rainfall: avgs[2],
		Sunlight: avgs[3] / secondsPerHour,
	}
	logger.FromContext(ctx).Debug("Fetched climate",
		"latitude", latitude, "longitude", longitude,
		"temp_min", c.TempMin, "temp_max", c.TempMax, "sunlight_hours", c.Sunlight)
	return c, nil
}

// average ignores null entries; ok is false when nothing is left
func average(values []*float64) (float64, bool) {
	sum, n := 0.0, 0
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
