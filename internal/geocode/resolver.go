package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/upstream"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

const (
	// UpstreamName labels Nominatim in metrics and logs
	UpstreamName = "nominatim"

	reversePath = "/reverse"
)

// ErrRegionNotFound means the location has no state-level address
var ErrRegionNotFound = errors.New("region not found")

// Resolver maps coordinates to a region (state) name
type Resolver interface {
	ResolveRegion(ctx context.Context, latitude, longitude float64) (string, error)
}

type reverseResponse struct {
	Error   string `json:"error"`
	Address struct {
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// NominatimResolver reverse geocodes through OpenStreetMap Nominatim.
// The public instance allows one request per second.
type NominatimResolver struct {
	client *upstream.Client
}

// NewNominatimResolver creates a resolver against baseURL
func NewNominatimResolver(baseURL string, timeout time.Duration) *NominatimResolver {
	return &NominatimResolver{
		client: upstream.NewClient(upstream.Options{
			Name:      UpstreamName,
			BaseURL:   baseURL,
			Timeout:   timeout,
			RateLimit: rate.Limit(1),
			Burst:     1,
		}),
	}
}

// ResolveRegion returns the title-cased state for the coordinates
func (r *NominatimResolver) ResolveRegion(ctx context.Context, latitude, longitude float64) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(latitude, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', 6, 64))
	query.Set("zoom", "5")
	query.Set("addressdetails", "1")

	var resp reverseResponse
	if err := r.client.GetJSON(ctx, reversePath, query, &resp); err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrRegionNotFound, resp.Error)
	}

	state := utils.TitleCase(resp.Address.State)
	if state == "" {
		return "", fmt.Errorf("%w: no state at %.4f,%.4f", ErrRegionNotFound, latitude, longitude)
	}
	logger.FromContext(ctx).Debug("Resolved region", "latitude", latitude, "longitude", longitude, "region", state)
	return state, nil
}

// StaticResolver always resolves to the same region
type StaticResolver struct {
	Region string
}

// ResolveRegion returns the configured region
func (s StaticResolver) ResolveRegion(_ context.Context, _, _ float64) (string, error) {
	if s.Region == "" {
		return "", ErrRegionNotFound
	}
	return s.Region, nil
}
