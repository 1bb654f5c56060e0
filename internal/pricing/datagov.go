package pricing

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/upstream"
)

const (
	// UpstreamName labels the data.gov.in mandi price API in metrics and logs
	UpstreamName = "data-gov-in"

	// MandiPriceResource is the "current daily price of commodities" dataset
	MandiPriceResource = "/resource/9ef84268-d588-465a-a308-a864a43d0070"

	// KgPerQuintal converts modal prices (per quintal) to per-kg prices
	KgPerQuintal = 100.0

	recordLimit = 100
)

// modalPrice accepts both quoted and bare numbers; data.gov.in sends strings
type modalPrice float64

func (m *modalPrice) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" || string(data) == "NR" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid modal price %q: %w", data, err)
	}
	*m = modalPrice(v)
	return nil
}

type mandiResponse struct {
	Records []struct {
		State      string     `json:"state"`
		Commodity  string     `json:"commodity"`
		ModalPrice modalPrice `json:"modal_price"`
	} `json:"records"`
}

// DataGovPredictor averages today's mandi modal prices for a commodity in a state
type DataGovPredictor struct {
	client *upstream.Client
	apiKey string
}

// NewDataGovPredictor creates a predictor against baseURL
func NewDataGovPredictor(baseURL, apiKey string, timeout time.Duration) *DataGovPredictor {
	return &DataGovPredictor{
		client: upstream.NewClient(upstream.Options{
			Name:    UpstreamName,
			BaseURL: baseURL,
			Timeout: timeout,
		}),
		apiKey: apiKey,
	}
}

// PredictPrice returns floor(mean modal price / 100), or 0 when no market reported the commodity
func (p *DataGovPredictor) PredictPrice(ctx context.Context, region, label string) (float64, error) {
	query := url.Values{}
	query.Set("api-key", p.apiKey)
	query.Set("format", "json")
	query.Set("limit", strconv.Itoa(recordLimit))
	query.Set("filters[commodity]", label)
	if region != "" {
		query.Set("filters[state]", region)
	}

	var resp mandiResponse
	if err := p.client.GetJSON(ctx, MandiPriceResource, query, &resp); err != nil {
		return 0, fmt.Errorf("mandi price for %s: %w", label, err)
	}

	sum, n := 0.0, 0
	for _, r := range resp.Records {
		if r.ModalPrice > 0 {
			sum += float64(r.ModalPrice)
			n++
		}
	}
	if n == 0 {
		logger.FromContext(ctx).Debug("No mandi price reported", "region", region, "label", label)
		return 0, nil
	}
	return math.Floor(sum / float64(n) / KgPerQuintal), nil
}
