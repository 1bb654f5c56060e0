package pricing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPredictor(t *testing.T) {
	predictor := NewStaticPredictor(map[string]map[string]float64{
		"Karnataka": {"Tomato": 28, "Onion": 0},
		"*":         {"Tomato": 25, "Brinjal": 30},
	})
	ctx := context.Background()

	tests := []struct {
		name     string
		region   string
		label    string
		expected float64
	}{
		{"regional price", "Karnataka", "Tomato", 28},
		{"case-insensitive keys", "karnataka", "TOMATO", 28},
		{"wildcard fallback", "Kerala", "Tomato", 25},
		{"wildcard for missing regional label", "Karnataka", "Brinjal", 30},
		{"zero prices are dropped", "Karnataka", "Onion", 0},
		{"unknown label", "Kerala", "Dragonfruit", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := predictor.PredictPrice(ctx, tt.region, tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price)
		})
	}
	assert.Equal(t, 3, predictor.Len())
}

func TestLoadStaticPredictor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.yaml")
	content := "Karnataka:\n  Tomato: 28\n\"*\":\n  Mango: 90.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	predictor, err := LoadStaticPredictor(path)
	require.NoError(t, err)

	price, err := predictor.PredictPrice(context.Background(), "Goa", "mango")
	require.NoError(t, err)
	assert.Equal(t, 90.5, price)

	_, err = LoadStaticPredictor(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
