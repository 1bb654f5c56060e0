package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// Structured catalogs come in two shapes:
//
//	grouped: [{"Vegetables": [{"label": "Tomato", ...}]}, {"Herbs": [...]}]
//	flat:    [{"label": "Tomato", "category": "Vegetables", ...}]
//
// Both may be mixed within one file.

func parseJSON(ctx context.Context, data []byte, opts Options) ([]domain.PlantCandidate, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	var records []plantRecord
	for i, raw := range items {
		var grouped map[string][]plantRecord
		if err := json.Unmarshal(raw, &grouped); err == nil {
			records = append(records, flattenGroups(grouped)...)
			continue
		}
		var rec plantRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", domain.ErrInvalidCatalog, i+1, err)
		}
		records = append(records, rec)
	}
	return buildCandidates(ctx, records, opts)
}

func parseYAML(ctx context.Context, data []byte, opts Options) ([]domain.PlantCandidate, error) {
	var items []yaml.Node
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	var records []plantRecord
	for i := range items {
		var grouped map[string][]plantRecord
		if err := items[i].Decode(&grouped); err == nil {
			records = append(records, flattenGroups(grouped)...)
			continue
		}
		var rec plantRecord
		if err := items[i].Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", domain.ErrInvalidCatalog, i+1, err)
		}
		records = append(records, rec)
	}
	return buildCandidates(ctx, records, opts)
}

// flattenGroups tags each record with its group key. Map order is random, so
// groups are emitted in sorted key order to keep catalog order stable.
func flattenGroups(grouped map[string][]plantRecord) []plantRecord {
	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []plantRecord
	for _, k := range keys {
		for _, rec := range grouped[k] {
			if rec.Category == "" {
				rec.Category = k
			}
			out = append(out, rec)
		}
	}
	return out
}
