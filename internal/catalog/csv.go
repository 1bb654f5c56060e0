package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// CSV column headers, matched case-insensitively
const (
	ColumnLabel            = "label"
	ColumnCategory         = "category"
	ColumnTempMin          = "temp min"
	ColumnTempMax          = "temp max"
	ColumnRainfall         = "rainfall"
	ColumnSunlightMin      = "sunlight min"
	ColumnPerennial        = "perennial"
	ColumnGrowingPrice     = "growing price"
	ColumnMarketPrice      = "market price"
	ColumnCarbonAbsorption = "carbon absorption"
)

var requiredColumns = []string{
	ColumnLabel, ColumnCategory, ColumnTempMin, ColumnTempMax,
	ColumnSunlightMin, ColumnMarketPrice, ColumnCarbonAbsorption,
}

// csvReader reads rows by header name instead of position
type csvReader struct {
	r       *csv.Reader
	columns map[string]int
	line    int
	row     []string
}

func newCSVReader(r io.Reader, required []string) (*csvReader, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", domain.ErrInvalidCatalog, err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		// spreadsheet exports often carry a BOM on the first header
		h = strings.TrimPrefix(h, "\ufeff")
		h = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, "_", " ")))
		columns[h] = i
	}
	var missing []string
	for _, c := range required {
		if _, ok := columns[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", domain.ErrInvalidCatalog, strings.Join(missing, ", "))
	}
	return &csvReader{r: cr, columns: columns, line: 1}, nil
}

// next advances to the next row; it returns io.EOF at the end
func (c *csvReader) next() error {
	row, err := c.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	c.line++
	c.row = row
	return nil
}

func (c *csvReader) has(column string) bool {
	_, ok := c.columns[column]
	return ok
}

func (c *csvReader) str(column string) string {
	i, ok := c.columns[column]
	if !ok || i >= len(c.row) {
		return ""
	}
	return strings.TrimSpace(c.row[i])
}

func (c *csvReader) float(column string) (float64, error) {
	raw := c.str(column)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: column %q: %v", domain.ErrInvalidCatalog, c.line, column, err)
	}
	return v, nil
}

// parseCSV reads the plant sheet format:
// Label, Category, Temp Min, Temp Max, Rainfall, Sunlight Min, Perennial, Growing Price, Market Price, Carbon Absorption
func parseCSV(ctx context.Context, r io.Reader, opts Options) ([]domain.PlantCandidate, error) {
	cr, err := newCSVReader(r, requiredColumns)
	if err != nil {
		return nil, err
	}

	var records []plantRecord
	for {
		if err := cr.next(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		rec := plantRecord{
			Label:    cr.str(ColumnLabel),
			Category: cr.str(ColumnCategory),
		}
		floats := []struct {
			column string
			dst    *float64
		}{
			{ColumnTempMin, &rec.TempMin},
			{ColumnTempMax, &rec.TempMax},
			{ColumnRainfall, &rec.Rainfall},
			{ColumnSunlightMin, &rec.SunlightMin},
			{ColumnMarketPrice, &rec.MarketPrice},
			{ColumnCarbonAbsorption, &rec.CarbonAbsorption},
		}
		for _, f := range floats {
			if *f.dst, err = cr.float(f.column); err != nil {
				return nil, err
			}
		}

		if cr.has(ColumnGrowingPrice) && cr.str(ColumnGrowingPrice) != "" {
			growing, err := cr.float(ColumnGrowingPrice)
			if err != nil {
				return nil, err
			}
			rec.GrowingPrice = &growing
		}

		perennial, err := parseFlexBool(cr.str(ColumnPerennial))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidCatalog, cr.line, err)
		}
		rec.Perennial = flexBool(perennial)

		records = append(records, rec)
	}

	return buildCandidates(ctx, records, opts)
}
