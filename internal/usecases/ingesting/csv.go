package ingesting

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/pkg/utils"
)

const (
	ColumnDate      = "date"
	ColumnStoreID   = "store_id"
	ColumnSKUID     = "sku_id"
	ColumnUnitsSold = "units_sold"
)

const (
	msgInvalidDate      = "Invalid or missing date"
	msgMissingStoreID   = "Missing store_id"
	msgMissingSKUID     = "Missing sku_id"
	msgInvalidUnitsSold = "Invalid units_sold"
)

// RawRow holds the recognized cells of a CSV row exactly as read.
type RawRow struct {
	Date      string `json:"date"`
	StoreID   string `json:"store_id"`
	SKUID     string `json:"sku_id"`
	UnitsSold string `json:"units_sold"`
}

// ParsedSale is a row that passed the four field checks. UnitsSold keeps the
// numeric value as read; integer coercion happens in the normalizer.
type ParsedSale struct {
	Date      time.Time
	StoreID   string
	SKUID     string
	UnitsSold float64
}

// Row is either a ValidRow or an InvalidRow.
type Row interface {
	Number() int
	Raw() RawRow
	isRow()
}

type ValidRow struct {
	RowNumber int
	Source    RawRow
	Sale      ParsedSale
}

type InvalidRow struct {
	RowNumber int
	Source    RawRow
	Errors    []domain.ValidationError
}

func (r ValidRow) Number() int   { return r.RowNumber }
func (r ValidRow) Raw() RawRow   { return r.Source }
func (ValidRow) isRow()          {}
func (r InvalidRow) Number() int { return r.RowNumber }
func (r InvalidRow) Raw() RawRow { return r.Source }
func (InvalidRow) isRow()        {}

// ParseResult is the outcome of reading a CSV: every data row as a variant plus
// the flattened error list in row order.
type ParseResult struct {
	Rows   []Row
	Errors []domain.ValidationError
}

// ParseCSV reads at most limit data rows (limit <= 0 reads the whole file) and
// validates each one. Only an unreadable file returns an error.
func ParseCSV(r io.Reader, limit int) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &ParseResult{Rows: []Row{}, Errors: []domain.ValidationError{}}, nil
		}
		return nil, &domain.FileParseError{Err: err}
	}

	columns := indexColumns(header)
	result := &ParseResult{Rows: []Row{}, Errors: []domain.ValidationError{}}

	for limit <= 0 || len(result.Rows) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.FileParseError{Err: err}
		}
		if isBlank(record) {
			continue
		}

		row := ValidateRow(len(result.Rows)+1, columns.raw(record))
		result.Rows = append(result.Rows, row)
		if invalid, ok := row.(InvalidRow); ok {
			result.Errors = append(result.Errors, invalid.Errors...)
		}
	}

	return result, nil
}

// ValidateRow runs the four independent field checks. units_sold only has to be
// numeric here; zero and negative values pass and are dropped by the normalizer.
func ValidateRow(number int, raw RawRow) Row {
	var errs []domain.ValidationError
	fail := func(field, message string) {
		errs = append(errs, domain.ValidationError{Row: number, Field: field, Message: message})
	}

	date, dateErr := utils.ParseDate(raw.Date)
	if dateErr != nil {
		fail(ColumnDate, msgInvalidDate)
	}
	if raw.StoreID == "" {
		fail(ColumnStoreID, msgMissingStoreID)
	}
	if raw.SKUID == "" {
		fail(ColumnSKUID, msgMissingSKUID)
	}
	units, unitsOK := parseUnits(raw.UnitsSold)
	if !unitsOK {
		fail(ColumnUnitsSold, msgInvalidUnitsSold)
	}

	if len(errs) > 0 {
		return InvalidRow{RowNumber: number, Source: raw, Errors: errs}
	}

	return ValidRow{
		RowNumber: number,
		Source:    raw,
		Sale: ParsedSale{
			Date:      date,
			StoreID:   raw.StoreID,
			SKUID:     raw.SKUID,
			UnitsSold: units,
		},
	}
}

func parseUnits(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	units, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(units) || math.IsInf(units, 0) {
		return 0, false
	}
	return units, true
}

type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

func (c columnIndex) cell(record []string, column string) string {
	i, ok := c[column]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func (c columnIndex) raw(record []string) RawRow {
	return RawRow{
		Date:      c.cell(record, ColumnDate),
		StoreID:   c.cell(record, ColumnStoreID),
		SKUID:     c.cell(record, ColumnSKUID),
		UnitsSold: c.cell(record, ColumnUnitsSold),
	}
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
