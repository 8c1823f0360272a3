package ingesting

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		validate func(t *testing.T, result *ParseResult)
	}{
		{
			name:  "valid rows with extra columns",
			input: "date,store_id,sku_id,units_sold,notes\n2025-11-27,S1,SKU1,5,promo\n2025-11-28,S2,SKU2,3,\n",
			validate: func(t *testing.T, result *ParseResult) {
				require.Len(t, result.Rows, 2)
				assert.Empty(t, result.Errors)

				row, ok := result.Rows[0].(ValidRow)
				require.True(t, ok)
				assert.Equal(t, 1, row.Number())
				assert.Equal(t, time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC), row.Sale.Date)
				assert.Equal(t, "S1", row.Sale.StoreID)
				assert.Equal(t, 5.0, row.Sale.UnitsSold)
			},
		},
		{
			name:  "non numeric units sold yields one error",
			input: "date,store_id,sku_id,units_sold\n2025-11-27,S1,SKU1,abc\n",
			validate: func(t *testing.T, result *ParseResult) {
				require.Len(t, result.Rows, 1)
				assert.Equal(t, []domain.ValidationError{
					{Row: 1, Field: "units_sold", Message: "Invalid units_sold"},
				}, result.Errors)
				_, ok := result.Rows[0].(InvalidRow)
				assert.True(t, ok)
			},
		},
		{
			name:  "all four checks fail independently",
			input: "date,store_id,sku_id,units_sold\nnot-a-date,,,\n",
			validate: func(t *testing.T, result *ParseResult) {
				require.Len(t, result.Errors, 4)
				fields := []string{}
				for _, e := range result.Errors {
					fields = append(fields, e.Field)
					assert.Equal(t, 1, e.Row)
				}
				assert.Equal(t, []string{"date", "store_id", "sku_id", "units_sold"}, fields)
				assert.Equal(t, "Invalid or missing date", result.Errors[0].Message)
				assert.Equal(t, "Missing store_id", result.Errors[1].Message)
				assert.Equal(t, "Missing sku_id", result.Errors[2].Message)
			},
		},
		{
			name:  "missing columns behave as empty cells",
			input: "date,store_id\n2025-11-27,S1\n",
			validate: func(t *testing.T, result *ParseResult) {
				require.Len(t, result.Errors, 2)
				assert.Equal(t, "sku_id", result.Errors[0].Field)
				assert.Equal(t, "units_sold", result.Errors[1].Field)
			},
		},
		{
			name:  "zero and negative units pass the preview check",
			input: "date,store_id,sku_id,units_sold\n2025-11-27,S1,SKU1,0\n2025-11-27,S1,SKU2,-4\n",
			validate: func(t *testing.T, result *ParseResult) {
				assert.Empty(t, result.Errors)
				require.Len(t, result.Rows, 2)
			},
		},
		{
			name:  "blank lines are skipped and do not shift row numbers",
			input: "date,store_id,sku_id,units_sold\n\n2025-11-27,S1,SKU1,1\n,,,\n2025-11-28,,SKU1,1\n",
			validate: func(t *testing.T, result *ParseResult) {
				require.Len(t, result.Rows, 2)
				assert.Equal(t, []domain.ValidationError{
					{Row: 2, Field: "store_id", Message: "Missing store_id"},
				}, result.Errors)
			},
		},
		{
			name:  "header is case and bom insensitive",
			input: "\ufeffDate, Store_ID ,SKU_ID,Units_Sold\n2025-11-27,S1,SKU1,2\n",
			validate: func(t *testing.T, result *ParseResult) {
				assert.Empty(t, result.Errors)
				require.Len(t, result.Rows, 1)
			},
		},
		{
			name:  "preview stops at the limit",
			input: "date,store_id,sku_id,units_sold\n" + strings.Repeat("2025-11-27,S1,SKU1,1\n", 30),
			limit: 20,
			validate: func(t *testing.T, result *ParseResult) {
				assert.Len(t, result.Rows, 20)
				assert.Equal(t, 20, result.Rows[19].Number())
			},
		},
		{
			name:  "empty file",
			input: "",
			validate: func(t *testing.T, result *ParseResult) {
				assert.Empty(t, result.Rows)
				assert.Empty(t, result.Errors)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCSV(strings.NewReader(tt.input), tt.limit)
			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestParseCSV_UnreadableFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("date,store_id,sku_id,units_sold\n2025-11-27,S\"1,SKU1,1\n"), 0)

	var parseErr *domain.FileParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "failed to parse CSV")
}

func TestValidateRow_ErrorCountMatchesFailingChecks(t *testing.T) {
	tests := []struct {
		raw  RawRow
		want int
	}{
		{raw: RawRow{Date: "2025-11-27", StoreID: "S1", SKUID: "SKU1", UnitsSold: "3"}, want: 0},
		{raw: RawRow{Date: "", StoreID: "S1", SKUID: "SKU1", UnitsSold: "3"}, want: 1},
		{raw: RawRow{Date: "2025-11-27", StoreID: "", SKUID: "", UnitsSold: "3"}, want: 2},
		{raw: RawRow{Date: "x", StoreID: "", SKUID: "", UnitsSold: "3"}, want: 3},
		{raw: RawRow{Date: "x", StoreID: "", SKUID: "", UnitsSold: "NaN"}, want: 4},
	}

	for _, tt := range tests {
		row := ValidateRow(1, tt.raw)
		switch r := row.(type) {
		case ValidRow:
			assert.Equal(t, 0, tt.want)
		case InvalidRow:
			assert.Len(t, r.Errors, tt.want)
		}
	}
}
