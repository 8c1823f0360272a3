package ingesting

import (
	"math"
	"strings"
	"time"

	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

// Normalize turns validated rows into upsert-ready records, preserving order.
// Invalid rows are dropped, as are valid rows whose ids are blank after trimming or
// whose units_sold truncates to zero or less.
func Normalize(rows []Row, now time.Time) []domain.SalesRecord {
	records := make([]domain.SalesRecord, 0, len(rows))
	for _, row := range rows {
		switch r := row.(type) {
		case ValidRow:
			record, ok := normalizeSale(r.Sale, now)
			if ok {
				records = append(records, record)
			}
		case InvalidRow:
			continue
		}
	}
	return records
}

// NormalizeRecords reapplies the same rules to records that are already in
// canonical form. Only UpdatedAt changes on a second pass.
func NormalizeRecords(records []domain.SalesRecord, now time.Time) []domain.SalesRecord {
	out := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		normalized, ok := normalizeSale(ParsedSale{
			Date:      record.Date,
			StoreID:   record.StoreID,
			SKUID:     record.SKUID,
			UnitsSold: float64(record.UnitsSold),
		}, now)
		if ok {
			out = append(out, normalized)
		}
	}
	return out
}

func normalizeSale(sale ParsedSale, now time.Time) (domain.SalesRecord, bool) {
	storeID := strings.TrimSpace(sale.StoreID)
	skuID := strings.TrimSpace(sale.SKUID)
	units := int(math.Trunc(sale.UnitsSold))

	if sale.Date.IsZero() || storeID == "" || skuID == "" || units <= 0 {
		return domain.SalesRecord{}, false
	}

	return domain.SalesRecord{
		Date:      sale.Date,
		StoreID:   storeID,
		SKUID:     skuID,
		UnitsSold: units,
		UpdatedAt: now.UTC(),
	}, true
}
