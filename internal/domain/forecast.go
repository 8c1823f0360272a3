package domain

// Forecast is produced by the external forecasting workflow and is read-only here.
type Forecast struct {
	RunTS               string          `json:"run_ts" mapstructure:"run_ts"`
	StoreID             string          `json:"store_id" mapstructure:"store_id"`
	SKUID               string          `json:"sku_id" mapstructure:"sku_id"`
	HorizonDays         int             `json:"forecast_horizon_days" mapstructure:"forecast_horizon_days"`
	RecommendedOrderQty int             `json:"recommended_order_qty" mapstructure:"recommended_order_qty"`
	DailyForecast       []DailyForecast `json:"daily_forecast" mapstructure:"daily_forecast"`
	Reasoning           Reasoning       `json:"reasoning" mapstructure:"reasoning"`
}

type DailyForecast struct {
	Day   string `json:"day" mapstructure:"day"`
	Units int    `json:"units" mapstructure:"units"`
}

type Reasoning struct {
	AvgDailySales float64 `json:"avg_daily_sales" mapstructure:"avg_daily_sales"`
	WeekendBoost  float64 `json:"weekend_boost" mapstructure:"weekend_boost"`
	PromoActive   bool    `json:"promo_active" mapstructure:"promo_active"`
	WeatherImpact string  `json:"weather_impact" mapstructure:"weather_impact"`
}

// Key joins a forecast with its inventory row.
func (f Forecast) Key() string {
	return InventoryKey(f.StoreID, f.SKUID)
}

// TotalUnits sums the daily forecast over the horizon.
func (f Forecast) TotalUnits() int {
	total := 0
	for _, d := range f.DailyForecast {
		total += d.Units
	}
	return total
}

// ForecastView is a forecast card: the forecast, the matched inventory row and the
// explanation lines.
type ForecastView struct {
	Forecast   Forecast           `json:"forecast"`
	Inventory  *InventorySnapshot `json:"inventory,omitempty"`
	NeedsOrder bool               `json:"needs_order"`
	Insights   []string           `json:"insights"`
}
