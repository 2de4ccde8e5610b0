package models

import "time"

// EarningsPoint is one bar of the earnings trend
type EarningsPoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Earnings is the summary behind GET /rider/earnings
type Earnings struct {
	Total    float64         `json:"total"`
	Currency string          `json:"currency"`
	Period   string          `json:"period"`
	Trend    []EarningsPoint `json:"trend"`
}

// BreakdownEntry is a single earning line on the dashboard
type BreakdownEntry struct {
	Time     string  `json:"time"`
	Amount   float64 `json:"amount"`
	Location string  `json:"location"`
}

// PeriodSummary aggregates one dashboard period
type PeriodSummary struct {
	Total       float64          `json:"total"`
	Trips       int              `json:"trips"`
	OnlineHours float64          `json:"online_hours"`
	Breakdown   []BreakdownEntry `json:"breakdown"`
}

// Dashboard is the summary behind GET /rider/dashboard
type Dashboard struct {
	Today PeriodSummary `json:"today"`
	Week  PeriodSummary `json:"week"`
}

// HistoryEntry is a completed delivery
type HistoryEntry struct {
	OrderUUID       string    `json:"order_uuid"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	Amount          float64   `json:"amount"`
	DeliveredAt     time.Time `json:"delivered_at"`
}
