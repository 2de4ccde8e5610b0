package models

import "time"

// OrderStatus tracks an order from the rider's point of view
type OrderStatus string

const (
	OrderStatusAvailable OrderStatus = "available"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order is a delivery request visible to nearby riders
type Order struct {
	UUID            string      `json:"uuid"`
	Vendor          Location    `json:"vendor"`
	DeliveryAddress string      `json:"delivery_address"`
	Distance        float64     `json:"distance"`       // in kilometers
	EstimatedTime   string      `json:"estimated_time"` // e.g. "15 mins"
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status,omitempty"`
	AcceptedAt      *time.Time  `json:"accepted_at,omitempty"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`
}

// NearbyOrdersQuery is the query of GET /rider/orders
type NearbyOrdersQuery struct {
	Longitude float64 `query:"longitude"`
	Latitude  float64 `query:"latitude"`
}
