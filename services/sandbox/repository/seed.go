package repository

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/sandbox"
)

// Demo account available on a fresh sandbox
const (
	DemoRiderID  = "6f1c2c7e-4d61-4f53-9a1c-2b7de0c5a111"
	DemoEmail    = "rider@fastbuka.com"
	DemoPassword = "password123"
)

// OrderPrecision is the geohash precision orders are indexed at
const OrderPrecision uint = 9

var demoOrders = []models.Order{
	{
		UUID:            "0d6b3f4a-5c1e-4b8a-9f2d-1a2b3c4d5e01",
		Vendor:          models.Location{Address: "Chicken Republic, Herbert Macaulay Way, Yaba", Latitude: 6.5095, Longitude: 3.3711},
		DeliveryAddress: "University of Lagos, Akoka",
		TotalAmount:     2500,
	},
	{
		UUID:            "0d6b3f4a-5c1e-4b8a-9f2d-1a2b3c4d5e02",
		Vendor:          models.Location{Address: "Mama Put Kitchen, Sabo", Latitude: 6.5068, Longitude: 3.3783},
		DeliveryAddress: "14 Onike Road, Onike",
		TotalAmount:     1800,
	},
	{
		UUID:            "0d6b3f4a-5c1e-4b8a-9f2d-1a2b3c4d5e03",
		Vendor:          models.Location{Address: "The Place, Surulere", Latitude: 6.4969, Longitude: 3.3553},
		DeliveryAddress: "National Stadium, Surulere",
		TotalAmount:     3200,
	},
	{
		UUID:            "0d6b3f4a-5c1e-4b8a-9f2d-1a2b3c4d5e04",
		Vendor:          models.Location{Address: "Domino's Pizza, Allen Avenue, Ikeja", Latitude: 6.6018, Longitude: 3.3515},
		DeliveryAddress: "Alausa Secretariat, Ikeja",
		TotalAmount:     6200,
	},
	{
		UUID:            "0d6b3f4a-5c1e-4b8a-9f2d-1a2b3c4d5e05",
		Vendor:          models.Location{Address: "Cafe Neo, Admiralty Way, Lekki", Latitude: 6.4474, Longitude: 3.4723},
		DeliveryAddress: "Lekki Phase 1",
		TotalAmount:     4100,
	},
}

var demoDeliveries = []struct {
	daysAgo int
	hour    int
	pickup  string
	dropoff string
	amount  float64
}{
	{0, 9, "Kilimanjaro, Yaba", "Akoka", 1500},
	{0, 12, "Bukka Hut, Surulere", "Ojuelegba", 2200},
	{1, 13, "Sweet Sensation, Ikeja", "Opebi", 1900},
	{2, 18, "Chicken Republic, Yaba", "Ebute Metta", 1200},
	{4, 11, "KFC, Ikeja City Mall", "Alausa", 2600},
	{6, 20, "Mama Put Kitchen, Sabo", "Onike", 900},
}

// DemoOrderIDs lists the seeded orders
func DemoOrderIDs() []string {
	ids := make([]string, len(demoOrders))
	for i, o := range demoOrders {
		ids[i] = o.UUID
	}
	return ids
}

// Seed loads the demo rider, nearby orders and recent deliveries
func Seed(ctx context.Context, repo sandbox.SandboxRepo, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	err = repo.CreateAccount(ctx, &sandbox.Account{
		Profile: models.RiderProfile{
			ID:            DemoRiderID,
			Email:         DemoEmail,
			FirstName:     "Tunde",
			LastName:      "Bakare",
			PhoneNumber:   "08031234567",
			HomeAddress:   "21 Commercial Avenue, Yaba",
			VehicleType:   "Motorcycle",
			Status:        sandbox.StatusActive,
			EmailVerified: true,
		},
		PasswordHash: hash,
		CreatedAt:    now.AddDate(0, -3, 0),
	})
	if err != nil {
		return fmt.Errorf("seed demo rider: %w", err)
	}

	for _, order := range demoOrders {
		order.Status = models.OrderStatusAvailable
		record := sandbox.OrderRecord{
			Order:   order,
			Geohash: utils.EncodeLocation(order.Vendor.Coordinates(), OrderPrecision),
		}
		if err := repo.AddOrder(ctx, record); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i, d := range demoDeliveries {
		deliveredAt := day.AddDate(0, 0, -d.daysAgo).Add(time.Duration(d.hour) * time.Hour)
		if deliveredAt.After(now) {
			deliveredAt = now.Add(-time.Duration(len(demoDeliveries)-i) * time.Minute)
		}
		entry := models.HistoryEntry{
			OrderUUID:       fmt.Sprintf("9a8b7c6d-0000-4000-8000-%012d", i+1),
			PickupAddress:   d.pickup,
			DeliveryAddress: d.dropoff,
			Amount:          d.amount,
			DeliveredAt:     deliveredAt,
		}
		if err := repo.AddDelivery(ctx, DemoRiderID, entry); err != nil {
			return fmt.Errorf("seed deliveries: %w", err)
		}
	}

	return nil
}
