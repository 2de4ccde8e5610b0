package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
)

const (
	// Currency of every sandbox amount
	Currency = "NGN"
	// TrendDays is the length of the earnings trend
	TrendDays = 7

	hoursPerTrip = 0.5
)

// Earnings sums the last TrendDays days, one trend point per day
func (u *SandboxUC) Earnings(ctx context.Context, riderID string) (*models.Earnings, error) {
	entries, err := u.sandboxRepo.Deliveries(ctx, riderID)
	if err != nil {
		return nil, err
	}

	today := startOfDay(u.now())
	first := today.AddDate(0, 0, -(TrendDays - 1))

	trend := make([]models.EarningsPoint, TrendDays)
	for i := range trend {
		trend[i].Label = first.AddDate(0, 0, i).Format("Mon")
	}

	total := 0.0
	for _, e := range entries {
		if e.DeliveredAt.Before(first) {
			continue
		}
		day := int(startOfDay(e.DeliveredAt).Sub(first).Hours() / 24)
		if day < 0 || day >= TrendDays {
			continue
		}
		trend[day].Amount += e.Amount
		total += e.Amount
	}

	return &models.Earnings{
		Total:    total,
		Currency: Currency,
		Period:   "week",
		Trend:    trend,
	}, nil
}

// Dashboard summarises today and the last TrendDays days
func (u *SandboxUC) Dashboard(ctx context.Context, riderID string) (*models.Dashboard, error) {
	entries, err := u.sandboxRepo.Deliveries(ctx, riderID)
	if err != nil {
		return nil, err
	}
	sortRecentFirst(entries)

	today := startOfDay(u.now())
	return &models.Dashboard{
		Today: summarize(entries, today),
		Week:  summarize(entries, today.AddDate(0, 0, -(TrendDays-1))),
	}, nil
}

// History lists completed deliveries, most recent first
func (u *SandboxUC) History(ctx context.Context, riderID string) ([]models.HistoryEntry, error) {
	entries, err := u.sandboxRepo.Deliveries(ctx, riderID)
	if err != nil {
		return nil, err
	}
	sortRecentFirst(entries)
	return entries, nil
}

func summarize(entries []models.HistoryEntry, since time.Time) models.PeriodSummary {
	summary := models.PeriodSummary{Breakdown: []models.BreakdownEntry{}}
	for _, e := range entries {
		if e.DeliveredAt.Before(since) {
			continue
		}
		summary.Total += e.Amount
		summary.Trips++
		summary.Breakdown = append(summary.Breakdown, models.BreakdownEntry{
			Time:     e.DeliveredAt.Format("15:04"),
			Amount:   e.Amount,
			Location: e.DeliveryAddress,
		})
	}
	summary.OnlineHours = math.Round(float64(summary.Trips)*hoursPerTrip*10) / 10
	return summary
}

func sortRecentFirst(entries []models.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DeliveredAt.After(entries[j].DeliveredAt)
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
