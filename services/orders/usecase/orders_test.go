package usecase_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/orders"
	"github.com/fastbuka/rider/services/orders/mocks"
	"github.com/fastbuka/rider/services/orders/usecase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orderA = "11111111-1111-4111-8111-111111111111"
	orderB = "22222222-2222-4222-8222-222222222222"
	orderC = "33333333-3333-4333-8333-333333333333"
)

var yaba = models.Coordinates{Latitude: 6.5095, Longitude: 3.3711}

func nearbyOrders() []models.Order {
	return []models.Order{
		{UUID: orderA, Vendor: models.Location{Address: "Chicken Republic, Yaba"}, DeliveryAddress: "Akoka", Distance: 1.2, TotalAmount: 2500},
		{UUID: orderB, Vendor: models.Location{Address: "Mama Put, Sabo"}, DeliveryAddress: "Onike", Distance: 0.8, TotalAmount: 1800},
		{UUID: orderC, Vendor: models.Location{Address: "Domino's, Ikeja"}, DeliveryAddress: "Alausa", Distance: 4.5, TotalAmount: 6200},
	}
}

func ids(list []models.Order) []string {
	out := make([]string, len(list))
	for i, o := range list {
		out[i] = o.UUID
	}
	return out
}

func setup(t *testing.T) (*usecase.OrdersUC, *mocks.MockOrdersGW) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockOrdersGW(ctrl)
	return usecase.NewOrdersUC(gw), gw
}

func loaded(t *testing.T) (*usecase.OrdersUC, *mocks.MockOrdersGW) {
	uc, gw := setup(t)
	gw.EXPECT().ListOrders(gomock.Any(), yaba).Return(nearbyOrders(), nil)
	require.NoError(t, uc.FetchAvailable(context.Background(), yaba))
	return uc, gw
}

func TestFetchAvailable(t *testing.T) {
	t.Run("populates list and count", func(t *testing.T) {
		uc, _ := loaded(t)

		assert.Equal(t, []string{orderA, orderB, orderC}, ids(uc.Available()))
		assert.Equal(t, 3, uc.Count())
		for _, o := range uc.Available() {
			assert.Equal(t, models.OrderStatusAvailable, o.Status)
		}
	})

	t.Run("failure empties the list", func(t *testing.T) {
		uc, gw := loaded(t)
		gw.EXPECT().ListOrders(gomock.Any(), yaba).Return(nil, errors.New("request failed: timeout"))

		err := uc.FetchAvailable(context.Background(), yaba)

		assert.Error(t, err)
		assert.Empty(t, uc.Available())
		assert.Equal(t, 0, uc.Count())
	})

	t.Run("invalid coordinates never reach the network and empty the list", func(t *testing.T) {
		for name, coords := range map[string]models.Coordinates{
			"latitude out of range": {Latitude: 120},
			"nan latitude":          {Latitude: math.NaN(), Longitude: 3.37},
			"nan longitude":         {Latitude: 6.5, Longitude: math.NaN()},
			"infinite longitude":    {Latitude: 6.5, Longitude: math.Inf(1)},
		} {
			t.Run(name, func(t *testing.T) {
				// gw has no further expectations; a ListOrders call fails the test
				uc, _ := loaded(t)
				require.Equal(t, 3, uc.Count())

				err := uc.FetchAvailable(context.Background(), coords)

				assert.Error(t, err)
				assert.Empty(t, uc.Available())
				assert.Equal(t, 0, uc.Count())
			})
		}
	})

	t.Run("accepted orders are not listed again", func(t *testing.T) {
		uc, gw := loaded(t)
		gw.EXPECT().AcceptOrder(gomock.Any(), orderA).Return(nil)
		require.NoError(t, uc.Accept(context.Background(), orderA))

		gw.EXPECT().ListOrders(gomock.Any(), yaba).Return(nearbyOrders(), nil)
		require.NoError(t, uc.FetchAvailable(context.Background(), yaba))

		assert.Equal(t, []string{orderB, orderC}, ids(uc.Available()))
		assert.Equal(t, 2, uc.Count())
	})
}

func TestAccept(t *testing.T) {
	t.Run("removes exactly that order", func(t *testing.T) {
		uc, gw := loaded(t)
		gw.EXPECT().AcceptOrder(gomock.Any(), orderB).Return(nil)

		require.NoError(t, uc.Accept(context.Background(), orderB))

		assert.Equal(t, []string{orderA, orderC}, ids(uc.Available()))
		assert.Equal(t, 2, uc.Count())

		active := uc.Active()
		require.Len(t, active, 1)
		assert.Equal(t, orderB, active[0].UUID)
		assert.Equal(t, models.OrderStatusAccepted, active[0].Status)
		require.NotNil(t, active[0].AcceptedAt)
		assert.WithinDuration(t, time.Now(), *active[0].AcceptedAt, time.Minute)
	})

	t.Run("failure leaves list and count unchanged", func(t *testing.T) {
		uc, gw := loaded(t)
		gw.EXPECT().AcceptOrder(gomock.Any(), orderA).Return(errors.New("api error: 409 Order already taken"))

		err := uc.Accept(context.Background(), orderA)

		assert.Error(t, err)
		assert.Equal(t, []string{orderA, orderB, orderC}, ids(uc.Available()))
		assert.Equal(t, 3, uc.Count())
		assert.Empty(t, uc.Active())
	})

	t.Run("uppercase id matches", func(t *testing.T) {
		uc, gw := loaded(t)
		gw.EXPECT().AcceptOrder(gomock.Any(), orderC).Return(nil)

		require.NoError(t, uc.Accept(context.Background(), strings.ToUpper(orderC)))
		assert.Equal(t, []string{orderA, orderB}, ids(uc.Available()))
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := loaded(t)

		err := uc.Accept(context.Background(), "order-1")

		assert.ErrorIs(t, err, orders.ErrInvalidOrderID)
		assert.Equal(t, 3, uc.Count())
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, _ := loaded(t)

		err := uc.Accept(context.Background(), "44444444-4444-4444-8444-444444444444")

		assert.ErrorIs(t, err, orders.ErrOrderNotFound)
	})
}

func TestDeliver(t *testing.T) {
	uc, gw := loaded(t)
	gw.EXPECT().AcceptOrder(gomock.Any(), orderA).Return(nil)
	require.NoError(t, uc.Accept(context.Background(), orderA))

	err := uc.Deliver(context.Background(), orderB)
	assert.ErrorIs(t, err, orders.ErrOrderNotFound)

	gw.EXPECT().DeliverOrder(gomock.Any(), orderA).Return(errors.New("request failed"))
	assert.Error(t, uc.Deliver(context.Background(), orderA))
	assert.Len(t, uc.Active(), 1)

	gw.EXPECT().DeliverOrder(gomock.Any(), orderA).Return(nil)
	require.NoError(t, uc.Deliver(context.Background(), orderA))
	assert.Empty(t, uc.Active())
	assert.Equal(t, 2, uc.Count())
}

func TestCountPublishing(t *testing.T) {
	uc, gw := setup(t)

	ch, cancel := uc.SubscribeCount()
	defer cancel()
	assert.Equal(t, 0, <-ch)

	gw.EXPECT().ListOrders(gomock.Any(), yaba).Return(nearbyOrders(), nil)
	require.NoError(t, uc.FetchAvailable(context.Background(), yaba))
	assert.Equal(t, 3, <-ch)

	gw.EXPECT().AcceptOrder(gomock.Any(), orderA).Return(nil)
	require.NoError(t, uc.Accept(context.Background(), orderA))
	assert.Equal(t, 2, <-ch)

	uc.Reset()
	assert.Equal(t, 0, <-ch)
	assert.Empty(t, uc.Available())
	assert.Empty(t, uc.Active())
}

func TestAvailableReturnsCopy(t *testing.T) {
	uc, _ := loaded(t)

	list := uc.Available()
	list[0].UUID = "tampered"

	assert.Equal(t, orderA, uc.Available()[0].UUID)
}
