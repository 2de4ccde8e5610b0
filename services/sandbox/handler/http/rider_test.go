package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/sandbox"
)

func TestGetRider(t *testing.T) {
	h, uc := setup(t)
	c, rec := newContext(http.MethodGet, "/rider", "")

	uc.EXPECT().GetRider(gomock.Any(), riderID).
		Return(&models.RiderProfile{ID: riderID, Email: "rider@fastbuka.com", FirstName: "Tunde"}, nil)

	require.NoError(t, h.GetRider(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var profile models.RiderProfile
	require.NoError(t, json.Unmarshal(envelope(t, rec).Data, &profile))
	assert.Equal(t, "Tunde", profile.FirstName)
}

func TestUpdateRider(t *testing.T) {
	h, uc := setup(t)
	c, rec := newContext(http.MethodPatch, "/rider", `{"phone_number":"08099990000"}`)

	phone := "08099990000"
	uc.EXPECT().UpdateRider(gomock.Any(), riderID, models.RiderUpdate{PhoneNumber: &phone}).
		Return(&models.RiderProfile{ID: riderID, PhoneNumber: phone}, nil)

	require.NoError(t, h.UpdateRider(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteRider_NotFound(t *testing.T) {
	h, uc := setup(t)
	c, rec := newContext(http.MethodDelete, "/rider", "")

	uc.EXPECT().DeleteRider(gomock.Any(), riderID).Return(sandbox.ErrRiderNotFound)

	require.NoError(t, h.DeleteRider(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrders(t *testing.T) {
	t.Run("parses coordinates", func(t *testing.T) {
		h, uc := setup(t)
		c, rec := newContext(http.MethodGet, "/rider/orders?longitude=3.3711&latitude=6.5095", "")

		uc.EXPECT().NearbyOrders(gomock.Any(), models.Coordinates{Latitude: 6.5095, Longitude: 3.3711}).
			Return([]models.Order{{UUID: "o1"}, {UUID: "o2"}}, nil)

		require.NoError(t, h.ListOrders(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var orders []models.Order
		require.NoError(t, json.Unmarshal(envelope(t, rec).Data, &orders))
		assert.Len(t, orders, 2)
	})

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing latitude", target: "/rider/orders?longitude=3.37"},
		{name: "not a number", target: "/rider/orders?longitude=east&latitude=6.5"},
		{name: "out of range", target: "/rider/orders?longitude=3.37&latitude=123"},
		{name: "nan", target: "/rider/orders?longitude=NaN&latitude=6.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setup(t)
			c, rec := newContext(http.MethodGet, tt.target, "")

			require.NoError(t, h.ListOrders(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAcceptOrder(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "accepted", wantStatus: http.StatusOK},
		{name: "taken", ucErr: sandbox.ErrOrderTaken, wantStatus: http.StatusConflict},
		{name: "unknown", ucErr: sandbox.ErrOrderNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := setup(t)
			c, rec := newContext(http.MethodPost, "/rider/accept_order/o1", "")
			c.SetParamNames("uuid")
			c.SetParamValues("o1")

			uc.EXPECT().AcceptOrder(gomock.Any(), riderID, "o1").Return(tt.ucErr)

			require.NoError(t, h.AcceptOrder(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeliverOrder_NotAssigned(t *testing.T) {
	h, uc := setup(t)
	c, rec := newContext(http.MethodPost, "/rider/deliver_order/o1", "")
	c.SetParamNames("uuid")
	c.SetParamValues("o1")

	uc.EXPECT().DeliverOrder(gomock.Any(), riderID, "o1").Return(sandbox.ErrOrderNotAssigned)

	require.NoError(t, h.DeliverOrder(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSummaries(t *testing.T) {
	h, uc := setup(t)

	uc.EXPECT().Earnings(gomock.Any(), riderID).Return(&models.Earnings{Total: 10300, Currency: "NGN"}, nil)
	uc.EXPECT().Dashboard(gomock.Any(), riderID).Return(&models.Dashboard{}, nil)
	uc.EXPECT().History(gomock.Any(), riderID).Return([]models.HistoryEntry{{OrderUUID: "o1"}}, nil)

	c, rec := newContext(http.MethodGet, "/rider/earnings", "")
	require.NoError(t, h.Earnings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/rider/dashboard", "")
	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/rider/history", "")
	require.NoError(t, h.History(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
