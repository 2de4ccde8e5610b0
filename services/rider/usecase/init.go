package usecase

import (
	"github.com/fastbuka/rider/services/rider"
)

type RiderUC struct {
	riderGW rider.RiderGW
	session rider.SessionEnder
}

// NewRiderUC creates a new rider usecase instance
func NewRiderUC(riderGW rider.RiderGW, session rider.SessionEnder) *RiderUC {
	return &RiderUC{
		riderGW: riderGW,
		session: session,
	}
}
