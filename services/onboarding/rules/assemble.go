package rules

import (
	"strings"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
)

// Assemble builds the registration payload from the draft. The draft is not modified.
func Assemble(draft models.RiderApplication, now time.Time) models.RiderApplication {
	app := draft
	app.WorkPreferences.DeliveryAreas = append([]string(nil), draft.WorkPreferences.DeliveryAreas...)

	p := &app.PersonalInfo
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.HomeAddress = strings.TrimSpace(p.HomeAddress)
	p.EmergencyContact = strings.TrimSpace(p.EmergencyContact)

	app.Identification.AccountName = strings.TrimSpace(app.Identification.AccountName)
	app.VehicleDetails.RegistrationNumber = strings.TrimSpace(app.VehicleDetails.RegistrationNumber)
	app.VehicleDetails.VehicleOwnerContact = strings.TrimSpace(app.VehicleDetails.VehicleOwnerContact)
	app.WorkPreferences.PreviousCompanies = strings.TrimSpace(app.WorkPreferences.PreviousCompanies)

	ClearInapplicable(&app)

	if app.Agreement.SubmissionDate == "" {
		app.Agreement.SubmissionDate = models.FormatDate(now)
	}

	return app
}
