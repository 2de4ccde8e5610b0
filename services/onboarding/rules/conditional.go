package rules

import "github.com/fastbuka/rider/internal/pkg/models"

// ConditionalField is a field that only belongs in the payload while its
// governing answer demands it
type ConditionalField struct {
	Field    string
	Required func(app *models.RiderApplication) bool
	Clear    func(app *models.RiderApplication)
}

// ConditionalFields mirrors the filled_if tags on the application model
var ConditionalFields = []ConditionalField{
	{
		Field: "vehicleOwnerContact",
		Required: func(app *models.RiderApplication) bool {
			return app.VehicleDetails.VehicleOwnership == models.AnswerNo
		},
		Clear: func(app *models.RiderApplication) {
			app.VehicleDetails.VehicleOwnerContact = ""
		},
	},
	{
		Field: "previousCompanies",
		Required: func(app *models.RiderApplication) bool {
			return app.WorkPreferences.Experience == models.AnswerYes
		},
		Clear: func(app *models.RiderApplication) {
			app.WorkPreferences.PreviousCompanies = ""
		},
	},
}

// ClearInapplicable empties every conditional field whose condition does not hold
func ClearInapplicable(app *models.RiderApplication) {
	for _, cf := range ConditionalFields {
		if !cf.Required(app) {
			cf.Clear(app)
		}
	}
}
