package rules

import (
	"fmt"

	"github.com/fastbuka/rider/internal/pkg/media"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/onboarding"
)

// MediaField is an application field holding an image reference
type MediaField struct {
	Field string
	Stage onboarding.Stage
	Ref   func(app *models.RiderApplication) *string
}

// MediaFields lists the image references uploaded before registration, in stage order
var MediaFields = []MediaField{
	{Field: "idImage", Stage: onboarding.StageIdentification, Ref: func(app *models.RiderApplication) *string { return &app.Identification.IDImage }},
	{Field: "passportPhoto", Stage: onboarding.StageIdentification, Ref: func(app *models.RiderApplication) *string { return &app.Identification.PassportPhoto }},
	{Field: "vehiclePhoto", Stage: onboarding.StageVehicleDetails, Ref: func(app *models.RiderApplication) *string { return &app.VehicleDetails.VehiclePhoto }},
	{Field: "signature", Stage: onboarding.StageAgreement, Ref: func(app *models.RiderApplication) *string { return &app.Agreement.Signature }},
}

// MissingMedia reports media fields written as file paths that do not name a
// readable file. Only the earliest affected stage is returned; zero means none.
func MissingMedia(app models.RiderApplication) (onboarding.Stage, onboarding.ValidationResult) {
	var stage onboarding.Stage
	res := onboarding.ValidationResult{}

	for _, mf := range MediaFields {
		if stage != 0 && mf.Stage != stage {
			break
		}
		ref := *mf.Ref(&app)
		if !media.LooksLocal(ref) || media.IsLocalFile(ref) {
			continue
		}
		stage = mf.Stage
		res[mf.Field] = fmt.Sprintf("%s file not found: %s", labels[mf.Field], ref)
	}

	if stage == 0 {
		return 0, nil
	}
	return stage, res
}
