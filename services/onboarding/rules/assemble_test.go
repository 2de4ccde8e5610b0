package rules

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func TestAssemble_RoundTrip(t *testing.T) {
	draft := validApplication()

	app := Assemble(draft, submittedAt)

	payload, err := json.Marshal(app)
	require.NoError(t, err)

	var decoded models.RiderApplication
	require.NoError(t, json.Unmarshal(payload, &decoded))

	expected := validApplication()
	expected.Agreement.SubmissionDate = "2026-10-17"
	assert.Equal(t, expected, decoded)

	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.NotContains(t, raw["workPreferences"], "previousCompanies")
	assert.NotContains(t, raw["vehicleDetails"], "vehicleOwnerContact")
}

func TestAssemble_ClearsInapplicableFields(t *testing.T) {
	draft := validApplication()
	draft.VehicleDetails.VehicleOwnership = models.AnswerYes
	draft.VehicleDetails.VehicleOwnerContact = "08011112222"
	draft.WorkPreferences.Experience = models.AnswerNo
	draft.WorkPreferences.PreviousCompanies = "Chowdeck"

	app := Assemble(draft, submittedAt)

	assert.Empty(t, app.VehicleDetails.VehicleOwnerContact)
	assert.Empty(t, app.WorkPreferences.PreviousCompanies)

	// The draft keeps what the rider typed
	assert.Equal(t, "08011112222", draft.VehicleDetails.VehicleOwnerContact)
	assert.Equal(t, "Chowdeck", draft.WorkPreferences.PreviousCompanies)
}

func TestAssemble_KeepsApplicableFields(t *testing.T) {
	draft := validApplication()
	draft.VehicleDetails.VehicleOwnership = models.AnswerNo
	draft.VehicleDetails.VehicleOwnerContact = "08011112222"
	draft.WorkPreferences.Experience = models.AnswerYes
	draft.WorkPreferences.PreviousCompanies = "Chowdeck"

	app := Assemble(draft, submittedAt)

	payload, err := json.Marshal(app)
	require.NoError(t, err)

	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.Equal(t, "Chowdeck", raw["workPreferences"]["previousCompanies"])
	assert.Equal(t, "08011112222", raw["vehicleDetails"]["vehicleOwnerContact"])
}

func TestAssemble_TrimmedPayloadStaysValid(t *testing.T) {
	v := NewValidator()

	draft := validApplication()
	draft.PersonalInfo.FirstName = "  John "
	draft.PersonalInfo.HomeAddress = "\t12 Herbert Macaulay Way, Yaba "
	draft.Identification.AccountName = " John Doe"

	stage, _ := v.FirstInvalidStage(draft)
	require.Equal(t, 0, int(stage))

	app := Assemble(draft, submittedAt)
	assert.Equal(t, "John", app.PersonalInfo.FirstName)
	assert.Equal(t, "12 Herbert Macaulay Way, Yaba", app.PersonalInfo.HomeAddress)
	assert.Equal(t, "John Doe", app.Identification.AccountName)

	stage, res := v.FirstInvalidStage(app)
	assert.Equal(t, 0, int(stage))
	assert.Nil(t, res)

	draft.PersonalInfo.FirstName = "   "
	stage, res = v.FirstInvalidStage(draft)
	assert.Equal(t, 1, int(stage))
	assert.Contains(t, res, "firstName")
}

func TestAssemble_DoesNotAliasDeliveryAreas(t *testing.T) {
	draft := validApplication()

	app := Assemble(draft, submittedAt)
	app.WorkPreferences.DeliveryAreas[0] = "Lekki"

	assert.Equal(t, "Yaba", draft.WorkPreferences.DeliveryAreas[0])
}

func TestAssemble_KeepsExistingSubmissionDate(t *testing.T) {
	draft := validApplication()
	draft.Agreement.SubmissionDate = "2026-10-01"

	assert.Equal(t, "2026-10-01", Assemble(draft, submittedAt).Agreement.SubmissionDate)
}

func TestConditionalFields(t *testing.T) {
	names := make([]string, 0, len(ConditionalFields))
	for _, cf := range ConditionalFields {
		names = append(names, cf.Field)
	}
	assert.ElementsMatch(t, []string{"vehicleOwnerContact", "previousCompanies"}, names)
}
