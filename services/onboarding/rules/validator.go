package rules

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/onboarding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// labels are the form captions used in error messages
var labels = map[string]string{
	"firstName":           "First name",
	"lastName":            "Last name",
	"birthDate":           "Date of birth",
	"gender":              "Gender",
	"phoneNumber":         "Phone number",
	"email":               "Email",
	"homeAddress":         "Home address",
	"residence":           "State of residence",
	"emergencyContact":    "Emergency contact",
	"idType":              "ID type",
	"idImage":             "ID image",
	"passportPhoto":       "Passport photo",
	"bankName":            "Bank",
	"accountName":         "Account name",
	"accountNumber":       "Account number",
	"vehicleType":         "Vehicle type",
	"registrationNumber":  "Registration number",
	"vehicleOwnership":    "Vehicle ownership",
	"vehicleOwnerContact": "Vehicle owner contact",
	"vehiclePhoto":        "Vehicle photo",
	"workingHours":        "Working hours",
	"deliveryAreas":       "Delivery areas",
	"experience":          "Experience",
	"previousCompanies":   "Previous companies",
	"infoAccurate":        "Information accuracy declaration",
	"termsAgreed":         "Terms and conditions",
	"approvalRight":       "Approval right acknowledgement",
	"signature":           "Signature",
}

// Validator evaluates the declarative field rules of each stage
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the custom tags and wire-name reporting
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag name or nil func
	_ = v.RegisterValidation("choice", func(fl validator.FieldLevel) bool {
		return IsChoice(fl.Param(), fl.Field().String())
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("filled_if", filledIf)

	return &Validator{validate: v}
}

// ValidateStage checks the fields of one stage
func (v *Validator) ValidateStage(stage onboarding.Stage, app models.RiderApplication) onboarding.ValidationResult {
	var section interface{}
	switch stage {
	case onboarding.StagePersonalInfo:
		section = app.PersonalInfo
	case onboarding.StageIdentification:
		section = app.Identification
	case onboarding.StageVehicleDetails:
		section = app.VehicleDetails
	case onboarding.StageWorkPreferences:
		section = app.WorkPreferences
	case onboarding.StageAgreement:
		section = app.Agreement
	default:
		return onboarding.ValidationResult{"stage": fmt.Sprintf("unknown stage %d", int(stage))}
	}

	return v.check(section)
}

// FirstInvalidStage returns the earliest failing stage and its errors,
// or a zero stage when the whole application is valid
func (v *Validator) FirstInvalidStage(app models.RiderApplication) (onboarding.Stage, onboarding.ValidationResult) {
	for _, stage := range onboarding.Stages() {
		if res := v.ValidateStage(stage, app); !res.Valid() {
			return stage, res
		}
	}
	return 0, nil
}

// filledIf is required_if that also rejects whitespace-only text.
// Param is "<Field> <value>" naming a sibling field.
func filledIf(fl validator.FieldLevel) bool {
	params := strings.Fields(fl.Param())
	if len(params) != 2 {
		return false
	}
	other := reflect.Indirect(fl.Parent()).FieldByName(params[0])
	if !other.IsValid() || other.String() != params[1] {
		return true
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}

func (v *Validator) check(section interface{}) onboarding.ValidationResult {
	err := v.validate.Struct(section)
	if err == nil {
		return onboarding.ValidationResult{}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return onboarding.ValidationResult{"form": err.Error()}
	}

	result := onboarding.ValidationResult{}
	for _, fe := range fieldErrs {
		field := fe.Field()
		element := false
		// Element errors such as deliveryAreas[1] are reported on the list
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
			element = true
		}
		if _, exists := result[field]; exists {
			continue
		}
		result[field] = message(field, fe, element)
	}
	return result
}

func message(field string, fe validator.FieldError, element bool) string {
	label, ok := labels[field]
	if !ok {
		label = field
	}

	switch fe.Tag() {
	case "required", "required_if", "notblank", "filled_if":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least one %s", strings.ToLower(strings.TrimSuffix(label, "s")))
		}
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("Select at least one %s", strings.ToLower(strings.TrimSuffix(label, "s")))
	case "email":
		return "Please enter a valid email address"
	case "digits":
		return fmt.Sprintf("%s must contain only digits", label)
	case "len":
		return fmt.Sprintf("%s must be exactly %s digits", label, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)
	case "choice":
		if element {
			return fmt.Sprintf("%s contains an unsupported option", label)
		}
		return fmt.Sprintf("Please select a valid %s", strings.ToLower(label))
	case "eq":
		return fmt.Sprintf("%s must be accepted", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
