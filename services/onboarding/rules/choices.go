package rules

import (
	"reflect"
	"strings"

	"github.com/fastbuka/rider/internal/pkg/models"
)

// Choice set names used by the "choice" validate tag
const (
	ChoiceGender       = "gender"
	ChoiceResidence    = "residence"
	ChoiceIDType       = "idType"
	ChoiceBank         = "bank"
	ChoiceVehicleType  = "vehicleType"
	ChoiceYesNo        = "yesNo"
	ChoiceWorkingHours = "workingHours"
	ChoiceDeliveryArea = "deliveryArea"
)

var choices = map[string][]string{
	ChoiceGender: {"Male", "Female"},
	ChoiceResidence: {
		"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue", "Borno",
		"Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu", "Gombe", "Imo",
		"Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos",
		"Nasarawa", "Niger", "Ogun", "Ondo", "Osun", "Oyo", "Plateau", "Rivers",
		"Sokoto", "Taraba", "Yobe", "Zamfara", "FCT",
	},
	ChoiceIDType: {"National ID", "Driver's License", "Voter's Card"},
	ChoiceBank: {
		"Access Bank", "Citibank", "Ecobank", "Fidelity Bank", "First Bank", "FCMB",
		"Globus Bank", "GTBank", "Heritage Bank", "Keystone Bank", "Kuda Bank", "Moniepoint",
		"Opay", "Palmpay", "Polaris Bank", "Providus Bank", "Stanbic IBTC", "Standard Chartered",
		"Sterling Bank", "Union Bank", "UBA", "Unity Bank", "Wema Bank", "Zenith Bank",
	},
	ChoiceVehicleType:  {"Motorcycle", "Bicycle", "Car"},
	ChoiceYesNo:        {models.AnswerYes, models.AnswerNo},
	ChoiceWorkingHours: {"Full-time", "Part-time", "Weekends", "Flexible"},
	ChoiceDeliveryArea: {
		"Ikeja", "Lekki", "Victoria Island", "Ikoyi", "Yaba", "Surulere", "Ajah",
		"Festac", "Maryland", "Gbagada", "Apapa", "Oshodi", "Ikorodu", "Magodo",
	},
}

var choiceIndex = func() map[string]map[string]struct{} {
	index := make(map[string]map[string]struct{}, len(choices))
	for set, values := range choices {
		index[set] = make(map[string]struct{}, len(values))
		for _, v := range values {
			index[set][v] = struct{}{}
		}
	}
	return index
}()

// fieldChoices maps a wire field name to the choice set named in its validate tag
var fieldChoices = func() map[string]string {
	out := make(map[string]string)
	app := reflect.TypeOf(models.RiderApplication{})
	for i := 0; i < app.NumField(); i++ {
		section := app.Field(i).Type
		for j := 0; j < section.NumField(); j++ {
			f := section.Field(j)
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
				if set, ok := strings.CutPrefix(rule, "choice="); ok {
					out[name] = set
				}
			}
		}
	}
	return out
}()

// FieldOptions returns the allowed values of a field, or nil for free text
func FieldOptions(field string) []string {
	set, ok := fieldChoices[field]
	if !ok {
		return nil
	}
	return Options(set)
}

// Options returns the allowed values of a choice set in display order
func Options(set string) []string {
	values := choices[set]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// IsChoice reports whether value belongs to set
func IsChoice(set, value string) bool {
	_, ok := choiceIndex[set][value]
	return ok
}
