package rules

import "github.com/fastbuka/rider/internal/pkg/models"

func validApplication() models.RiderApplication {
	return models.RiderApplication{
		PersonalInfo: models.PersonalInfo{
			FirstName:        "John",
			LastName:         "Doe",
			BirthDate:        "1995-04-12",
			Gender:           "Male",
			PhoneNumber:      "08012345678",
			Email:            "john@x.com",
			HomeAddress:      "12 Herbert Macaulay Way, Yaba",
			Residence:        "Lagos",
			EmergencyContact: "08087654321",
		},
		Identification: models.Identification{
			IDType:        "National ID",
			IDImage:       "rider-applications/id_1",
			PassportPhoto: "rider-applications/passport_1",
			BankName:      "GTBank",
			AccountName:   "John Doe",
			AccountNumber: "0123456789",
		},
		VehicleDetails: models.VehicleDetails{
			VehicleType:        "Motorcycle",
			RegistrationNumber: "LAG-123-XY",
			VehicleOwnership:   models.AnswerYes,
			VehiclePhoto:       "rider-applications/vehicle_1",
		},
		WorkPreferences: models.WorkPreferences{
			WorkingHours:  "Full-time",
			DeliveryAreas: []string{"Yaba", "Ikeja"},
			Experience:    models.AnswerNo,
		},
		Agreement: models.Agreement{
			InfoAccurate:  true,
			TermsAgreed:   true,
			ApprovalRight: true,
			Signature:     "rider-applications/signature_1",
		},
	}
}
