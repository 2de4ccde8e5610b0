package models

// Yes/No answers used by the conditional application fields
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// RiderApplication is the registration payload assembled by the onboarding wizard
// and submitted once to POST /auth/register.
//
// Field rules live in the validate tags; "choice=<set>" names an enumeration
// registered by the onboarding package. "notblank" and "filled_if" reject
// whitespace-only text.
type RiderApplication struct {
	PersonalInfo    PersonalInfo    `json:"personalInfo" yaml:"personalInfo"`
	Identification  Identification  `json:"identification" yaml:"identification"`
	VehicleDetails  VehicleDetails  `json:"vehicleDetails" yaml:"vehicleDetails"`
	WorkPreferences WorkPreferences `json:"workPreferences" yaml:"workPreferences"`
	Agreement       Agreement       `json:"agreement" yaml:"agreement"`
}

// PersonalInfo is stage 1
type PersonalInfo struct {
	FirstName        string `json:"firstName" yaml:"firstName" validate:"required,notblank"`
	LastName         string `json:"lastName" yaml:"lastName" validate:"required,notblank"`
	BirthDate        string `json:"birthDate,omitempty" yaml:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender" yaml:"gender" validate:"required,choice=gender"`
	PhoneNumber      string `json:"phoneNumber" yaml:"phoneNumber" validate:"required,notblank"`
	Email            string `json:"email" yaml:"email" validate:"required,email"`
	HomeAddress      string `json:"homeAddress" yaml:"homeAddress" validate:"required,notblank"`
	Residence        string `json:"residence" yaml:"residence" validate:"required,choice=residence"`
	EmergencyContact string `json:"emergencyContact" yaml:"emergencyContact" validate:"required,notblank"`
}

// Identification is stage 2
type Identification struct {
	IDType        string `json:"idType" yaml:"idType" validate:"required,choice=idType"`
	IDImage       string `json:"idImage" yaml:"idImage" validate:"required,notblank"`
	PassportPhoto string `json:"passportPhoto" yaml:"passportPhoto" validate:"required,notblank"`
	BankName      string `json:"bankName" yaml:"bankName" validate:"required,choice=bank"`
	AccountName   string `json:"accountName" yaml:"accountName" validate:"required,notblank"`
	AccountNumber string `json:"accountNumber" yaml:"accountNumber" validate:"required,digits,len=10"`
}

// VehicleDetails is stage 3
type VehicleDetails struct {
	VehicleType         string `json:"vehicleType" yaml:"vehicleType" validate:"required,choice=vehicleType"`
	RegistrationNumber  string `json:"registrationNumber" yaml:"registrationNumber" validate:"required,notblank"`
	VehicleOwnership    string `json:"vehicleOwnership" yaml:"vehicleOwnership" validate:"required,choice=yesNo"`
	VehicleOwnerContact string `json:"vehicleOwnerContact,omitempty" yaml:"vehicleOwnerContact" validate:"filled_if=VehicleOwnership No"`
	VehiclePhoto        string `json:"vehiclePhoto" yaml:"vehiclePhoto" validate:"required,notblank"`
}

// WorkPreferences is stage 4
type WorkPreferences struct {
	WorkingHours      string   `json:"workingHours" yaml:"workingHours" validate:"required,choice=workingHours"`
	DeliveryAreas     []string `json:"deliveryAreas" yaml:"deliveryAreas" validate:"required,min=1,dive,choice=deliveryArea"`
	Experience        string   `json:"experience" yaml:"experience" validate:"required,choice=yesNo"`
	PreviousCompanies string   `json:"previousCompanies,omitempty" yaml:"previousCompanies" validate:"filled_if=Experience Yes"`
}

// Agreement is stage 5
type Agreement struct {
	InfoAccurate   bool   `json:"infoAccurate" yaml:"infoAccurate" validate:"eq=true"`
	TermsAgreed    bool   `json:"termsAgreed" yaml:"termsAgreed" validate:"eq=true"`
	ApprovalRight  bool   `json:"approvalRight" yaml:"approvalRight" validate:"eq=true"`
	Signature      string `json:"signature" yaml:"signature" validate:"required,notblank"`
	SubmissionDate string `json:"submissionDate,omitempty" yaml:"submissionDate"`
}

// RegistrationResult is the data section of a successful registration
type RegistrationResult struct {
	RiderID string `json:"rider_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Status  string `json:"status,omitempty"`
}
