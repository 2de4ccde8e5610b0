package models

// User is the authenticated rider as returned by the login endpoint
// and persisted under the "user" storage key.
type User struct {
	ID      string  `json:"id,omitempty"`
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
}

// Profile holds the rider's display names
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username,omitempty"`
}

// FullName joins first and last name
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the data section of a successful login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// VerifyEmailRequest is the body of POST /auth/verify_email
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Session is the authenticated state derived from a stored token and user
type Session struct {
	Token         string `json:"-"`
	User          User   `json:"user"`
	Authenticated bool   `json:"authenticated"`
}

// RiderProfile is the account record behind GET /rider
type RiderProfile struct {
	ID            string `json:"id,omitempty"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	HomeAddress   string `json:"home_address,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	Status        string `json:"status,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// RiderUpdate carries the editable profile fields for PATCH /rider.
// Nil fields are left untouched by the server.
type RiderUpdate struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	HomeAddress *string `json:"home_address,omitempty"`
}
