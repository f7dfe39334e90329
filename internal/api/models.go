package api

// Request and response schemas, one per endpoint. Payloads are
// validated at the boundary before any business logic runs.

// TokenRequest defines the payload for the token issuance endpoint.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"omitempty,max=200"`
}

// TokenResponse defines the successful response for token issuance.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateCampRequest defines the payload for creating a camp.
type CreateCampRequest struct {
	Name                   string  `json:"name"                   validate:"required"`
	Fees                   float64 `json:"fees"                   validate:"gte=0"`
	Location               string  `json:"location"               validate:"required"`
	DateTime               string  `json:"dateTime"               validate:"required"`
	HealthcareProfessional string  `json:"healthcareProfessional" validate:"required"`
	Description            string  `json:"description"`
	Image                  string  `json:"image"`
}

// UpdateCampRequest defines the payload for the camp update endpoint.
// The name arrives under campName, matching the deployed clients.
type UpdateCampRequest struct {
	CampName               string  `json:"campName"               validate:"required"`
	Fees                   float64 `json:"fees"                   validate:"gte=0"`
	Location               string  `json:"location"               validate:"required"`
	DateTime               string  `json:"dateTime"               validate:"required"`
	HealthcareProfessional string  `json:"healthcareProfessional" validate:"required"`
}

// JoinCampRequest defines the payload for joining a camp.
type JoinCampRequest struct {
	CampName        string  `json:"campName"        validate:"required"`
	Email           string  `json:"email"           validate:"required,email"`
	ParticipantName string  `json:"participantName" validate:"omitempty,max=200"`
	Fees            float64 `json:"fees"            validate:"gte=0"`
	Location        string  `json:"location"`
	Age             int     `json:"age"             validate:"omitempty,gte=0,lte=150"`
	Phone           string  `json:"phone"`
	Gender          string  `json:"gender"`
}

// CreateUserRequest defines the payload for user self-registration.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest defines the payload for the profile update endpoint.
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// CreatePaymentIntentRequest defines the payload for payment intent creation.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreatePaymentIntentResponse carries the provider's client secret.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest defines the payload for recording a payment.
type RecordPaymentRequest struct {
	Email         string  `json:"email"         validate:"required,email"`
	Amount        float64 `json:"amount"        validate:"gte=0"`
	CampName      string  `json:"campName"`
	TransactionID string  `json:"transactionId"`
}

// FeedbackRequest defines the payload for submitting feedback.
type FeedbackRequest struct {
	CampID  string `json:"campId"  validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Rating  int    `json:"rating"  validate:"omitempty,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// InsertResponse reports the generated ID of an inserted document.
// InsertedID is a pointer so idempotent no-op inserts can report null.
type InsertResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// UpdateResponse reports how many documents an update matched.
type UpdateResponse struct {
	Message      string `json:"message,omitempty"`
	MatchedCount int64  `json:"matchedCount"`
}

// DeleteResponse reports the outcome of a delete.
type DeleteResponse struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deletedCount,omitempty"`
	Message      string `json:"message,omitempty"`
}

// AdminCheckResponse reports whether the queried user is an administrator.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

// RecordPaymentResponse wraps the insert outcome of a recorded payment.
type RecordPaymentResponse struct {
	PaymentResult InsertResponse `json:"paymentResult"`
}
