package requests

// CreateVitals carries one home blood-pressure reading. The second reading
// is entirely optional; blank fields are omitted from the outgoing request,
// never sent as empty strings.
type CreateVitals struct {
	SessionID   string `json:"sessionId" validate:"required"`
	Systolic1   string `json:"systolic1" validate:"required,numeric"`
	Diastolic1  string `json:"diastolic1" validate:"required,numeric"`
	Pulse1      string `json:"pulse1" validate:"omitempty,numeric"`
	Systolic2   string `json:"systolic2" validate:"omitempty,numeric"`
	Diastolic2  string `json:"diastolic2" validate:"omitempty,numeric"`
	Pulse2      string `json:"pulse2" validate:"omitempty,numeric"`
	ReadingDate int64  `json:"readingDate" validate:"required"`
	ReadingTime string `json:"readingTime" validate:"required,clock_12h"`
	Confirm     string `json:"confirm" validate:"required,oneof=yes no"`
}
