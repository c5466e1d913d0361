package services

// QueryError is the payload returned in place of a success result when a
// caller-supplied token cannot be interpreted. It is delivered with a 200
// status, so clients must inspect the body.
type QueryError struct {
	Message string `json:"error"`
}

func (e *QueryError) Error() string {
	return e.Message
}

var (
	ErrInvalidDate  = &QueryError{Message: "Invalid Date"}
	ErrInvalidDates = &QueryError{Message: "Invalid Date(s)"}
	ErrInvalidYear  = &QueryError{Message: "Invalid Year"}
)
