package model

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse is the body returned by health checks and successful mutations.
type OKResponse struct {
	OK bool `json:"ok"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeMissingField  = "MISSING_FIELD"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidBody      = NewDomainError(ErrCodeInvalidJSON, "invalid request body")
	ErrRecordKeyMissing = NewDomainError(ErrCodeMissingField, "id and name required")
	ErrPasswordRequired = NewDomainError(ErrCodeMissingField, "password required")
	ErrWrongPassword    = NewDomainError(ErrCodeUnauthorised, "wrong password")
	ErrMissingToken     = NewDomainError(ErrCodeUnauthorised, "Missing token")
	ErrInvalidToken     = NewDomainError(ErrCodeUnauthorised, "Invalid token")
	ErrForbidden        = NewDomainError(ErrCodeForbidden, "Forbidden")
	ErrShopExists       = NewDomainError(ErrCodeConflict, "shop already exists")
	ErrMenuItemExists   = NewDomainError(ErrCodeConflict, "menu item already exists")
)
