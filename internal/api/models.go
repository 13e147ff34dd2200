package api

const (
	ErrCodeOrgExists         = "ORG_EXISTS"
	ErrCodeProjectKeyTaken   = "PROJECT_KEY_TAKEN"
	ErrCodeInviteExists      = "INVITE_EXISTS"
	ErrCodeInviteUnusable    = "INVITE_UNUSABLE"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeModuleInUse       = "MODULE_IN_USE"
	ErrCodeAlreadyLinked     = "ALREADY_LINKED"
	ErrCodeNoIntegration     = "NO_INTEGRATION"
	ErrCodeInvalidGeometry   = "INVALID_GEOMETRY"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeNotFound          = "NOT_FOUND"

	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// Error represents a standardized error structure
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error Error `json:"error"`
}
