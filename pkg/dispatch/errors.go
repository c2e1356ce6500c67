package dispatch

// ErrorCode is the dispatcher failure taxonomy surfaced to callers.
type ErrorCode string

// Dispatcher error codes. Retryable means the queue should redeliver.
const (
	CodeValidationError   ErrorCode = "VALIDATION_ERROR"
	CodePayloadBuildError ErrorCode = "PAYLOAD_BUILD_ERROR"
	CodeAPIError          ErrorCode = "WHATSAPP_API_ERROR"
	CodeRetryableError    ErrorCode = "WHATSAPP_RETRYABLE_ERROR"
	CodePermanentError    ErrorCode = "WHATSAPP_PERMANENT_ERROR"
)

// Response is the outcome of a Send.
type Response struct {
	Success   bool
	MessageID string
	ErrorCode ErrorCode
	ErrorMsg  string
	// Retryable tells the queue-facing handler to answer 503 instead of 400.
	Retryable bool

	// Provider error details when ErrorCode is WHATSAPP_API_ERROR.
	ProviderErrorType string
	ProviderErrorCode int
}
