package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// API prefix
	APIPrefix = "/api/subscribe"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableWallets        = "wallets"
	TablePointHistories = "point_histories"
	TableSubscriptions  = "subscriptions"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
