package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound            ErrorCode = "TRANSACTION_001"
	TransactionInvalidID           ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount       ErrorCode = "TRANSACTION_003"
	TransactionIncompleteDateRange ErrorCode = "TRANSACTION_004"
	TransactionInvalidDateRange    ErrorCode = "TRANSACTION_005"
	TransactionInvalidInclude      ErrorCode = "TRANSACTION_006"
)

// Account error codes (ACCOUNT_*)
const (
	AccountInvalidID ErrorCode = "ACCOUNT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",

	// Transaction errors
	TransactionNotFound:            "Transaction not found",
	TransactionInvalidID:           "Invalid transaction ID",
	TransactionInvalidAmount:       "Invalid transaction amount",
	TransactionIncompleteDateRange: "start_date and end_date must be supplied together",
	TransactionInvalidDateRange:    "end_date must not be before start_date",
	TransactionInvalidInclude:      "include must list account, category or none",

	// Account errors
	AccountInvalidID: "Invalid account ID",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
