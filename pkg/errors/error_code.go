package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown  ErrorCode = 1
	ErrCodeInternal ErrorCode = 2

	// Validation errors (100-199)
	ErrCodeInvalidParameter ErrorCode = 100
	ErrCodeEmptySeries      ErrorCode = 101
	ErrCodeLengthMismatch   ErrorCode = 102
	ErrCodeNonFiniteValue   ErrorCode = 103

	// Configuration errors (200-299)
	ErrCodeConfigRead       ErrorCode = 200
	ErrCodeConfigParse      ErrorCode = 201
	ErrCodeConfigValidation ErrorCode = 202
	ErrCodeSchemaGeneration ErrorCode = 203

	// Transport errors (300-399)
	ErrCodeRequestDecode  ErrorCode = 300
	ErrCodeResponseEncode ErrorCode = 301
)
