// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Every error response carries one of these codes next to a human-readable
// message, so clients can branch on the code and show the message:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "validation_failed",
//	  "error": "niche is required; platform is required"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidation       = "validation_failed"
	ErrCodeTooLarge         = "request_too_large"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeInternal         = "internal_error"
	ErrCodeUnavailable      = "unavailable"

	// Domain-specific:
	ErrCodeGenerationFailed = "generation_failed"
	ErrCodeHistoryFailed    = "history_failed"
)
