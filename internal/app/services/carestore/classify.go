package carestore

import (
	"fmt"
	"strings"

	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"
)

// ClassifySignInFailure maps a rejected sign-in to one of four buckets:
// invalid credentials, unconfirmed email, rate limited, or unknown. Matching
// is case-insensitive substring matching over the store's error text, so
// wording drift between store versions still lands in the right bucket. Raw
// store text never reaches the client message.
func ClassifySignInFailure(statusCode int, errText string) *exceptions.CustomError {
	cause := fmt.Errorf("care store returned status %d: %s", statusCode, errText)
	lowered := strings.ToLower(errText)

	switch {
	case strings.Contains(lowered, "invalid login credentials"),
		strings.Contains(lowered, "invalid_credentials"),
		strings.Contains(lowered, "invalid_grant"):
		return exceptions.ErrAuthInvalidCredentials(cause)
	case strings.Contains(lowered, "email not confirmed"),
		strings.Contains(lowered, "email_not_confirmed"):
		return exceptions.ErrAuthUnconfirmedAccount(cause)
	case statusCode == constvars.StatusTooManyRequests,
		strings.Contains(lowered, "rate limit"),
		strings.Contains(lowered, "too many requests"),
		strings.Contains(lowered, "over_request_rate_limit"):
		return exceptions.ErrAuthRateLimited(cause)
	default:
		return exceptions.ErrAuthUnknown(cause)
	}
}
