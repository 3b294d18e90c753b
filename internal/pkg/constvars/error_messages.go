package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients. The auth messages are fixed plain-language
// mappings; raw remote error text is never shown beyond the unknown fallback.
const (
	ErrClientInvalidCredentials = "That email or password doesn't match our records. Please try again."
	ErrClientUnconfirmedAccount = "Please check your email and click the confirmation link before signing in."
	ErrClientTooManyAttempts    = "Too many sign-in attempts. Please wait a few minutes and try again."
	ErrClientSignInUnknown      = "We couldn't sign you in right now. Please try again."

	ErrClientNotLoggedIn    = "Your session ended, please sign in again."
	ErrClientNotAuthorized  = "You can't access this feature."
	ErrClientEmptyMessage   = "Please write a message before sending."
	ErrClientSendMessage    = "Your message couldn't be sent. Your draft is saved — please try again."

	ErrClientCouldNotLoad = "We couldn't load your %s. Please refresh the page."
	ErrClientNotFound     = "We couldn't find that %s."

	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
)

// Resource names interpolated into the client load/not-found messages.
const (
	ResourceLabelMedications  = "medications"
	ResourceLabelMedication   = "medication"
	ResourceLabelCarePlan     = "care plan"
	ResourceLabelCareTeam     = "care team"
	ResourceLabelMessages     = "messages"
	ResourceLabelArticles     = "articles"
	ResourceLabelArticle      = "article"
	ResourceLabelAppointments = "appointments"
	ResourceLabelProfile      = "profile"
	ResourceLabelDashboard    = "dashboard"
	ResourceLabelPreferences  = "preferences"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidCredentials    = "care store rejected the credentials"
	ErrDevAuthUnconfirmedAccount    = "care store account email not confirmed"
	ErrDevAuthRateLimited           = "sign-in attempts rate limited"
	ErrDevAuthUnknown               = "unclassified care store auth failure"
	ErrDevAuthSignOut               = "care store sign-out failed"
	ErrDevEmptyMessageText          = "message text empty after trimming"

	// Care store row API messages
	ErrDevStoreSelectRows    = "failed to select %s rows from the care store"
	ErrDevStoreInsertRow     = "failed to insert %s row into the care store"
	ErrDevStoreDecodeRows    = "failed to decode %s rows from the care store"
	ErrDevStoreRowNotFound   = "no %s row matched the requested id"
	ErrDevStoreNotUnique     = "%s query matched more than one row, expected exactly one"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"

	// Minio messages
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevQueuePublish = "failed to publish message to queue %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process something related to machine system"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
