package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingSessionIDKey     = "session_id"
	LoggingIdentityIDKey    = "identity_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingEmailKey         = "email"
	LoggingResourceKey      = "resource"
	LoggingCountKey         = "count"
	LoggingMessageIDKey     = "message_id"
	LoggingArticleIDKey     = "article_id"
	LoggingMedicationIDKey  = "medication_id"
	LoggingQueueKey         = "queue"
	LoggingBucketKey        = "bucket"
	LoggingAuthStateKey     = "auth_state"
)
