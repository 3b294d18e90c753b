package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

// Care store row collections. Articles are the only collection that is not
// scoped to a patient.
const (
	CollectionPatients     = "patients"
	CollectionMedications  = "medications"
	CollectionCarePlans    = "care_plans"
	CollectionCareGoals    = "care_plan_goals"
	CollectionCareTeam     = "care_team_members"
	CollectionMessages     = "messages"
	CollectionArticles     = "articles"
	CollectionAppointments = "appointments"
)

const (
	CareStoreRestPath = "/rest/v1"
	CareStoreAuthPath = "/auth/v1"
)

const (
	RolePatient = "patient"
)

// Auth states published to session subscribers.
const (
	AuthStateAuthenticated          = "authenticated"
	AuthStateAuthenticatedNoProfile = "authenticated_without_profile"
	AuthStateUnauthenticated        = "unauthenticated"
)

const (
	// Sender label used on outgoing messages when the identity has no linked
	// patient record.
	FallbackSenderName = "Patient"

	// Dashboard shows at most this many upcoming appointments.
	DashboardAppointmentLimit = 3

	// Article content blocks at or under this length with no closing
	// punctuation render as headings.
	ArticleHeadingMaxLength = 80
)

// Time-of-day buckets derived from free-text medication frequency.
const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
	TimeOfDayAsNeeded  = "as-needed"
)

// Display preference defaults.
const (
	ThemeLight     = "light"
	ThemeDark      = "dark"
	TextSizeNormal = "normal"
	TextSizeLarge  = "large"
	TextSizeXLarge = "x-large"
)

const (
	MongoCollectionPreferences = "preferences"
)
