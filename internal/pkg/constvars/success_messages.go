package constvars

const (
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	SessionRestoreSuccess = "session restored"

	// Portal messages
	MedicationsGetSuccess  = "get medications successfully"
	MedicationGetSuccess   = "get medication successfully"
	CarePlanGetSuccess     = "get care plan successfully"
	CareTeamGetSuccess     = "get care team successfully"
	MessagesGetSuccess     = "get messages successfully"
	MessageSentSuccess     = "message sent successfully"
	ArticlesGetSuccess     = "get articles successfully"
	ArticleGetSuccess      = "get article successfully"
	AppointmentsGetSuccess = "get appointments successfully"
	DashboardGetSuccess    = "get dashboard successfully"
	PreferencesGetSuccess  = "get preferences successfully"
	PreferencesSaveSuccess = "preferences saved successfully"
	FavoriteToggleSuccess  = "favorite updated successfully"
)
