package apierrors

const (
	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgUnauthorized       = "unauthorized"
	MsgFailRegister       = "failRegister"
	MsgFailUpdatePrefs    = "failUpdatePreferences"

	MsgInvalidTaskID           = "invalidTaskID"
	MsgInvalidTaskPayload      = "invalidTaskPayload"
	MsgTaskNotFound            = "taskNotFound"
	MsgFailCreateTask          = "failCreateTask"
	MsgFailListTask            = "errorListTask"
	MsgFailUpdateTask          = "failUpdateTask"
	MsgFailDeleteTask          = "failDeleteTask"
	MsgInvalidStatusTransition = "invalidStatusTransition"
	MsgTaskDependencyCycle     = "taskDependencyCycle"
	MsgFailTaskAnalytics       = "failTaskAnalytics"

	MsgInvalidScheduleID      = "invalidScheduleID"
	MsgInvalidSchedulePayload = "invalidSchedulePayload"
	MsgScheduleNotFound       = "scheduleNotFound"
	MsgFailCreateSchedule     = "failCreateSchedule"
	MsgFailListSchedule       = "failListSchedule"
	MsgFailUpdateSchedule     = "failUpdateSchedule"
	MsgFailDeleteSchedule     = "failDeleteSchedule"
	MsgFailImportTimetable    = "failImportTimetable"
	MsgFailOptimizeSchedule   = "failOptimizeSchedule"

	MsgInvalidAssistantPayload = "invalidAssistantPayload"
	MsgFailParseInput          = "failParseInput"
	MsgFailRecommendations     = "failRecommendations"
	MsgFailBreakdownTask       = "failBreakdownTask"
	MsgFailAnalyzeAnnounce     = "failAnalyzeAnnouncements"
	MsgFailStudyStrategy       = "failStudyStrategy"
	MsgFailChat                = "failChat"

	MsgInvalidGooglePayload = "invalidGooglePayload"
	MsgGoogleNotLinked      = "googleNotLinked"
	MsgFormTemplateNotFound = "formTemplateNotFound"
	MsgFailGoogleRequest    = "failGoogleRequest"

	MsgFailSendNotification = "failSendNotification"
)
