package http

import (
	"github.com/gin-gonic/gin"

	"campustasks/internal/adapter/http/handlers"
	"campustasks/internal/adapter/http/middleware"
	"campustasks/internal/core/ports"
)

type Handlers struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Tasks         *handlers.TaskHandler
	Schedule      *handlers.ScheduleHandler
	Assistant     *handlers.AssistantHandler
	Google        *handlers.GoogleHandler
	Notifications *handlers.NotificationHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authService ports.AuthService) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	{
		authed.GET("/auth/me", h.Auth.Me)
		authed.PUT("/auth/preferences", h.Auth.UpdatePreferences)

		tasks := authed.Group("/tasks")
		{
			tasks.GET("", h.Tasks.ListTasks)
			tasks.POST("", h.Tasks.CreateTask)
			tasks.POST("/from-text", h.Tasks.CreateTaskFromText)
			tasks.GET("/analytics/overview", h.Tasks.AnalyticsOverview)
			tasks.GET("/upcoming/deadlines", h.Tasks.UpcomingDeadlines)
			tasks.GET("/:id", h.Tasks.GetTask)
			tasks.PUT("/:id", h.Tasks.UpdateTask)
			tasks.DELETE("/:id", h.Tasks.DeleteTask)
			tasks.POST("/:id/start", h.Tasks.StartTask)
			tasks.POST("/:id/complete", h.Tasks.CompleteTask)
		}

		schedule := authed.Group("/schedule")
		{
			schedule.GET("", h.Schedule.ListEntries)
			schedule.POST("", h.Schedule.CreateEntry)
			schedule.POST("/import-timetable", h.Schedule.ImportTimetable)
			schedule.GET("/optimized/daily", h.Schedule.OptimizedDaily)
			schedule.GET("/available-slots", h.Schedule.AvailableSlots)
			schedule.GET("/conflicts", h.Schedule.Conflicts)
			schedule.GET("/weekly/overview", h.Schedule.WeeklyOverview)
			schedule.PUT("/:id", h.Schedule.UpdateEntry)
			schedule.DELETE("/:id", h.Schedule.DeleteEntry)
		}

		ai := authed.Group("/ai")
		{
			ai.POST("/parse-input", h.Assistant.ParseInput)
			ai.POST("/optimize-schedule", h.Assistant.OptimizeSchedule)
			ai.GET("/recommendations", h.Assistant.Recommendations)
			ai.GET("/priority-suggestions", h.Assistant.PrioritySuggestions)
			ai.POST("/breakdown-task", h.Assistant.BreakdownTask)
			ai.POST("/analyze-announcements", h.Assistant.AnalyzeAnnouncements)
			ai.GET("/study-strategies", h.Assistant.StudyStrategies)
			ai.POST("/chat", h.Assistant.Chat)
		}

		google := authed.Group("/google")
		{
			google.GET("/auth-url", h.Google.AuthURL)
			google.POST("/callback", h.Google.Callback)
			google.GET("/forms/templates", h.Google.FormTemplates)
			google.POST("/forms/auto-fill", h.Google.AutoFillForm)
			google.POST("/forms/auto-fill-template", h.Google.AutoFillFormWithTemplate)
			google.GET("/sheets/:spreadsheetId", h.Google.SheetValues)
			google.PUT("/sheets/:spreadsheetId", h.Google.UpdateSheetValues)
			google.POST("/calendar/events", h.Google.CreateCalendarEvent)
			google.GET("/calendar/events", h.Google.ListCalendarEvents)
			google.POST("/calendar/sync", h.Google.SyncCalendar)
		}

		authed.POST("/notifications/test", h.Notifications.SendTest)
	}
}
