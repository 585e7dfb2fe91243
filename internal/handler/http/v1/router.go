package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Кейсы
	cases := api.Group("/cases")
	{
		cases.GET("", h.listCases)
		cases.POST("", h.createCase)
		cases.GET("/:id", h.getCase)
		cases.PUT("/:id/status", h.updateCaseStatus)
		cases.GET("/:id/sla", h.getCaseSLA)
		cases.GET("/:id/notes", h.getCaseNotes)
		cases.PUT("/:id/notes", h.saveCaseNotes)
	}

	// Карта и дашборд
	api.GET("/map/cases", h.mapCases)
	api.GET("/alerts/sla", h.slaAlerts)
	api.GET("/dashboard/stats", h.dashboardStats)
	api.GET("/activity", h.activity)

	availability := api.Group("/availability")
	{
		availability.GET("", h.getAvailability)
		availability.PUT("", h.putAvailability)
		availability.POST("/online", h.goOnline)
		availability.POST("/offline", h.goOffline)
	}

	// Назначения и попап
	assignments := api.Group("/assignments")
	{
		assignments.GET("/state", h.assignmentState)
		assignments.POST("", h.dispatchAssignment)
		assignments.POST("/dismiss", h.dismissAssignment)
		assignments.POST("/clear", h.clearAssignment)
		assignments.POST("/go-online", h.assignmentGoOnline)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PATCH("/profile", h.updateProfile)
		settings.PATCH("/notifications", h.updateNotifications)
		settings.PUT("/availability", h.updateSettingsAvailability)
		settings.POST("/save", h.saveSettings)
		settings.GET("/map-key", h.getMapKey)
		settings.PUT("/map-key", h.putMapKey)
	}
	api.GET("/profile", h.getProfile)

	// Запись о входе, учетные данные не проверяются
	session := api.Group("/session")
	{
		session.POST("", h.login)
		session.DELETE("", h.logout)
		session.GET("", h.getSession)
	}

	// Поток событий для дашборда
	api.GET("/ws", h.serveWS)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
