// internal/app/router.go
package app

import (
	authHandler "caseflow-service/internal/handlers/auth"
	caseHandler "caseflow-service/internal/handlers/cases"
	customerHandler "caseflow-service/internal/handlers/customer"
	quickcaseHandler "caseflow-service/internal/handlers/quickcase"
	reminderHandler "caseflow-service/internal/handlers/reminder"
	settingsHandler "caseflow-service/internal/handlers/settings"
	wsHandler "caseflow-service/internal/handlers/wsh"
	"caseflow-service/internal/middleware"
	"caseflow-service/internal/store"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler      *authHandler.AuthHandler
	CustomerHandler  *customerHandler.CustomerHandler
	CaseHandler      *caseHandler.CaseHandler
	QuickCaseHandler *quickcaseHandler.QuickCaseHandler
	ReminderHandler  *reminderHandler.ReminderHandler
	SettingsHandler  *settingsHandler.SettingsHandler
	WSHandler        *wsHandler.WSHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, st store.Store, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := st.Ping(c.Request.Context()); err != nil {
			status = "degraded"
		}
		c.JSON(200, gin.H{"status": status})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.AuthMiddleware.Auth(), h.WSHandler.Connect)

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.GET("/me", h.AuthHandler.Me)
	}

	// ==================== Admin Management (superadmin only) ====================
	admins := api.Group("/admins")
	admins.Use(h.AuthMiddleware.Auth())
	{
		admins.GET("", h.AuthHandler.ListAdmins)
		admins.POST("", h.AuthMiddleware.RequireSuperAdmin(), h.AuthHandler.CreateSubAdmin)
		admins.DELETE("/:id", h.AuthMiddleware.RequireSuperAdmin(), h.AuthHandler.DeleteAdmin)
	}

	// ==================== Customers ====================
	customers := api.Group("/customers")
	customers.Use(h.AuthMiddleware.Auth())
	{
		customers.POST("", h.CustomerHandler.CreateCustomer)
		customers.GET("", h.CustomerHandler.ListCustomers)
		customers.GET("/:id", h.CustomerHandler.GetCustomer)
		customers.PUT("/:id", h.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id", h.CustomerHandler.DeleteCustomer)
		customers.GET("/:id/history", h.CustomerHandler.GetCustomerHistory)
	}

	// ==================== Cases ====================
	cases := api.Group("/cases")
	cases.Use(h.AuthMiddleware.Auth())
	{
		cases.POST("", h.CaseHandler.CreateCase)
		cases.GET("", h.CaseHandler.ListCases)
		cases.GET("/:id", h.CaseHandler.GetCase)
		cases.PUT("/:id", h.CaseHandler.UpdateCase)
		cases.DELETE("/:id", h.CaseHandler.DeleteCase)
		cases.GET("/:id/history", h.CaseHandler.GetCaseHistory)
	}

	// ==================== Quick Cases ====================
	quickcases := api.Group("/quick-cases")
	quickcases.Use(h.AuthMiddleware.Auth())
	{
		quickcases.POST("", h.QuickCaseHandler.CreateQuickCase)
		quickcases.GET("", h.QuickCaseHandler.ListQuickCases)
		quickcases.POST("/:id/promote", h.QuickCaseHandler.PromoteQuickCase)
		quickcases.DELETE("/:id", h.QuickCaseHandler.DeleteQuickCase)
	}

	// ==================== Reminders ====================
	reminders := api.Group("/reminders")
	reminders.Use(h.AuthMiddleware.Auth())
	{
		reminders.POST("", h.ReminderHandler.CreateReminder)
		reminders.GET("", h.ReminderHandler.ListReminders)
		reminders.PUT("/:id/status", h.ReminderHandler.UpdateReminderStatus)
		reminders.PUT("/:id/read", h.ReminderHandler.MarkReminderRead)
		reminders.DELETE("/:id", h.ReminderHandler.DeleteReminder)
	}

	// ==================== Settings ====================
	settings := api.Group("/settings")
	settings.Use(h.AuthMiddleware.Auth())
	{
		settings.GET("", h.SettingsHandler.GetSettings)
		settings.PUT("", h.SettingsHandler.UpdateSettings)
		settings.POST("/reset", h.SettingsHandler.ResetSettings)
	}
}
