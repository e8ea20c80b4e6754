package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	taskHandler      *TaskHandler
	userHandler      *UserHandler
	dashboardHandler *DashboardHandler
	settingsHandler  *SettingsHandler
	activityHandler  *ActivityHandler
	adminHandler     *AdminHandler
	authMiddleware   *SessionAuthMiddleware
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Auth(), logger),
		taskHandler:      NewTaskHandler(serviceManager.Tasks(), logger),
		userHandler:      NewUserHandler(serviceManager.Users(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
		settingsHandler:  NewSettingsHandler(serviceManager.Settings(), logger),
		activityHandler:  NewActivityHandler(serviceManager.Activity(), logger),
		adminHandler:     NewAdminHandler(serviceManager.Email(), serviceManager.Export(), logger),
		authMiddleware:   NewSessionAuthMiddleware(serviceManager.Auth()),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.Use(hm.authMiddleware.ResolveMiddleware())
	{
		// Auth routes - no authentication required for login/register
		auth := v1.Group("/auth")
		{
			auth.POST("/login", hm.authHandler.Login)
			auth.POST("/register", hm.authHandler.Register)
			auth.POST("/logout", hm.authHandler.Logout)
			auth.GET("/me", hm.authHandler.Me)
		}

		// Task routes - creation is open (anonymous tasks are allowed),
		// visibility is scoped inside the repository layer
		tasks := v1.Group("/tasks")
		{
			tasks.POST("", hm.taskHandler.CreateTask)
			tasks.GET("", hm.taskHandler.ListTasks)
			tasks.GET("/:id", hm.taskHandler.GetTask)
			tasks.PUT("/:id", hm.taskHandler.UpdateTask)
			tasks.POST("/:id/toggle", hm.taskHandler.ToggleTask)
			tasks.DELETE("/:id", hm.taskHandler.DeleteTask)
		}

		// Dashboard routes - derived views over the visible tasks
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/overview", hm.dashboardHandler.GetOverview)
			dashboard.GET("/overdue", hm.dashboardHandler.GetOverdue)
			dashboard.GET("/upcoming", hm.dashboardHandler.GetUpcoming)
			dashboard.GET("/calendar", hm.dashboardHandler.GetCalendarDay)
		}

		// Settings routes
		settings := v1.Group("/settings")
		{
			settings.GET("", hm.authMiddleware.RequireAuthMiddleware(), hm.settingsHandler.GetUserSettings)
			settings.PUT("", hm.authMiddleware.RequireAuthMiddleware(), hm.settingsHandler.UpdateUserSettings)
			settings.GET("/global", hm.settingsHandler.GetGlobalSettings)
			settings.PUT("/global", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin), hm.settingsHandler.UpdateGlobalSettings)
		}

		// User management routes - Admins only except self read/update,
		// which the service authorizes per actor
		users := v1.Group("/users")
		users.Use(hm.authMiddleware.RequireAuthMiddleware())
		{
			users.GET("", hm.userHandler.ListUsers)
			users.POST("", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin), hm.userHandler.CreateUser)
			users.GET("/:id", hm.userHandler.GetUser)
			users.PUT("/:id", hm.userHandler.UpdateUser)
			users.DELETE("/:id", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin), hm.userHandler.DeleteUser)
		}

		// Activity log routes - Admins only
		activity := v1.Group("/activity")
		activity.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			activity.GET("", hm.activityHandler.ListActivity)
			activity.DELETE("", hm.activityHandler.ClearActivity)
		}

		// Admin inspection and export routes
		admin := v1.Group("/admin")
		admin.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			admin.GET("/emails", hm.adminHandler.ListSentEmails)
			admin.POST("/notifications", hm.adminHandler.SendNotification)
			admin.GET("/export/tasks", hm.adminHandler.ExportTasks)
			admin.GET("/export/users", hm.adminHandler.ExportUsers)
			admin.GET("/export/activity", hm.adminHandler.ExportActivityLog)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "task-service",
		})
	})
}
