package routes

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/handlers"
	"taskboard/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	calendarHandler *handlers.CalendarHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- pages
	r.GET("/", reportHandler.Dashboard)
	r.GET("/calendar", calendarHandler.Page)

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.List)
		tasks.POST("", taskHandler.Save)
		tasks.GET("/new", taskHandler.New)
		tasks.GET("/:id/edit", taskHandler.Edit)
		tasks.GET("/:id/delete", taskHandler.ConfirmDelete)
		tasks.POST("/:id/delete", taskHandler.Delete)
		tasks.GET("/:id/assign", taskHandler.AssignForm)
		tasks.POST("/:id/assign", taskHandler.Assign)
	}

	// USERS
	users := r.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.GET("/:id/delete", userHandler.ConfirmDelete)
		users.POST("/:id/delete", userHandler.Delete)
	}

	// EXPORT
	export := r.Group("/export")
	{
		export.GET("/csv", reportHandler.ExportCSV)
		export.GET("/calendar.pdf", reportHandler.ExportPDF)
	}

	// ---- JSON
	api := r.Group("/api", middleware.CORS())
	{
		api.GET("/calendar", calendarHandler.MonthGrid)
		api.GET("/notifications", reportHandler.Notifications)
		api.OPTIONS("/*any", func(c *gin.Context) {})
	}
	r.GET("/health", handlers.Health)

	return r
}
