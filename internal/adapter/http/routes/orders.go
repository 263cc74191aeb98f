package routes

import (
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathEmployees = "/employees"
	PathAuth      = "/auth"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	attachmentHandler *handlers.AttachmentHandler,
	suggestionHandler *handlers.SuggestionHandler,
	exportHandler *handlers.ExportHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/stats", orderHandler.GetOrderStats)
		orders.GET("/export", exportHandler.ExportOrders)
		orders.POST("/suggest-technician", suggestionHandler.SuggestTechnician)

		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)

		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.PATCH("/:id/checklist", orderHandler.UpdateChecklist)
		orders.PATCH("/:id/description", orderHandler.UpdateDescription)
		orders.PATCH("/:id/assignee", orderHandler.AssignTechnician)

		orders.POST("/:id/attachments/:kind", attachmentHandler.UploadAttachment)
	}
}

func addEmployeeRoutes(rg *gin.RouterGroup, rosterHandler *handlers.RosterHandler) {
	employees := rg.Group(PathEmployees)
	{
		employees.GET("", rosterHandler.ListEmployees)
		employees.POST("", rosterHandler.CreateEmployee)
		employees.DELETE("/:name", rosterHandler.DeleteEmployee)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, requireAuth gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/password-reset", authHandler.RequestPasswordReset)
		auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
		auth.GET("/me", requireAuth, authHandler.Me)
	}
}
