package routes

import (
	"buildconnect/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequirements  = "/requirements"
	PathQuotes        = "/quotes"
	PathNotifications = "/notifications"
	PathPayments      = "/payments"
	PathPresence      = "/presence"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	requirementHandler *handlers.RequirementHandler,
	quoteHandler *handlers.QuoteHandler,
	notificationHandler *handlers.NotificationHandler,
	paymentHandler *handlers.PaymentHandler,
	presenceHandler *handlers.PresenceHandler,
) {
	requirements := rg.Group(PathRequirements)
	{
		requirements.POST("", requirementHandler.CreateRequirement)
		requirements.GET("", requirementHandler.ListMyRequirements)
		requirements.GET("/open", requirementHandler.ListOpenRequirements)
		requirements.GET("/:id", requirementHandler.GetRequirement)
		requirements.GET("/:id/quotes", requirementHandler.ListRequirementQuotes)
		requirements.POST("/:id/select", requirementHandler.SelectQuote)
		requirements.PATCH("/:id/status", requirementHandler.UpdateRequirementStatus)
		requirements.DELETE("/:id", requirementHandler.CancelRequirement)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("", quoteHandler.ListMyQuotes)
		quotes.GET("/analytics", quoteHandler.QuoteAnalytics)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.WithdrawQuote)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.PATCH("/read-all", notificationHandler.MarkAllNotificationsRead)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/quote/:quote_id", paymentHandler.ListQuotePayments)
		payments.GET("/:id", paymentHandler.GetPayment)
	}

	presence := rg.Group(PathPresence)
	{
		presence.POST("/connect", presenceHandler.Connect)
		presence.POST("/disconnect", presenceHandler.Disconnect)
		presence.GET("/count", presenceHandler.GetOnlineCount)
		presence.GET("/:user_id", presenceHandler.GetUserPresence)
	}
}
