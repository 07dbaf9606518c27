package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the endpoint handlers handed to route registration.
type HandlerBundle struct {
	// Webhook endpoints.
	VerifyWebhookHandler  gin.HandlerFunc
	ReceiveWebhookHandler gin.HandlerFunc

	// Direct chat endpoint.
	ChatHandler gin.HandlerFunc

	// Booking and transcript queries.
	GetUserBookingsHandler        gin.HandlerFunc
	GetConversationHistoryHandler gin.HandlerFunc

	// Health endpoint.
	HealthHandler gin.HandlerFunc
}
