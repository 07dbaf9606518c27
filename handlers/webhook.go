package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	messagesRepo "innkeeper/database/repository/messages"
	"innkeeper/models"
	"innkeeper/services/agent"
	"innkeeper/services/messenger"
	"innkeeper/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReplyTransport is the slice of the messenger the webhook handler needs.
type ReplyTransport interface {
	SendMessage(ctx context.Context, recipientID, text string) error
	VerifyWebhook(mode, token, challenge string) (string, bool)
}

// WebhookHandler receives messaging-platform events and drives the agent.
type WebhookHandler struct {
	Agent     agent.Service
	Transport ReplyTransport
	Messages  messagesRepo.MessageRepository
}

func NewWebhookHandler(agentSvc agent.Service, transport ReplyTransport, messages messagesRepo.MessageRepository) *WebhookHandler {
	return &WebhookHandler{Agent: agentSvc, Transport: transport, Messages: messages}
}

// VerifyWebhookHandler answers the platform's GET subscription handshake.
func (h *WebhookHandler) VerifyWebhookHandler(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if echo, ok := h.Transport.VerifyWebhook(mode, token, challenge); ok {
		utils.GetLogger().Info("Webhook verified successfully")
		c.String(http.StatusOK, echo)
		return
	}
	utils.GetLogger().Warn("Webhook verification failed", zap.String("mode", mode))
	c.JSON(http.StatusForbidden, gin.H{"error": "Verification failed"})
}

// ReceiveWebhookHandler processes incoming messages. The platform retries
// non-200 answers, so processing failures are reported in the body instead
// of the status code.
func (h *WebhookHandler) ReceiveWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to read webhook body", err.Error())
		return
	}

	msgs, err := messenger.ParseWebhook(body)
	if err != nil {
		logger.Warn("Failed to parse webhook payload", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "no_message"})
		return
	}
	if len(msgs) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "no_message"})
		return
	}

	for _, msg := range msgs {
		h.processInbound(c.Request.Context(), msg)
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *WebhookHandler) processInbound(ctx context.Context, msg models.InboundMessage) {
	logger := utils.GetLogger()

	if err := h.Messages.Store(ctx, models.ConversationMessage{
		UserID:    msg.UserID,
		Text:      msg.Text,
		FromUser:  true,
		Timestamp: msg.Timestamp,
	}); err != nil {
		logger.Error("Failed to store inbound message", zap.Error(err))
	}

	reply := h.Agent.ProcessMessage(ctx, msg.UserID, msg.Text)

	if err := h.Messages.Store(ctx, models.ConversationMessage{
		UserID:    msg.UserID,
		Text:      reply,
		FromUser:  false,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		logger.Error("Failed to store outbound message", zap.Error(err))
	}

	if err := h.Transport.SendMessage(ctx, msg.UserID, reply); err != nil {
		logger.Error("Failed to send reply",
			zap.String("user_id", msg.UserID), zap.Error(err))
	}
}
