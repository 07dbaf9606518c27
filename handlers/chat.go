package handlers

import (
	"net/http"

	"innkeeper/models"
	"innkeeper/services/agent"
	"innkeeper/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the agent over a direct HTTP endpoint, bypassing the
// messaging platform. Useful for testing and web-widget integrations.
type ChatHandler struct {
	Agent agent.Service
}

func NewChatHandler(agentSvc agent.Service) *ChatHandler {
	return &ChatHandler{Agent: agentSvc}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	reply := h.Agent.ProcessMessage(c.Request.Context(), req.UserID, req.Text)
	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}
