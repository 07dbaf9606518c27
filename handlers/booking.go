package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "innkeeper/database/repository/booking"
	messagesRepo "innkeeper/database/repository/messages"
	"innkeeper/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes read-only booking and transcript queries.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
	Messages messagesRepo.MessageRepository
}

func NewBookingHandler(bookings bookingRepo.BookingRepository, messages messagesRepo.MessageRepository) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Messages: messages}
}

// GetUserBookingsHandler lists all bookings owned by a user.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "user_id is required", "")
		return
	}

	bookings, err := h.Bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  userID,
		"bookings": bookings,
	})
}

// GetConversationHistoryHandler returns a user's transcript, newest first.
func (h *BookingHandler) GetConversationHistoryHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "user_id is required", "")
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	msgs, err := h.Messages.History(c.Request.Context(), userID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch conversation history", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  userID,
		"messages": msgs,
	})
}
