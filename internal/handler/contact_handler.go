package handler

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adaptiv-labs/adaptiv/internal/mail"
)

// emailPattern is a deliberately loose shape check, not RFC validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactRequest mirrors the contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactHandler forwards contact form submissions to the team inbox and
// acknowledges the sender.
type ContactHandler struct {
	Mailer mail.Sender
	Log    *zap.SugaredLogger
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message are all required."})
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email address."})
		return
	}

	if err := h.Mailer.SendContactEmails(req.Name, req.Email, req.Message); err != nil {
		h.Log.Errorw("contact emails failed", "from", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send your message. Please try again later."})
		return
	}

	h.Log.Infow("contact message forwarded", "from", req.Email)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent. We'll get back to you within 24 hours."})
}
