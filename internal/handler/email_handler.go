package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adaptiv-labs/adaptiv/internal/config"
	"github.com/adaptiv-labs/adaptiv/internal/formula"
	"github.com/adaptiv-labs/adaptiv/internal/mail"
)

// SendEmailRequest mirrors the JSON the email endpoint accepts. Older
// callers send ingredientDetails (per-blend lists); newer ones send the
// full supplementFacts structure.
type SendEmailRequest struct {
	OrderDetails struct {
		OrderID string `json:"orderId"`
	} `json:"orderDetails"`
	CustomerEmail     string                   `json:"customerEmail"`
	CustomerName      string                   `json:"customerName"`
	OrderTotal        any                      `json:"orderTotal"`
	SupplementFacts   *formula.SupplementFacts `json:"supplementFacts"`
	IngredientDetails []mail.BlendDetail       `json:"ingredientDetails"`
}

// EmailHandler exposes direct email dispatch: the order-email endpoint and
// the relay diagnostic endpoint.
type EmailHandler struct {
	Mailer mail.Sender
	Cfg    config.Config
	Log    *zap.SugaredLogger
}

func (h *EmailHandler) SendOrderEmails(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	if req.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerEmail is required."})
		return
	}

	order := mail.Order{
		OrderID:       req.OrderDetails.OrderID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		OrderTotal:    formatTotal(req.OrderTotal),
		OrderDate:     time.Now(),
		Facts:         req.SupplementFacts,
		Blends:        req.IngredientDetails,
	}
	if order.CustomerName == "" {
		order.CustomerName = "Customer"
	}

	if err := h.Mailer.SendOrderEmails(order); err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			h.Log.Errorw("order emails requested but relay is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email system is not configured."})
			return
		}
		h.Log.Errorw("order emails failed", "order_id", order.OrderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send order emails."})
		return
	}

	h.Log.Infow("order emails sent", "order_id", order.OrderID, "customer", order.CustomerEmail)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order emails sent."})
}

// SendTestEmail verifies the relay end to end and reports the account in
// use, for operator diagnostics.
func (h *EmailHandler) SendTestEmail(c *gin.Context) {
	if err := h.Mailer.SendTestEmail(); err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email system is not configured."})
			return
		}
		h.Log.Errorw("test email failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send test email."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Test email sent.",
		"account": h.Cfg.EmailUser,
	})
}

// formatTotal accepts the order total as either a number or a preformatted
// string, matching what different callers of the endpoint send.
func formatTotal(total any) string {
	switch v := total.(type) {
	case float64:
		return fmt.Sprintf("$%.2f", v)
	case string:
		if v != "" && v[0] != '$' {
			return "$" + v
		}
		return v
	}
	return ""
}
