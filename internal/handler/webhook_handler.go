package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"github.com/adaptiv-labs/adaptiv/internal/fulfillment"
	"github.com/adaptiv-labs/adaptiv/internal/mail"
	"github.com/adaptiv-labs/adaptiv/internal/payments"
)

// WebhookHandler receives payment processor events. Everything after
// signature verification is acknowledged with 200 so the processor never
// retries on our internal failures; a completed checkout is made durable by
// enqueueing a fulfillment job before the acknowledgment goes out.
type WebhookHandler struct {
	Payments payments.Client
	Mailer   mail.Sender
	Queue    *fulfillment.Queue // nil when no database is configured
	Log      *zap.SugaredLogger
}

func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body."})
		return
	}

	event, err := h.Payments.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		h.Log.Warnw("webhook signature verification failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature."})
		return
	}

	if event.Type != "checkout.session.completed" {
		h.Log.Infow("webhook event ignored", "type", event.Type)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		h.Log.Errorw("webhook event payload unreadable", "error", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	order := orderFromSession(&session, false)
	h.Log.Infow("checkout completed",
		"session_id", session.ID, "customer", order.CustomerEmail,
		"total", order.OrderTotal, "has_facts", order.Facts != nil)

	if h.Queue != nil {
		if err := h.Queue.Enqueue(session.ID, order); err != nil {
			h.Log.Errorw("fulfillment enqueue failed", "session_id", session.ID, "error", err)
			c.JSON(http.StatusOK, gin.H{"received": true, "queued": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true, "queued": true})
		return
	}

	// No durable queue available: best-effort synchronous send, still
	// acknowledged so the processor does not retry.
	emailSent := true
	if err := h.Mailer.SendOrderEmails(order); err != nil {
		emailSent = false
		h.Log.Errorw("order emails failed", "session_id", session.ID, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"received": true, "queued": false, "emailSent": emailSent})
}
