package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"github.com/adaptiv-labs/adaptiv/internal/mail"
	"github.com/adaptiv-labs/adaptiv/internal/payments"
)

// RecoveryRequest identifies an order by checkout session or by payment
// intent; the operator supplies whichever ID they have.
type RecoveryRequest struct {
	SessionID       string `json:"sessionId"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// RecoveryHandler re-runs manufacturing notification for an order the
// webhook path lost. Only the internal email is resent; the customer is
// not re-notified.
type RecoveryHandler struct {
	Payments payments.Client
	Mailer   mail.Sender
	Log      *zap.SugaredLogger
}

func (h *RecoveryHandler) RecoverOrder(c *gin.Context) {
	var req RecoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}
	if req.SessionID == "" && req.PaymentIntentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a sessionId or a paymentIntentId."})
		return
	}

	var (
		session *stripe.CheckoutSession
		err     error
	)
	if req.SessionID != "" {
		session, err = h.Payments.Session(c.Request.Context(), req.SessionID)
	} else {
		session, err = h.Payments.SessionByPaymentIntent(c.Request.Context(), req.PaymentIntentID)
	}
	if err != nil {
		if isSessionNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found."})
			return
		}
		h.Log.Errorw("order recovery lookup failed",
			"session_id", req.SessionID, "payment_intent_id", req.PaymentIntentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to look up checkout session."})
		return
	}

	order := orderFromSession(session, true)
	if err := h.Mailer.SendManufacturingEmail(order); err != nil {
		h.Log.Errorw("recovery email failed", "session_id", session.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send manufacturing email."})
		return
	}

	h.Log.Infow("order recovered",
		"session_id", session.ID, "customer", order.CustomerEmail,
		"has_facts", order.Facts != nil)
	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"sessionId":          session.ID,
		"customerEmail":      order.CustomerEmail,
		"orderTotal":         order.OrderTotal,
		"hasSupplementFacts": order.Facts != nil,
	})
}

func isSessionNotFound(err error) bool {
	if errors.Is(err, payments.ErrSessionNotFound) {
		return true
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode == http.StatusNotFound ||
			stripeErr.Code == stripe.ErrorCodeResourceMissing
	}
	return false
}
