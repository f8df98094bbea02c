package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adaptiv-labs/adaptiv/internal/config"
	"github.com/adaptiv-labs/adaptiv/internal/formula"
	"github.com/adaptiv-labs/adaptiv/internal/payments"
	"github.com/adaptiv-labs/adaptiv/internal/pricing"
)

// metadataValueLimit is the processor's cap on a single metadata value.
// The full supplement facts ride on the success URL; metadata only carries
// the compact rendition when it fits.
const metadataValueLimit = 500

// CheckoutRequest mirrors the JSON the checkout page submits.
type CheckoutRequest struct {
	CartItems       []formula.CartItem       `json:"cartItems"`
	SupplementFacts *formula.SupplementFacts `json:"supplementFacts"`
	DiscountCode    string                   `json:"discountCode"`
}

// CheckoutHandler creates hosted checkout sessions.
type CheckoutHandler struct {
	Payments payments.Client
	Cfg      config.Config
	Log      *zap.SugaredLogger
}

func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	if len(req.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty."})
		return
	}

	if h.Cfg.StripeSecretKey == "" {
		h.Log.Errorw("checkout session requested without a payment secret key configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing is not configured."})
		return
	}

	discount := pricing.ResolveDiscount(req.DiscountCode)

	var totalBefore float64
	for _, item := range req.CartItems {
		totalBefore += item.Cost
	}

	var lineItems []payments.LineItem
	var totalCents int64
	if discount.MinimumCharge {
		lineItems = []payments.LineItem{{
			Name:        "Custom Pre Workout",
			Description: "Personalized pre-workout supplement - 30 servings",
			AmountCents: pricing.MinimumChargeCents,
		}}
		totalCents = pricing.MinimumChargeCents
	} else {
		for _, item := range req.CartItems {
			cents := discount.ItemCents(item.Cost)
			description := "Personalized pre-workout supplement - 30 servings"
			if item.Flavor != "" {
				description = fmt.Sprintf("Personalized pre-workout supplement (%s) - 30 servings", item.Flavor)
			}
			lineItems = append(lineItems, payments.LineItem{
				Name:        "Custom Pre Workout",
				Description: description,
				AmountCents: cents,
			})
			totalCents += cents
		}
	}

	metadata := map[string]string{
		"total_cost":                 fmt.Sprintf("%.2f", float64(totalCents)/100),
		"item_count":                 strconv.Itoa(len(req.CartItems)),
		"discount_code":              discount.Code,
		"discount_percent":           discount.PercentLabel(),
		"total_cost_before_discount": fmt.Sprintf("%.2f", totalBefore),
	}
	if req.SupplementFacts != nil {
		if compact := formula.CompactFactsJSON(*req.SupplementFacts); compact != "" && len(compact) <= metadataValueLimit {
			metadata["supplement_facts"] = compact
		}
	}

	successURL := h.Cfg.PublicBaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	if req.SupplementFacts != nil {
		successURL = formula.AppendFactsToURL(successURL, *req.SupplementFacts)
	}

	session, err := h.Payments.CreateSession(c.Request.Context(), payments.SessionRequest{
		LineItems:       lineItems,
		SuccessURL:      successURL,
		CancelURL:       h.Cfg.PublicBaseURL + "/checkout",
		Metadata:        metadata,
		CollectShipping: true,
	})
	if err != nil {
		h.Log.Errorw("checkout session creation failed", "error", err, "items", len(req.CartItems))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create checkout session."})
		return
	}

	h.Log.Infow("checkout session created",
		"session_id", session.ID, "items", len(req.CartItems),
		"total_cents", totalCents, "discount", discount.PercentLabel())
	c.JSON(http.StatusOK, gin.H{"sessionId": session.ID, "url": session.URL})
}
