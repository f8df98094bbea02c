package handler

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"

	"github.com/adaptiv-labs/adaptiv/internal/formula"
	"github.com/adaptiv-labs/adaptiv/internal/mail"
)

// orderFromSession reconstructs everything the fulfillment emails need from
// a checkout session: customer details off the session, the supplement
// facts off the stored success URL, discount details out of metadata.
func orderFromSession(s *stripe.CheckoutSession, recovered bool) mail.Order {
	order := mail.Order{
		OrderID:    s.ID,
		OrderTotal: fmt.Sprintf("$%.2f", float64(s.AmountTotal)/100),
		OrderDate:  time.Now(),
		Facts:      formula.FactsFromURL(s.SuccessURL),
		Recovered:  recovered,
	}

	if s.PaymentIntent != nil {
		order.PaymentIntentID = s.PaymentIntent.ID
	}

	if cd := s.CustomerDetails; cd != nil {
		order.CustomerName = cd.Name
		order.CustomerEmail = cd.Email
		order.Shipping.Phone = cd.Phone
	}
	if order.CustomerName == "" {
		order.CustomerName = "Customer"
	}

	if sd := s.ShippingDetails; sd != nil {
		order.Shipping.Name = sd.Name
		if addr := sd.Address; addr != nil {
			order.Shipping.Line1 = addr.Line1
			order.Shipping.Line2 = addr.Line2
			order.Shipping.City = addr.City
			order.Shipping.State = addr.State
			order.Shipping.PostalCode = addr.PostalCode
			order.Shipping.Country = addr.Country
		}
	}

	if md := s.Metadata; md != nil {
		if code := md["discount_code"]; code != "" {
			order.DiscountCode = code
			switch pct := md["discount_percent"]; pct {
			case "", "0":
				order.DiscountPercent = "0%"
			case "special":
				order.DiscountPercent = "minimum charge override"
			default:
				order.DiscountPercent = pct + "%"
			}
			if before := md["total_cost_before_discount"]; before != "" {
				order.SubtotalBefore = "$" + before
			}
		}
	}

	return order
}
