package payments

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// ErrSessionNotFound is returned when neither direct retrieval nor the
// bounded recent-session scan can locate a checkout session.
var ErrSessionNotFound = errors.New("checkout session not found")

// recentSessionLimit bounds the payment-intent scan; orders older than the
// most recent page cannot be recovered this way.
const recentSessionLimit = 100

// LineItem is one priced cart entry, already converted to cents.
type LineItem struct {
	Name        string
	Description string
	AmountCents int64
}

// SessionRequest describes a hosted checkout session to create.
type SessionRequest struct {
	LineItems       []LineItem
	SuccessURL      string
	CancelURL       string
	Metadata        map[string]string
	CollectShipping bool
}

// Client is the processor surface the handlers depend on. Tests substitute
// a stub; production uses StripeClient.
type Client interface {
	CreateSession(ctx context.Context, req SessionRequest) (*stripe.CheckoutSession, error)
	Session(ctx context.Context, id string) (*stripe.CheckoutSession, error)
	SessionByPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.CheckoutSession, error)
	VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// StripeClient wraps the Stripe SDK with the storefront's session
// operations. Construct once at process start and inject into handlers.
type StripeClient struct {
	api           *client.API
	webhookSecret string
}

func New(secretKey, webhookSecret string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api, webhookSecret: webhookSecret}
}

func (c *StripeClient) CreateSession(ctx context.Context, req SessionRequest) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	params.Context = ctx

	for _, item := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String(item.Description),
				},
				UnitAmount: stripe.Int64(item.AmountCents),
			},
			Quantity: stripe.Int64(1),
		})
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	if req.CollectShipping {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"US", "CA"}),
		}
		params.PhoneNumberCollection = &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		}
	}

	return c.api.CheckoutSessions.New(params)
}

func (c *StripeClient) Session(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	return c.api.CheckoutSessions.Get(id, params)
}

// SessionByPaymentIntent scans one page of recent sessions for the one that
// produced the given payment intent. Single keeps the iterator on that one
// page; without it the iterator auto-paginates through the full session
// history.
func (c *StripeClient) SessionByPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(recentSessionLimit)
	params.Single = true

	iter := c.api.CheckoutSessions.List(params)
	for iter.Next() {
		s := iter.CheckoutSession()
		if s.PaymentIntent != nil && s.PaymentIntent.ID == paymentIntentID {
			return s, nil
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return nil, ErrSessionNotFound
}

func (c *StripeClient) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
}
