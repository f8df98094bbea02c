package mail

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/adaptiv-labs/adaptiv/internal/formula"
)

// ErrNotConfigured is returned when the relay credentials are absent; the
// caller reports a configuration error instead of crashing.
var ErrNotConfigured = errors.New("mail relay not configured")

// Address is the shipping destination pulled off the checkout session.
type Address struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// Empty reports whether no shipping details were collected.
func (a Address) Empty() bool {
	return a.Line1 == "" && a.City == "" && a.PostalCode == ""
}

// Order carries everything the two fulfillment emails render.
type Order struct {
	OrderID         string
	PaymentIntentID string
	CustomerName    string
	CustomerEmail   string
	OrderTotal      string // already formatted, e.g. "$54.71"
	OrderDate       time.Time
	Facts           *formula.SupplementFacts
	Blends          []BlendDetail // legacy send-email shape
	DiscountCode    string
	DiscountPercent string
	SubtotalBefore  string
	Shipping        Address
	Recovered       bool
}

// BlendDetail is the older per-blend ingredient listing some callers of the
// email endpoint still send instead of supplement facts.
type BlendDetail struct {
	Blend       int                  `json:"blend"`
	Ingredients []formula.Ingredient `json:"ingredients"`
}

// Sender is the mail surface handlers and the fulfillment worker depend on.
type Sender interface {
	SendOrderEmails(order Order) error
	SendManufacturingEmail(order Order) error
	SendContactEmails(name, email, message string) error
	SendTestEmail() error
}

// Mailer sends HTML email through an SMTP relay authenticated with a
// username/app-password pair. One Mailer lives for the whole process.
type Mailer struct {
	dialer          *gomail.Dialer
	from            string
	manufacturingTo string
}

func NewMailer(host string, port int, user, password, manufacturingTo string) *Mailer {
	m := &Mailer{from: user, manufacturingTo: manufacturingTo}
	if user != "" && password != "" {
		m.dialer = gomail.NewDialer(host, port, user, password)
	}
	return m
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// SendOrderEmails sends the customer confirmation and the manufacturing
// notification for a paid order.
func (m *Mailer) SendOrderEmails(order Order) error {
	confirmation, err := renderCustomerConfirmation(order)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}
	if err := m.send(order.CustomerEmail, "Order Confirmation - ADAPTIV", confirmation); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	return m.SendManufacturingEmail(order)
}

// SendManufacturingEmail sends only the internal build sheet. The recovery
// path uses this directly; customers are not re-notified.
func (m *Mailer) SendManufacturingEmail(order Order) error {
	body, err := renderManufacturing(order)
	if err != nil {
		return fmt.Errorf("render manufacturing email: %w", err)
	}
	subject := "New Order Received - ADAPTIV Manufacturing"
	if order.Recovered {
		subject = fmt.Sprintf("[RECOVERED] New Order Received - ADAPTIV Manufacturing - %s", order.OrderID)
	}
	if err := m.send(m.manufacturingTo, subject, body); err != nil {
		return fmt.Errorf("send manufacturing email: %w", err)
	}
	return nil
}

// SendContactEmails forwards a contact form submission to the team and
// acknowledges the customer.
func (m *Mailer) SendContactEmails(name, email, message string) error {
	adminBody, err := renderContactAdmin(name, email, message)
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}
	if err := m.send(m.manufacturingTo, fmt.Sprintf("Contact Form Submission from %s - ADAPTIV", name), adminBody); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	ackBody, err := renderContactAck(name)
	if err != nil {
		return fmt.Errorf("render contact ack: %w", err)
	}
	if err := m.send(email, "Thank you for contacting ADAPTIV", ackBody); err != nil {
		return fmt.Errorf("send contact ack: %w", err)
	}
	return nil
}

// SendTestEmail verifies the relay end to end.
func (m *Mailer) SendTestEmail() error {
	body, err := renderTestEmail(time.Now())
	if err != nil {
		return err
	}
	return m.send(m.manufacturingTo, "Test Email - ADAPTIV Email System", body)
}
