package mail

import (
	"bytes"
	"html/template"
	"sort"
	"time"

	"github.com/adaptiv-labs/adaptiv/internal/formula"
)

// Email bodies are rendered with html/template so customer-supplied names
// and messages are escaped. Amounts and units are printed exactly as they
// arrive; the email layer never re-rounds a dosage.

var customerConfirmationTmpl = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #000; text-align: center;">Thank you for your order!</h1>
  <p>Hi {{.CustomerName}},</p>
  <p>Your order has been confirmed and is being processed.</p>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Order Details:</h3>
    <p><strong>Order Total:</strong> {{.OrderTotal}}</p>
    <p><strong>Order ID:</strong> {{.OrderID}}</p>
  </div>
  <p>We'll send you tracking information once your order ships.</p>
  <p>Best regards,<br>The ADAPTIV Team</p>
</div>`))

type factsSection struct {
	Name        string
	Ingredients []formula.Ingredient
}

type manufacturingData struct {
	Order
	OrderDateDisplay string
	Sections         []factsSection
	HasFacts         bool
	Flavor           string
	ServingSize      string
	ServingsPerCont  int
	HasShipping      bool
}

var manufacturingTmpl = template.Must(template.New("manufacturing").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
  {{if .Recovered}}
  <h1 style="color: #000;">[RECOVERED ORDER] New Order Received - Manufacturing Required</h1>
  <div style="background: #fff3cd; padding: 15px; border-radius: 8px; margin: 20px 0; border: 2px solid #ffc107;">
    <p style="color: #856404; margin: 0; font-weight: bold;">This order was recovered from the payment processor and may have been missed previously.</p>
  </div>
  {{else}}
  <h1 style="color: #000;">New Order Received - Manufacturing Required</h1>
  {{end}}

  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3>Customer Information:</h3>
    <p><strong>Customer:</strong> {{.CustomerName}}</p>
    <p><strong>Email:</strong> {{.CustomerEmail}}</p>
    <p><strong>Order Total:</strong> {{.OrderTotal}}</p>
    <p><strong>Order ID:</strong> {{.OrderID}}</p>
    {{if .PaymentIntentID}}<p><strong>Payment Intent:</strong> {{.PaymentIntentID}}</p>{{end}}
    <p><strong>Order Date:</strong> {{.OrderDateDisplay}}</p>
  </div>

  {{if .HasShipping}}
  <div style="background: #e7f5ff; padding: 20px; border-radius: 8px; margin: 20px 0; border: 1px solid #bee3ff;">
    <h3 style="margin-top: 0;">Ship To:</h3>
    <p>
      {{if .Shipping.Name}}{{.Shipping.Name}}<br/>{{end}}
      {{if .Shipping.Line1}}{{.Shipping.Line1}}<br/>{{end}}
      {{if .Shipping.Line2}}{{.Shipping.Line2}}<br/>{{end}}
      {{.Shipping.City}}, {{.Shipping.State}} {{.Shipping.PostalCode}}<br/>
      {{.Shipping.Country}}
      {{if .Shipping.Phone}}<br/><strong>Phone:</strong> {{.Shipping.Phone}}{{end}}
    </p>
  </div>
  {{end}}

  {{if .DiscountCode}}
  <div style="background: #eef6ff; padding: 20px; border-radius: 8px; margin: 20px 0; border: 1px solid #cfe2ff;">
    <h3 style="color: #084298; margin-top: 0;">Discount Information</h3>
    <p><strong>Discount Code Used:</strong> {{.DiscountCode}}</p>
    <p><strong>Discount Percent:</strong> {{.DiscountPercent}}</p>
    {{if .SubtotalBefore}}<p><strong>Subtotal Before Discount:</strong> {{.SubtotalBefore}}</p>{{end}}
  </div>
  {{end}}

  <div style="background: #fff3cd; padding: 20px; border-radius: 8px; margin: 20px 0; border: 1px solid #ffeaa7;">
    <h3 style="color: #856404; margin-top: 0;">Manufacturing Instructions:</h3>
    <p style="color: #856404; margin-bottom: 0;"><strong>Please build this custom blend according to the specifications below:</strong></p>
  </div>

  <div style="margin: 20px 0;">
    <h3>Supplement Facts - Manufacturing Specifications:</h3>
    {{if .HasFacts}}
    <div style="background: #f8f9fa; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
      <h4 style="margin: 0 0 10px 0; color: #333;">Product Specifications</h4>
      {{if .ServingSize}}<p><strong>Serving Size:</strong> {{.ServingSize}}</p>{{end}}
      {{if .ServingsPerCont}}<p><strong>Servings Per Container:</strong> {{.ServingsPerCont}}</p>{{end}}
      {{if .Flavor}}<p><strong>Flavor:</strong> <span style="color: #2563eb; font-weight: 600;">{{.Flavor}}</span></p>{{end}}
    </div>
    {{range .Sections}}
    <div style="margin: 20px 0; padding: 15px; border: 1px solid #ddd; border-radius: 8px;">
      <h4 style="margin: 0 0 15px 0; color: #333;">{{.Name}}</h4>
      <table style="width: 100%; border-collapse: collapse;">
        <thead>
          <tr style="background: #f8f9fa;">
            <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Ingredient</th>
            <th style="padding: 8px; text-align: right; border-bottom: 1px solid #ddd;">Amount Per Serving</th>
            <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Unit</th>
          </tr>
        </thead>
        <tbody>
          {{range .Ingredients}}
          <tr>
            <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Name}}</td>
            <td style="padding: 8px; text-align: right; border-bottom: 1px solid #eee;">{{.Amount}}</td>
            <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Unit}}</td>
          </tr>
          {{range .SubIngredients}}
          <tr style="background: #fafafa;">
            <td style="padding: 8px 8px 8px 20px; border-bottom: 1px solid #eee; color: #666;">&#8627; {{.Name}}</td>
            <td style="padding: 8px; text-align: right; border-bottom: 1px solid #eee;">{{.Amount}}</td>
            <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Unit}}</td>
          </tr>
          {{end}}
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}
    {{else if .Blends}}
    {{range .Blends}}
    <div style="margin: 20px 0; padding: 15px; border: 1px solid #ddd; border-radius: 8px;">
      <h4 style="margin: 0 0 15px 0; color: #333;">Blend {{.Blend}}</h4>
      <table style="width: 100%; border-collapse: collapse;">
        <thead>
          <tr style="background: #f8f9fa;">
            <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Ingredient</th>
            <th style="padding: 8px; text-align: right; border-bottom: 1px solid #ddd;">Amount</th>
            <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Unit</th>
          </tr>
        </thead>
        <tbody>
          {{range .Ingredients}}
          <tr>
            <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Name}}</td>
            <td style="padding: 8px; text-align: right; border-bottom: 1px solid #eee;">{{.Amount}}</td>
            <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Unit}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}
    {{else}}
    <p><em>Supplement facts data not available</em></p>
    {{end}}
  </div>

  <div style="background: #d4edda; padding: 15px; border-radius: 8px; margin: 20px 0; border: 1px solid #c3e6cb;">
    <p style="color: #155724; margin: 0;"><strong>Action Required:</strong> Please process this order and update inventory accordingly.</p>
  </div>
</div>`))

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
  <h1 style="color: #000;">New Contact Form Submission</h1>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Contact Information:</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Submitted:</strong> {{.Submitted}}</p>
  </div>
  <div style="background: #e7f5ff; padding: 20px; border-radius: 8px; margin: 20px 0; border: 1px solid #bee3ff;">
    <h3 style="margin-top: 0;">Message:</h3>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd;">
    <p style="color: #666; font-size: 12px;">This message was sent from the ADAPTIV contact form.</p>
  </div>
</div>`))

var contactAckTmpl = template.Must(template.New("contactAck").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #000;">Thank you for reaching out!</h1>
  <p>Hi {{.Name}},</p>
  <p>We've received your message and will get back to you within 24 hours.</p>
  <p>If you have any urgent questions, feel free to reach out directly at hello@adaptiv.com</p>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd;">
    <p style="color: #666; font-size: 12px;">Best regards,<br>The ADAPTIV Team</p>
  </div>
</div>`))

var testEmailTmpl = template.Must(template.New("test").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #000;">Test Email Success!</h1>
  <p>If you're receiving this, your ADAPTIV email system is working correctly.</p>
  <p>Test sent at: {{.SentAt}}</p>
</div>`))

// Fixed section order for the manufacturing table; any extra categories a
// client invents follow alphabetically.
var sectionOrder = []string{
	formula.CategoryMain,
	formula.CategoryElectrolytes,
	formula.CategoryNootropics,
	formula.CategoryVitamins,
}

func orderedSections(facts *formula.SupplementFacts) []factsSection {
	if facts == nil {
		return nil
	}
	seen := make(map[string]bool, len(sectionOrder))
	var sections []factsSection
	for _, name := range sectionOrder {
		seen[name] = true
		if ings := facts.Categories[name]; len(ings) > 0 {
			sections = append(sections, factsSection{Name: name, Ingredients: ings})
		}
	}
	var extras []string
	for name := range facts.Categories {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		if ings := facts.Categories[name]; len(ings) > 0 {
			sections = append(sections, factsSection{Name: name, Ingredients: ings})
		}
	}
	return sections
}

func renderCustomerConfirmation(order Order) (string, error) {
	return execute(customerConfirmationTmpl, order)
}

func renderManufacturing(order Order) (string, error) {
	date := order.OrderDate
	if date.IsZero() {
		date = time.Now()
	}
	data := manufacturingData{
		Order:            order,
		OrderDateDisplay: date.Format("1/2/2006"),
		Sections:         orderedSections(order.Facts),
		HasShipping:      !order.Shipping.Empty(),
	}
	if order.Facts != nil {
		data.HasFacts = true
		data.Flavor = order.Facts.Flavor
		data.ServingSize = order.Facts.ServingSize
		data.ServingsPerCont = order.Facts.ServingsPerContainer
	}
	return execute(manufacturingTmpl, data)
}

func renderContactAdmin(name, email, message string) (string, error) {
	return execute(contactAdminTmpl, map[string]string{
		"Name":      name,
		"Email":     email,
		"Message":   message,
		"Submitted": time.Now().Format("1/2/2006, 3:04:05 PM"),
	})
}

func renderContactAck(name string) (string, error) {
	return execute(contactAckTmpl, map[string]string{"Name": name})
}

func renderTestEmail(at time.Time) (string, error) {
	return execute(testEmailTmpl, map[string]string{"SentAt": at.Format("1/2/2006, 3:04:05 PM")})
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
