package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"metagrow/internal/domain"
)

// Alternate contact channels advertised in the auto-reply.
const (
	whatsAppNumber = "+91 8299559257"
	operatorEmail  = "shivam@metagrow.com"
	senderName     = "Shivam Mani Tripathi - MetaGrow"
)

var businessTmpl = template.Must(template.New("business").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #FF6B6B;">New Contact Form Submission</h2>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
    <p><strong>Service Interest:</strong> {{.Service}}</p>
    <p><strong>Submitted:</strong> {{.Submitted}}</p>
  </div>
  <div style="background: #fff; padding: 20px; border-left: 4px solid #FF6B6B;">
    <h3 style="margin-top: 0;">Message:</h3>
    <p style="line-height: 1.6;">{{.Message}}</p>
  </div>
  <p style="color: #666; font-size: 14px;">Reply directly to this email or contact them at {{.Email}}</p>
</div>`))

var autoReplyTmpl = template.Must(template.New("autoreply").Parse(`<div style="font-family: 'Segoe UI', Tahoma, sans-serif; max-width: 650px; margin: 0 auto; background: white;">
  <div style="background: linear-gradient(135deg, #FF6B6B 0%, #FF8C42 100%); padding: 40px 30px; text-align: center;">
    <h1 style="color: white; margin: 0; font-weight: 300;">Thank You, {{.FirstName}}!</h1>
    <p style="color: rgba(255,255,255,0.9);">Your wealth management inquiry has been received</p>
  </div>
  <div style="padding: 30px;">
    <p style="color: #2c3e50; line-height: 1.8;">Thank you for reaching out regarding your wealth management needs. I will personally review your inquiry and respond within <strong>24 hours</strong>.</p>
    <div style="background: #f8f9fa; border-radius: 12px; padding: 20px; margin: 20px 0;">
      <p><strong>Service Interest:</strong> {{.Service}}</p>
      <p style="font-style: italic;">&quot;{{.Message}}&quot;</p>
    </div>
    <p style="color: #6c757d;">Need me sooner? WhatsApp {{.WhatsApp}} or email <a href="mailto:{{.OperatorEmail}}">{{.OperatorEmail}}</a>.</p>
  </div>
  <div style="background: #2c3e50; padding: 20px 30px; text-align: center; color: #bdc3c7; font-size: 13px;">
    Shivam Mani Tripathi &middot; Certified Wealth Manager | MetaGrow Partner
  </div>
</div>`))

// BusinessNotification builds the operator email carrying every submission
// field plus the creation timestamp.
func BusinessNotification(c domain.Contact, to, from string) Message {
	data := map[string]string{
		"Name":      c.FullName(),
		"Email":     c.Email,
		"Phone":     c.Phone,
		"Service":   serviceOrDefault(c.Service, "Not specified"),
		"Message":   c.Message,
		"Submitted": c.CreatedAt.Format(time.RFC1123),
	}
	var html bytes.Buffer
	_ = businessTmpl.Execute(&html, data)

	text := fmt.Sprintf(
		"New contact form submission from %s\n\nEmail: %s\nPhone: %s\nService: %s\nSubmitted: %s\n\nMessage:\n%s\n",
		c.FullName(), c.Email, c.Phone,
		serviceOrDefault(c.Service, "Not specified"),
		c.CreatedAt.Format(time.RFC1123), c.Message,
	)

	return Message{
		To:      to,
		From:    from,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", c.FullName()),
		Text:    text,
		HTML:    html.String(),
	}
}

// AutoReply builds the acknowledgement sent back to the submitter: it echoes
// the service interest and message, states the 24-hour response expectation
// and lists the alternate contact channels.
func AutoReply(c domain.Contact, from string) Message {
	data := map[string]string{
		"FirstName":     c.FirstName,
		"Service":       serviceOrDefault(c.Service, "General Wealth Management Inquiry"),
		"Message":       c.Message,
		"WhatsApp":      whatsAppNumber,
		"OperatorEmail": operatorEmail,
	}
	var html bytes.Buffer
	_ = autoReplyTmpl.Execute(&html, data)

	text := fmt.Sprintf(
		"Dear %s,\n\nThank you for reaching out regarding your wealth management needs. I have received your inquiry and will get back to you within 24 hours.\n\nService interest: %s\nYour message: %s\n\nFeel free to contact me directly:\nWhatsApp: %s\nEmail: %s\n\nBest regards,\n%s\n",
		c.FirstName,
		serviceOrDefault(c.Service, "General Wealth Management Inquiry"),
		c.Message, whatsAppNumber, operatorEmail, senderName,
	)

	return Message{
		To:      c.Email,
		From:    from,
		Subject: "Thank you for contacting Shivam Mani Tripathi - MetaGrow",
		Text:    text,
		HTML:    html.String(),
	}
}

func serviceOrDefault(service, fallback string) string {
	if service == "" {
		return fallback
	}
	return service
}
