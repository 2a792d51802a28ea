package notification

import (
	"context"
	"fmt"
	"strings"

	"agendly/config"
	"agendly/models"

	"gopkg.in/gomail.v2"
)

// EmailNotifier is the production Notifier, delivering over SMTP.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailNotifier builds a notifier from the application SMTP configuration.
func NewEmailNotifier() *EmailNotifier {
	cfg := config.AppConfig
	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

// SendCreated confirms receipt of a new appointment request.
func (n *EmailNotifier) SendCreated(ctx context.Context, apt *models.Appointment, serviceName string) error {
	subject := "Appointment request received"
	body := fmt.Sprintf(
		"<h1>Hello, %s!</h1>"+
			"<p>We received your appointment request for %s.</p>"+
			"<p>Date: %s</p>"+
			"<p>Time: %s</p>"+
			"<p>We will let you know as soon as it is confirmed.</p>",
		apt.CustomerName, serviceName, apt.Date, apt.Time,
	)
	if apt.Status == models.StatusApproved {
		subject = "Appointment confirmed"
	}
	return n.send(ctx, apt.CustomerEmail, subject, body)
}

// SendStatusChanged informs the customer of an approval or cancellation.
func (n *EmailNotifier) SendStatusChanged(ctx context.Context, apt *models.Appointment, serviceName, confirmationTemplate string) error {
	var subject, body string
	switch apt.Status {
	case models.StatusApproved:
		subject = "Appointment confirmed"
		body = fmt.Sprintf("<p>%s</p>", RenderTemplate(confirmationTemplate, apt, serviceName))
	case models.StatusCancelled:
		subject = "Appointment cancelled"
		body = fmt.Sprintf(
			"<h1>Hello, %s.</h1>"+
				"<p>Your appointment for %s on %s at %s has been cancelled.</p>"+
				"<p>Feel free to book another time that suits you.</p>",
			apt.CustomerName, serviceName, apt.Date, apt.Time,
		)
	default:
		return nil
	}
	return n.send(ctx, apt.CustomerEmail, subject, body)
}

// SendReminder nudges the customer ahead of an upcoming appointment.
func (n *EmailNotifier) SendReminder(ctx context.Context, apt *models.Appointment, serviceName string) error {
	body := fmt.Sprintf(
		"<h1>Hello, %s!</h1>"+
			"<p>This is a reminder of your upcoming appointment for %s.</p>"+
			"<p>Date: %s</p>"+
			"<p>Time: %s</p>",
		apt.CustomerName, serviceName, apt.Date, apt.Time,
	)
	return n.send(ctx, apt.CustomerEmail, "Appointment reminder", body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("notification: no recipient address")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() { done <- n.dialer.DialAndSend(msg) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("notification: failed to send %q to %s: %w", subject, to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RenderTemplate substitutes the admin-configured confirmation placeholders.
// An empty template falls back to a plain confirmation line.
func RenderTemplate(template string, apt *models.Appointment, serviceName string) string {
	if strings.TrimSpace(template) == "" {
		template = "Your appointment for {{service}} on {{date}} at {{time}} is confirmed, {{name}}."
	}
	replacer := strings.NewReplacer(
		"{{name}}", apt.CustomerName,
		"{{service}}", serviceName,
		"{{date}}", apt.Date,
		"{{time}}", apt.Time,
	)
	return replacer.Replace(template)
}
