package notification

import (
	"context"

	"agendly/models"
)

// Notifier defines the email side channel for customer notifications. Both
// methods are best-effort: the scheduling engine fires them asynchronously
// and never rolls back a state transition when they fail.
type Notifier interface {
	// SendCreated confirms receipt of a new appointment request.
	SendCreated(ctx context.Context, apt *models.Appointment, serviceName string) error

	// SendStatusChanged informs the customer of an approval or cancellation.
	// confirmationTemplate is the admin-configured message used for
	// approvals; placeholders {{name}}, {{service}}, {{date}} and {{time}}
	// are substituted.
	SendStatusChanged(ctx context.Context, apt *models.Appointment, serviceName, confirmationTemplate string) error

	// SendReminder nudges the customer ahead of an upcoming appointment.
	SendReminder(ctx context.Context, apt *models.Appointment, serviceName string) error
}
