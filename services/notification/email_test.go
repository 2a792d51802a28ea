package notification

import (
	"testing"

	"agendly/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	apt := &models.Appointment{
		CustomerName: "Ada Lovelace",
		Date:         "2026-09-07",
		Time:         "10:00",
	}

	out := RenderTemplate("Hi {{name}}, {{service}} on {{date}} at {{time}}.", apt, "Haircut")
	assert.Equal(t, "Hi Ada Lovelace, Haircut on 2026-09-07 at 10:00.", out)
}

func TestRenderTemplateEmptyFallsBack(t *testing.T) {
	apt := &models.Appointment{
		CustomerName: "Ada Lovelace",
		Date:         "2026-09-07",
		Time:         "10:00",
	}

	out := RenderTemplate("   ", apt, "Haircut")
	assert.Contains(t, out, "Haircut")
	assert.Contains(t, out, "2026-09-07")
	assert.Contains(t, out, "Ada Lovelace")
	assert.NotContains(t, out, "{{")
}

func TestRenderTemplateUnknownPlaceholderLeftAlone(t *testing.T) {
	apt := &models.Appointment{CustomerName: "Ada"}
	out := RenderTemplate("Hello {{name}}, ref {{bookingRef}}", apt, "Haircut")
	assert.Equal(t, "Hello Ada, ref {{bookingRef}}", out)
}
