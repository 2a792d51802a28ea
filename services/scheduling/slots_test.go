package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots("09:00", "13:00")
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00"}, slots)
}

func TestGenerateSlotsCloseIsExclusive(t *testing.T) {
	slots := GenerateSlots("09:00", "18:00")
	assert.Len(t, slots, 9)
	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "18:00")
}

func TestGenerateSlotsOffsetOpen(t *testing.T) {
	// Slots are anchored on the opening time, not on the hour.
	slots := GenerateSlots("09:30", "12:00")
	assert.Equal(t, []string{"09:30", "10:30", "11:30"}, slots)
}

func TestGenerateSlotsEmptyWindow(t *testing.T) {
	assert.Empty(t, GenerateSlots("10:00", "10:00"))
	assert.Empty(t, GenerateSlots("14:00", "09:00"))
}

func TestGenerateSlotsMalformedBounds(t *testing.T) {
	assert.Nil(t, GenerateSlots("9am", "17:00"))
	assert.Nil(t, GenerateSlots("09:00", ""))
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	first := GenerateSlots("09:00", "18:00")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateSlots("09:00", "18:00"))
	}
}
