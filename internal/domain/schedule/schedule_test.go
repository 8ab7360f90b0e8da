package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	slots := Slots()

	assert.Len(t, slots, SlotsPerDay)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "12:00", "lunch hour must not be bookable")

	// Returned slice is a copy.
	slots[0] = "00:00"
	assert.Equal(t, "08:00", Slots()[0])
}

func TestIsBusinessSlot(t *testing.T) {
	for _, s := range Slots() {
		assert.True(t, IsBusinessSlot(s), s)
	}
	assert.False(t, IsBusinessSlot("12:00"))
	assert.False(t, IsBusinessSlot("08:30"))
	assert.False(t, IsBusinessSlot(""))
}

func TestSlotOf(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 0, 42, 999, time.UTC)
	assert.Equal(t, "09:00", SlotOf(at))
}

func TestSlotTime(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	at, err := SlotTime(day, "13:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC), at)

	_, err = SlotTime(day, "12:00")
	assert.Error(t, err)
}

func TestClassifyDay(t *testing.T) {
	assert.Equal(t, DayAvailable, ClassifyDay(0))
	assert.Equal(t, DayPartial, ClassifyDay(1))
	assert.Equal(t, DayPartial, ClassifyDay(8))
	assert.Equal(t, DayFull, ClassifyDay(9))
	assert.Equal(t, DayFull, ClassifyDay(15))
}

func TestSuggestRouteSlot(t *testing.T) {
	cases := []struct {
		position int
		want     string
	}{
		{0, "09:00"},
		{1, "10:00"},
		{8, "17:00"},
		{9, "17:00"},
		{25, "17:00"},
		{-1, "09:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SuggestRouteSlot(tc.position), "position %d", tc.position)
	}
}
