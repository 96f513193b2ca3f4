package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotKey_Daily(t *testing.T) {
	slot := DailySlot()

	assert.True(t, slot.IsDaily())
	assert.Equal(t, SlotKey("daily"), slot)

	_, err := slot.ArchiveDate()
	assert.Error(t, err)
}

func TestSlotKey_ArchiveRoundTrip(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	slot := ArchiveSlot(date)

	assert.Equal(t, SlotKey("archive:2026-03-14"), slot)
	assert.False(t, slot.IsDaily())

	parsed, err := slot.ArchiveDate()
	require.NoError(t, err)
	assert.True(t, parsed.Equal(date))
}

func TestSlotKey_ArchiveNormalizesToUTCDate(t *testing.T) {
	// 23:30 on the 14th in UTC+5 converts to 18:30 UTC, still the 14th
	loc := time.FixedZone("UTC+5", 5*3600)
	slot := ArchiveSlot(time.Date(2026, 3, 14, 23, 30, 0, 0, loc))

	assert.Equal(t, SlotKey("archive:2026-03-14"), slot)
}

func TestSlotKey_ArchiveDateMalformed(t *testing.T) {
	tests := []struct {
		name string
		slot SlotKey
	}{
		{name: "missing prefix", slot: SlotKey("2026-03-14")},
		{name: "garbled date", slot: SlotKey("archive:14-03-2026")},
		{name: "empty date", slot: SlotKey("archive:")},
		{name: "empty key", slot: SlotKey("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.slot.ArchiveDate()
			assert.Error(t, err)
		})
	}
}
