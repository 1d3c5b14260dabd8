package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

func TestBuildDaySlots(t *testing.T) {
	tests := []struct {
		name     string
		open     types.TimeString
		close    types.TimeString
		duration int
		want     []daySlot
	}{
		{
			name:     "two hour window with hour slots",
			open:     "09:00",
			close:    "11:00",
			duration: 60,
			want: []daySlot{
				{Start: "09:00", End: "10:00"},
				{Start: "10:00", End: "11:00"},
			},
		},
		{
			name:     "trailing slot dropped not truncated",
			open:     "09:00",
			close:    "10:30",
			duration: 60,
			want: []daySlot{
				{Start: "09:00", End: "10:00"},
			},
		},
		{
			name:     "duration longer than window",
			open:     "09:00",
			close:    "10:00",
			duration: 90,
			want:     []daySlot{},
		},
		{
			name:     "uneven duration",
			open:     "10:00",
			close:    "18:00",
			duration: 150,
			want: []daySlot{
				{Start: "10:00", End: "12:30"},
				{Start: "12:30", End: "15:00"},
				{Start: "15:00", End: "17:30"},
			},
		},
		{
			name:     "window ending at midnight",
			open:     "23:00",
			close:    "24:00",
			duration: 30,
			want: []daySlot{
				{Start: "23:00", End: "23:30"},
				{Start: "23:30", End: "24:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildDaySlots(tt.open, tt.close, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysInRange(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	days := daysInRange(start, end)
	require.Len(t, days, 3)
	assert.Equal(t, start, days[0])
	assert.Equal(t, end, days[2])
}

func TestDaysInRange_SingleDay(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	days := daysInRange(day, day)
	require.Len(t, days, 1)
	assert.Equal(t, day, days[0])
}

func TestDaysInRange_IgnoresClockPart(t *testing.T) {
	start := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 6, 2, 0, 1, 0, 0, time.UTC)

	days := daysInRange(start, end)
	assert.Len(t, days, 2)
}
