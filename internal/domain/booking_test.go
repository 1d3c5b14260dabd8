package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		status      BookingStatus
		cancellable bool
		terminal    bool
		stillActive bool
	}{
		{StatusPending, true, false, true},
		{StatusConfirmed, true, false, true},
		{StatusCancelled, false, true, false},
		{StatusCompleted, false, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.stillActive, b.IsActive())
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.False(t, ValidStatus(BookingStatus("unknown")))
	assert.False(t, ValidStatus(BookingStatus("")))
}
