package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 2, 15, hour, min, 0, 0, time.UTC)
}

func TestAppointment_OverlapsWith(t *testing.T) {
	existing := Appointment{StartTime: at(10, 0), EndTime: at(11, 0)}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		overlap bool
	}{
		{"ends before", at(8, 0), at(9, 0), false},
		{"back to back before", at(9, 0), at(10, 0), false},
		{"straddles start", at(9, 30), at(10, 30), true},
		{"contained", at(10, 15), at(10, 45), true},
		{"straddles end", at(10, 30), at(11, 30), true},
		{"back to back after", at(11, 0), at(12, 0), false},
		{"covers entirely", at(9, 0), at(12, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := Appointment{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.overlap, existing.OverlapsWith(&other))
			assert.Equal(t, tt.overlap, other.OverlapsWith(&existing))
		})
	}
}

func TestAppointment_IsCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentCancelled}).IsCancelled())
	for _, status := range []string{AppointmentPending, AppointmentConfirmed, AppointmentInProgress, AppointmentCompleted, AppointmentNoShow} {
		assert.False(t, (&Appointment{Status: status}).IsCancelled(), status)
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	for _, status := range AppointmentStatuses {
		assert.True(t, ValidAppointmentStatus(status))
	}
	assert.False(t, ValidAppointmentStatus("rescheduled"))
	assert.False(t, ValidAppointmentStatus(""))
}

func TestValidTimeOffStatus(t *testing.T) {
	for _, status := range []string{TimeOffPending, TimeOffApproved, TimeOffRejected, TimeOffCancelled} {
		assert.True(t, ValidTimeOffStatus(status))
	}
	assert.False(t, ValidTimeOffStatus("maybe"))
}

func TestCapacityConfig_Base(t *testing.T) {
	assert.Equal(t, DefaultBaseCapacity, CapacityConfig{}.Base())
	assert.Equal(t, DefaultBaseCapacity, CapacityConfig{BaseCapacity: -1}.Base())
	assert.Equal(t, 8, CapacityConfig{BaseCapacity: 8}.Base())
}
