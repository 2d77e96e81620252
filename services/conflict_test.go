package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook-backend/models"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func appointment(barberID uuid.UUID, start, end time.Time, status string) models.Appointment {
	return models.Appointment{
		ID:           uuid.New(),
		BarberID:     barberID,
		CustomerName: "Customer",
		ServiceName:  "Haircut",
		StartTime:    start,
		EndTime:      end,
		Status:       status,
	}
}

func TestDetectScheduleConflicts_Idempotent(t *testing.T) {
	barber := uuid.New()
	other := uuid.New()

	appointments := []models.Appointment{
		appointment(barber, datetime(2024, 2, 15, 10, 0), datetime(2024, 2, 15, 11, 0), models.AppointmentConfirmed),
		appointment(barber, datetime(2024, 2, 15, 10, 30), datetime(2024, 2, 15, 11, 30), models.AppointmentConfirmed),
		appointment(other, datetime(2024, 2, 16, 9, 0), datetime(2024, 2, 16, 9, 30), models.AppointmentPending),
	}
	holidays := []models.Holiday{
		{ID: uuid.New(), Date: date(2024, 2, 16), Reason: "Inventory"},
	}
	timeOff := []models.TimeOffRequest{
		{ID: uuid.New(), BarberID: other, StartDate: date(2024, 2, 16), EndDate: date(2024, 2, 16), Status: models.TimeOffPending},
	}
	capacity := models.CapacityConfig{BaseCapacity: 4}

	first := DetectScheduleConflicts(appointments, holidays, timeOff, capacity)
	second := DetectScheduleConflicts(appointments, holidays, timeOff, capacity)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestDetectScheduleConflicts_CancelledExcluded(t *testing.T) {
	barber := uuid.New()

	// Overlapping, on a holiday, inside approved time off, and five deep in
	// one slot: every rule would fire if these were live.
	start := datetime(2024, 2, 15, 10, 0)
	var appointments []models.Appointment
	for i := 0; i < 5; i++ {
		appointments = append(appointments,
			appointment(barber, start, start.Add(time.Hour), models.AppointmentCancelled))
	}

	holidays := []models.Holiday{
		{ID: uuid.New(), Date: date(2024, 2, 15), Reason: "Renovation"},
	}
	timeOff := []models.TimeOffRequest{
		{ID: uuid.New(), BarberID: barber, StartDate: date(2024, 2, 15), EndDate: date(2024, 2, 15), Status: models.TimeOffApproved},
	}

	conflicts := DetectScheduleConflicts(appointments, holidays, timeOff, models.CapacityConfig{BaseCapacity: 4})
	assert.Empty(t, conflicts)
}

func TestDetectScheduleConflicts_AdjacentPairOverlaps(t *testing.T) {
	barber := uuid.New()

	first := appointment(barber, datetime(2024, 2, 15, 10, 0), datetime(2024, 2, 15, 11, 0), models.AppointmentConfirmed)
	second := appointment(barber, datetime(2024, 2, 15, 10, 30), datetime(2024, 2, 15, 11, 30), models.AppointmentConfirmed)
	third := appointment(barber, datetime(2024, 2, 15, 11, 15), datetime(2024, 2, 15, 12, 0), models.AppointmentConfirmed)

	conflicts := DetectScheduleConflicts(
		[]models.Appointment{first, second, third}, nil, nil, models.CapacityConfig{})

	// Two pair conflicts, never one merged three-way record.
	require.Len(t, conflicts, 2)
	for _, c := range conflicts {
		assert.Equal(t, models.ConflictOverlap, c.Type)
		assert.Equal(t, models.SeverityHigh, c.Severity)
		assert.Equal(t, "2024-02-15", c.Date)
		assert.Equal(t, 2, c.AffectedAppointments)
		assert.Equal(t, barber.String(), c.BarberID)
	}
	assert.Equal(t, "overlap-"+first.ID.String()+"-"+second.ID.String(), conflicts[0].ID)
	assert.Equal(t, "overlap-"+second.ID.String()+"-"+third.ID.String(), conflicts[1].ID)
	assert.Equal(t, "10:00 - 11:30", conflicts[0].TimeRange)
	assert.Equal(t, "10:30 - 12:00", conflicts[1].TimeRange)
}

func TestDetectScheduleConflicts_BackToBackIsNotOverlap(t *testing.T) {
	barber := uuid.New()
	conflicts := DetectScheduleConflicts([]models.Appointment{
		appointment(barber, datetime(2024, 2, 15, 10, 0), datetime(2024, 2, 15, 11, 0), models.AppointmentConfirmed),
		appointment(barber, datetime(2024, 2, 15, 11, 0), datetime(2024, 2, 15, 12, 0), models.AppointmentConfirmed),
	}, nil, nil, models.CapacityConfig{})

	assert.Empty(t, conflicts)
}

func TestDetectScheduleConflicts_HolidayClosure(t *testing.T) {
	barberA, barberB := uuid.New(), uuid.New()
	appointments := []models.Appointment{
		appointment(barberA, datetime(2024, 3, 1, 9, 0), datetime(2024, 3, 1, 9, 30), models.AppointmentConfirmed),
		appointment(barberA, datetime(2024, 3, 1, 11, 0), datetime(2024, 3, 1, 11, 30), models.AppointmentConfirmed),
		appointment(barberB, datetime(2024, 3, 1, 14, 0), datetime(2024, 3, 1, 14, 30), models.AppointmentPending),
	}

	t.Run("full closure flags all appointments on the day", func(t *testing.T) {
		holiday := models.Holiday{ID: uuid.New(), Date: date(2024, 3, 1), Reason: "Public holiday"}

		conflicts := DetectScheduleConflicts(appointments, []models.Holiday{holiday}, nil, models.CapacityConfig{})

		require.Len(t, conflicts, 1)
		assert.Equal(t, models.ConflictHoliday, conflicts[0].Type)
		assert.Equal(t, models.SeverityHigh, conflicts[0].Severity)
		assert.Equal(t, "2024-03-01", conflicts[0].Date)
		assert.Equal(t, 3, conflicts[0].AffectedAppointments)
		assert.Contains(t, conflicts[0].Description, "Public holiday")
		assert.Equal(t, "holiday-"+holiday.ID.String(), conflicts[0].ID)
	})

	t.Run("custom hours keeps the shop open", func(t *testing.T) {
		holiday := models.Holiday{ID: uuid.New(), Date: date(2024, 3, 1), Reason: "Short day", CustomHours: true}

		conflicts := DetectScheduleConflicts(appointments, []models.Holiday{holiday}, nil, models.CapacityConfig{})
		assert.Empty(t, conflicts)
	})

	t.Run("holiday with no appointments is quiet", func(t *testing.T) {
		holiday := models.Holiday{ID: uuid.New(), Date: date(2024, 3, 2), Reason: "Sunday off"}

		conflicts := DetectScheduleConflicts(appointments, []models.Holiday{holiday}, nil, models.CapacityConfig{})
		assert.Empty(t, conflicts)
	})
}

func TestDetectScheduleConflicts_TimeOffSeverity(t *testing.T) {
	barber := uuid.New()
	appointments := []models.Appointment{
		appointment(barber, datetime(2024, 4, 10, 10, 0), datetime(2024, 4, 10, 10, 30), models.AppointmentConfirmed),
		appointment(barber, datetime(2024, 4, 11, 15, 0), datetime(2024, 4, 11, 15, 45), models.AppointmentConfirmed),
	}
	request := func(status string) []models.TimeOffRequest {
		return []models.TimeOffRequest{{
			ID:        uuid.New(),
			BarberID:  barber,
			StartDate: date(2024, 4, 10),
			EndDate:   date(2024, 4, 11),
			Status:    status,
		}}
	}

	t.Run("approved is high severity", func(t *testing.T) {
		conflicts := DetectScheduleConflicts(appointments, nil, request(models.TimeOffApproved), models.CapacityConfig{})

		require.Len(t, conflicts, 1)
		assert.Equal(t, models.ConflictTimeOff, conflicts[0].Type)
		assert.Equal(t, models.SeverityHigh, conflicts[0].Severity)
		assert.Equal(t, 2, conflicts[0].AffectedAppointments)
		assert.Equal(t, "2024-04-10", conflicts[0].Date)
	})

	t.Run("pending is a low severity advisory", func(t *testing.T) {
		conflicts := DetectScheduleConflicts(appointments, nil, request(models.TimeOffPending), models.CapacityConfig{})

		require.Len(t, conflicts, 1)
		assert.Equal(t, models.ConflictTimeOff, conflicts[0].Type)
		assert.Equal(t, models.SeverityLow, conflicts[0].Severity)
		assert.Equal(t, 2, conflicts[0].AffectedAppointments)
	})

	t.Run("rejected and cancelled are ignored", func(t *testing.T) {
		for _, status := range []string{models.TimeOffRejected, models.TimeOffCancelled} {
			conflicts := DetectScheduleConflicts(appointments, nil, request(status), models.CapacityConfig{})
			assert.Empty(t, conflicts, "status %s", status)
		}
	})

	t.Run("other barbers are unaffected", func(t *testing.T) {
		stranger := uuid.New()
		req := []models.TimeOffRequest{{
			ID: uuid.New(), BarberID: stranger,
			StartDate: date(2024, 4, 10), EndDate: date(2024, 4, 11),
			Status: models.TimeOffApproved,
		}}
		conflicts := DetectScheduleConflicts(appointments, nil, req, models.CapacityConfig{})
		assert.Empty(t, conflicts)
	})
}

func TestDetectScheduleConflicts_CapacityThreshold(t *testing.T) {
	// Distinct barbers so the overlap rule stays quiet.
	slot := datetime(2024, 5, 6, 10, 0)
	crowd := func(n int) []models.Appointment {
		appointments := make([]models.Appointment, 0, n)
		for i := 0; i < n; i++ {
			appointments = append(appointments,
				appointment(uuid.New(), slot, slot.Add(30*time.Minute), models.AppointmentConfirmed))
		}
		return appointments
	}
	capacity := models.CapacityConfig{BaseCapacity: 4}

	t.Run("at capacity is fine", func(t *testing.T) {
		assert.Empty(t, DetectScheduleConflicts(crowd(4), nil, nil, capacity))
	})

	t.Run("one over is medium", func(t *testing.T) {
		conflicts := DetectScheduleConflicts(crowd(5), nil, nil, capacity)

		require.Len(t, conflicts, 1)
		assert.Equal(t, models.ConflictCapacity, conflicts[0].Type)
		assert.Equal(t, models.SeverityMedium, conflicts[0].Severity)
		assert.Equal(t, 1, conflicts[0].AffectedAppointments)
		assert.Equal(t, "2024-05-06", conflicts[0].Date)
		assert.Equal(t, "10:00", conflicts[0].TimeRange)
	})

	t.Run("past one and a half times capacity is high", func(t *testing.T) {
		conflicts := DetectScheduleConflicts(crowd(7), nil, nil, capacity)

		require.Len(t, conflicts, 1)
		assert.Equal(t, models.SeverityHigh, conflicts[0].Severity)
		assert.Equal(t, 3, conflicts[0].AffectedAppointments)
	})

	t.Run("exactly one and a half times capacity stays medium", func(t *testing.T) {
		conflicts := DetectScheduleConflicts(crowd(6), nil, nil, capacity)

		require.Len(t, conflicts, 1)
		assert.Equal(t, models.SeverityMedium, conflicts[0].Severity)
	})

	t.Run("unset capacity defaults to four", func(t *testing.T) {
		conflicts := DetectScheduleConflicts(crowd(5), nil, nil, models.CapacityConfig{})

		require.Len(t, conflicts, 1)
		assert.Equal(t, 1, conflicts[0].AffectedAppointments)
	})

	t.Run("one minute apart is a separate group", func(t *testing.T) {
		appointments := crowd(4)
		shifted := appointment(uuid.New(), slot.Add(time.Minute), slot.Add(31*time.Minute), models.AppointmentConfirmed)
		appointments = append(appointments, shifted)

		assert.Empty(t, DetectScheduleConflicts(appointments, nil, nil, capacity))
	})
}

func TestDetectScheduleConflicts_SortOrder(t *testing.T) {
	overlapBarber := uuid.New()
	timeOffBarber := uuid.New()

	appointments := []models.Appointment{
		// High: overlap on the 19th.
		appointment(overlapBarber, datetime(2024, 3, 19, 10, 0), datetime(2024, 3, 19, 11, 0), models.AppointmentConfirmed),
		appointment(overlapBarber, datetime(2024, 3, 19, 10, 30), datetime(2024, 3, 19, 11, 30), models.AppointmentConfirmed),
		// High: one appointment on the holiday on the 17th.
		appointment(uuid.New(), datetime(2024, 3, 17, 9, 0), datetime(2024, 3, 17, 9, 30), models.AppointmentConfirmed),
		// Low: one appointment inside pending time off on the 20th.
		appointment(timeOffBarber, datetime(2024, 3, 20, 9, 0), datetime(2024, 3, 20, 9, 30), models.AppointmentConfirmed),
	}
	// Medium: five distinct barbers in one slot on the 18th.
	slot := datetime(2024, 3, 18, 9, 0)
	for i := 0; i < 5; i++ {
		appointments = append(appointments,
			appointment(uuid.New(), slot, slot.Add(20*time.Minute), models.AppointmentConfirmed))
	}

	holidays := []models.Holiday{
		{ID: uuid.New(), Date: date(2024, 3, 17), Reason: "Founders Day"},
	}
	timeOff := []models.TimeOffRequest{
		{ID: uuid.New(), BarberID: timeOffBarber, StartDate: date(2024, 3, 20), EndDate: date(2024, 3, 20), Status: models.TimeOffPending},
	}

	conflicts := DetectScheduleConflicts(appointments, holidays, timeOff, models.CapacityConfig{BaseCapacity: 4})

	require.Len(t, conflicts, 4)
	assert.Equal(t, models.SeverityHigh, conflicts[0].Severity)
	assert.Equal(t, "2024-03-17", conflicts[0].Date)
	assert.Equal(t, models.SeverityHigh, conflicts[1].Severity)
	assert.Equal(t, "2024-03-19", conflicts[1].Date)
	assert.Equal(t, models.SeverityMedium, conflicts[2].Severity)
	assert.Equal(t, "2024-03-18", conflicts[2].Date)
	assert.Equal(t, models.SeverityLow, conflicts[3].Severity)
	assert.Equal(t, "2024-03-20", conflicts[3].Date)
}

func TestDetectScheduleConflicts_Scenario(t *testing.T) {
	b1 := uuid.New()
	appointments := []models.Appointment{
		appointment(b1, datetime(2024, 2, 15, 10, 0), datetime(2024, 2, 15, 11, 0), models.AppointmentConfirmed),
		appointment(b1, datetime(2024, 2, 15, 10, 30), datetime(2024, 2, 15, 11, 30), models.AppointmentConfirmed),
	}

	conflicts := DetectScheduleConflicts(appointments, nil, nil, models.CapacityConfig{BaseCapacity: 4})

	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictOverlap, conflicts[0].Type)
	assert.Equal(t, models.SeverityHigh, conflicts[0].Severity)
	assert.Equal(t, "2024-02-15", conflicts[0].Date)
	assert.Equal(t, 2, conflicts[0].AffectedAppointments)
	assert.Equal(t, b1.String(), conflicts[0].BarberID)
}

func TestDetectScheduleConflicts_EmptyInputs(t *testing.T) {
	conflicts := DetectScheduleConflicts(nil, nil, nil, models.CapacityConfig{})
	assert.Empty(t, conflicts)
}

func TestDetectScheduleConflicts_InputsNotMutated(t *testing.T) {
	barber := uuid.New()
	// Deliberately out of order; the detector sorts internally.
	appointments := []models.Appointment{
		appointment(barber, datetime(2024, 2, 15, 10, 30), datetime(2024, 2, 15, 11, 30), models.AppointmentConfirmed),
		appointment(barber, datetime(2024, 2, 15, 10, 0), datetime(2024, 2, 15, 11, 0), models.AppointmentConfirmed),
	}
	firstID, secondID := appointments[0].ID, appointments[1].ID

	DetectScheduleConflicts(appointments, nil, nil, models.CapacityConfig{})

	assert.Equal(t, firstID, appointments[0].ID)
	assert.Equal(t, secondID, appointments[1].ID)
	assert.True(t, appointments[0].StartTime.After(appointments[1].StartTime))
}
