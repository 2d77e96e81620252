// services/conflict.go
package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// DetectScheduleConflicts inspects one snapshot of a barbershop's schedule
// and returns every detected inconsistency, ordered by severity (high,
// medium, low) and then by date. It is a pure function: inputs are never
// mutated, no I/O happens, and identical input produces an identical list
// with identical conflict IDs.
//
// The caller must fetch all four inputs for the same barbershop and the
// same date range; the detector does not re-filter by shop or range.
// Cancelled appointments are ignored by every rule.
func DetectScheduleConflicts(
	appointments []models.Appointment,
	holidays []models.Holiday,
	timeOff []models.TimeOffRequest,
	capacity models.CapacityConfig,
) []models.ScheduleConflict {
	active := activeAppointments(appointments)

	var conflicts []models.ScheduleConflict
	conflicts = append(conflicts, overlapConflicts(active)...)
	conflicts = append(conflicts, holidayConflicts(active, holidays)...)
	conflicts = append(conflicts, timeOffConflicts(active, timeOff, models.TimeOffApproved, models.SeverityHigh)...)
	conflicts = append(conflicts, timeOffConflicts(active, timeOff, models.TimeOffPending, models.SeverityLow)...)
	conflicts = append(conflicts, capacityConflicts(active, capacity)...)

	sort.SliceStable(conflicts, func(i, j int) bool {
		ri, rj := models.SeverityRank(conflicts[i].Severity), models.SeverityRank(conflicts[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return conflicts[i].Date < conflicts[j].Date
	})

	return conflicts
}

func activeAppointments(appointments []models.Appointment) []models.Appointment {
	active := make([]models.Appointment, 0, len(appointments))
	for _, apt := range appointments {
		if !apt.IsCancelled() {
			active = append(active, apt)
		}
	}
	return active
}

// overlapConflicts flags double bookings per barber. Appointments are
// sorted by start time and only adjacent pairs are compared, so a chain of
// three mutually overlapping appointments yields two pair conflicts rather
// than one merged record. This keeps the check O(n log n) per barber and
// still catches every pairwise overlap.
func overlapConflicts(active []models.Appointment) []models.ScheduleConflict {
	byBarber := make(map[uuid.UUID][]models.Appointment)
	var barberOrder []uuid.UUID
	for _, apt := range active {
		if _, seen := byBarber[apt.BarberID]; !seen {
			barberOrder = append(barberOrder, apt.BarberID)
		}
		byBarber[apt.BarberID] = append(byBarber[apt.BarberID], apt)
	}

	var conflicts []models.ScheduleConflict
	for _, barberID := range barberOrder {
		apts := byBarber[barberID]
		sort.SliceStable(apts, func(i, j int) bool {
			return apts[i].StartTime.Before(apts[j].StartTime)
		})

		for i := 0; i < len(apts)-1; i++ {
			prev, next := apts[i], apts[i+1]
			if !prev.EndTime.After(next.StartTime) {
				continue
			}

			conflicts = append(conflicts, models.ScheduleConflict{
				ID:         fmt.Sprintf("overlap-%s-%s", prev.ID, next.ID),
				Type:       models.ConflictOverlap,
				Severity:   models.SeverityHigh,
				Date:       utils.DateKey(prev.StartTime),
				TimeRange:  utils.FormatTimeRange(prev.StartTime, next.EndTime),
				BarberID:   barberID.String(),
				BarberName: prev.Barber.Name,
				Description: fmt.Sprintf("Double booking: %s (%s) overlaps %s (%s)",
					prev.CustomerName, prev.ServiceName, next.CustomerName, next.ServiceName),
				AffectedAppointments: 2,
				Suggestion:           "Reschedule one of the appointments or assign another barber",
			})
		}
	}
	return conflicts
}

// holidayConflicts flags appointments booked on full-closure holidays.
// Holidays marked as custom hours keep the shop open and are skipped.
func holidayConflicts(active []models.Appointment, holidays []models.Holiday) []models.ScheduleConflict {
	var conflicts []models.ScheduleConflict
	for _, h := range holidays {
		if h.CustomHours {
			continue
		}

		day := utils.DateKey(h.Date)
		count := 0
		for _, apt := range active {
			if utils.DateKey(apt.StartTime) == day {
				count++
			}
		}
		if count == 0 {
			continue
		}

		conflicts = append(conflicts, models.ScheduleConflict{
			ID:                   "holiday-" + h.ID.String(),
			Type:                 models.ConflictHoliday,
			Severity:             models.SeverityHigh,
			Date:                 day,
			Description:          fmt.Sprintf("%d appointment(s) booked on %s, but the shop is closed", count, h.Reason),
			AffectedAppointments: count,
			Suggestion:           "Reschedule the affected appointments or switch the holiday to custom hours",
		})
	}
	return conflicts
}

// timeOffConflicts flags appointments that fall inside a barber's time-off
// range. Approved requests are high severity; pending ones are low severity
// advisories since the request may still be rejected. Dates compare
// lexicographically, which is chronological for yyyy-MM-dd keys.
func timeOffConflicts(active []models.Appointment, timeOff []models.TimeOffRequest, status, severity string) []models.ScheduleConflict {
	var conflicts []models.ScheduleConflict
	for _, req := range timeOff {
		if req.Status != status {
			continue
		}

		start, end := utils.DateKey(req.StartDate), utils.DateKey(req.EndDate)
		count := 0
		var name string
		for _, apt := range active {
			if apt.BarberID != req.BarberID {
				continue
			}
			day := utils.DateKey(apt.StartTime)
			if day >= start && day <= end {
				count++
				if name == "" {
					name = apt.Barber.Name
				}
			}
		}
		if count == 0 {
			continue
		}
		if name == "" {
			name = req.Barber.Name
		}

		verb := "approved"
		suggestion := "Reassign or reschedule the affected appointments"
		if status == models.TimeOffPending {
			verb = "requested"
			suggestion = "Resolve the time-off request before the appointments come up"
		}

		conflicts = append(conflicts, models.ScheduleConflict{
			ID:                   "timeoff-" + req.ID.String(),
			Type:                 models.ConflictTimeOff,
			Severity:             severity,
			Date:                 start,
			BarberID:             req.BarberID.String(),
			BarberName:           name,
			Description:          fmt.Sprintf("%d appointment(s) during %s time off (%s to %s)", count, verb, start, end),
			AffectedAppointments: count,
			Suggestion:           suggestion,
		})
	}
	return conflicts
}

// capacityConflicts flags minutes where more appointments start than the
// shop can serve concurrently. Grouping is by exact start minute, not by
// overlapping interval: appointments starting one minute apart land in
// separate groups.
func capacityConflicts(active []models.Appointment, capacity models.CapacityConfig) []models.ScheduleConflict {
	base := capacity.Base()

	groups := make(map[string]int)
	var slotOrder []string
	for _, apt := range active {
		key := utils.SlotKey(apt.StartTime)
		if _, seen := groups[key]; !seen {
			slotOrder = append(slotOrder, key)
		}
		groups[key]++
	}

	var conflicts []models.ScheduleConflict
	for _, key := range slotOrder {
		n := groups[key]
		if n <= base {
			continue
		}

		severity := models.SeverityMedium
		if float64(n) > float64(base)*1.5 {
			severity = models.SeverityHigh
		}

		day, clock := key[:len(utils.DateKeyLayout)], key[len(utils.DateKeyLayout)+1:]
		conflicts = append(conflicts, models.ScheduleConflict{
			ID:                   fmt.Sprintf("capacity-%s-%s", day, clock),
			Type:                 models.ConflictCapacity,
			Severity:             severity,
			Date:                 day,
			TimeRange:            clock,
			Description:          fmt.Sprintf("%d appointments start at %s but capacity is %d", n, clock, base),
			AffectedAppointments: n - base,
			Suggestion:           "Stagger start times or raise the shop capacity",
		})
	}
	return conflicts
}
