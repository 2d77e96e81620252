package models

// Conflict types, in rule order.
const (
	ConflictOverlap  = "overlap"
	ConflictCapacity = "capacity"
	ConflictHoliday  = "holiday"
	ConflictTimeOff  = "timeoff"
	ConflictBreak    = "break"
)

// Conflict severities. High severity conflicts block the schedule as
// booked; low severity ones are advisories.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ScheduleConflict is the sole output of conflict detection. It is never
// persisted: every detection run rebuilds the full list from scratch, and
// IDs are derived from the conflicting entities so identical input yields
// identical IDs.
type ScheduleConflict struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`

	// Date is the calendar day the conflict pertains to, yyyy-MM-dd.
	Date      string `json:"date"`
	TimeRange string `json:"timeRange,omitempty"`

	BarberID   string `json:"barberId,omitempty"`
	BarberName string `json:"barberName,omitempty"`

	Description          string `json:"description"`
	AffectedAppointments int    `json:"affectedAppointments,omitempty"`
	Suggestion           string `json:"suggestion,omitempty"`
}

// SeverityRank orders severities for sorting: high before medium before low.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

// ConflictSummary is the derived per-severity count view consumed by the
// dashboard, a pure projection of a detection result.
type ConflictSummary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Summarize counts conflicts per severity.
func Summarize(conflicts []ScheduleConflict) ConflictSummary {
	s := ConflictSummary{Total: len(conflicts)}
	for _, c := range conflicts {
		switch c.Severity {
		case SeverityHigh:
			s.High++
		case SeverityMedium:
			s.Medium++
		case SeverityLow:
			s.Low++
		}
	}
	return s
}
