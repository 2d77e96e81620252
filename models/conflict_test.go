package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank(t *testing.T) {
	assert.True(t, SeverityRank(SeverityHigh) < SeverityRank(SeverityMedium))
	assert.True(t, SeverityRank(SeverityMedium) < SeverityRank(SeverityLow))
	assert.True(t, SeverityRank(SeverityLow) < SeverityRank("unknown"))
}

func TestSummarize(t *testing.T) {
	conflicts := []ScheduleConflict{
		{Severity: SeverityHigh},
		{Severity: SeverityHigh},
		{Severity: SeverityMedium},
		{Severity: SeverityLow},
	}

	summary := Summarize(conflicts)
	assert.Equal(t, ConflictSummary{Total: 4, High: 2, Medium: 1, Low: 1}, summary)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, ConflictSummary{}, Summarize(nil))
}
