package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestFormatHistory(t *testing.T) {
	resp := &app.HistoryResponse{
		From:    day(2025, time.February, 27),
		To:      day(2025, time.March, 12),
		Records: historyRecords(),
	}

	out := stripANSI(FormatHistory(resp, time.UTC))
	assert.Contains(t, out, "HISTORY FEB 27 TO MAR 12")
	assert.Contains(t, out, "Wed Mar 12")
	assert.Contains(t, out, "3 days answered")
}

func TestFormatHistory_Empty(t *testing.T) {
	resp := &app.HistoryResponse{From: day(2025, time.March, 6), To: day(2025, time.March, 12)}
	out := stripANSI(FormatHistory(resp, time.UTC))
	assert.Contains(t, out, "No check-ins recorded in this period.")
}

func TestHistoryTable_UsesLocationForTimes(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	out := stripANSI(HistoryTable(historyRecords()[:1], tokyo))
	assert.Contains(t, out, "03:00")
}
