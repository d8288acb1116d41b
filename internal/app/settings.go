package app

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

type SettingsView struct {
	WorkDays domain.WorkWeek
	// CustomWorkDays is false while the configured default applies.
	CustomWorkDays bool
	WeekStart      time.Weekday
	Location       string
	RotationIndex  int
}
