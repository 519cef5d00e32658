package analysis

import (
	"time"
)

const (
	updateFrequency     = "monthly"
	updateMethod        = "progressive"
	updateIntervalDays  = 30
	departmentsPerMonth = 2
	reminderDaysBefore  = 3
)

// NewUpdateSchedule returns the static re-survey schedule for a company.
// Updates are progressive: two departments rotate through the survey each
// month instead of resurveying everyone at once.
func NewUpdateSchedule(companyID string, now time.Time) UpdateSchedule {
	return UpdateSchedule{
		CompanyID:           companyID,
		Frequency:           updateFrequency,
		NextUpdate:          now.Add(updateIntervalDays * 24 * time.Hour),
		UpdateMethod:        updateMethod,
		DepartmentsPerMonth: departmentsPerMonth,
		Notifications: NotificationSettings{
			EmailReminder: true,
			DaysBefore:    reminderDaysBefore,
		},
	}
}
