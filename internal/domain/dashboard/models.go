// Package dashboard defines the organisation-wide daily summary served by the
// dashboard route module.
package dashboard

import "context"

// DashboardSummary counts today's attendance across all employees.
type DashboardSummary struct {
	Date           string `json:"date"`
	TotalEmployees int64  `json:"total_employees"`
	PresentToday   int64  `json:"present_today"`
	AbsentToday    int64  `json:"absent_today"`
	UnmarkedToday  int64  `json:"unmarked_today"`
}

// DashboardService computes dashboard figures.
type DashboardService interface {
	// Summary returns the figures for the current day in the configured timezone.
	Summary(ctx context.Context) (*DashboardSummary, error)
}
