package validation

import (
	"fmt"

	"github.com/flowlens/flowlens/pkg/workflow"
)

// CheckResponse inspects one employee response and returns advisory
// warnings. Ingestion never rejects malformed records (every field has a
// documented default), so these warnings exist only for the caller's logs.
func CheckResponse(resp workflow.EmployeeResponse) []string {
	warnings := make([]string, 0)

	if resp.EmployeeID == "" {
		warnings = append(warnings, "response has no employee_id")
	}
	if resp.Department == "" {
		warnings = append(warnings, "response has no department; activities default to \"unknown\"")
	}

	for i, activity := range resp.DailyActivities {
		if activity.Name == "" {
			warnings = append(warnings, fmt.Sprintf("activity %d has no name and will be skipped", i))
			continue
		}
		if activity.Duration < 0 {
			warnings = append(warnings, fmt.Sprintf("activity %q has negative duration; default applies", activity.Name))
		}
		switch activity.Frequency {
		case "", "daily", "weekly", "monthly":
		default:
			warnings = append(warnings, fmt.Sprintf("activity %q has unrecognised frequency %q; treated as \"other\"", activity.Name, activity.Frequency))
		}
		if activity.RequiresJudgment && activity.RuleBased {
			warnings = append(warnings, fmt.Sprintf("activity %q flagged both rule-based and judgment-based", activity.Name))
		}
	}

	return warnings
}
