package workflow

// Frequency describes how often an activity recurs.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyOther   Frequency = "other"
)

// ParseFrequency maps free-form survey input onto the supported cadences.
// Anything unrecognised becomes FrequencyOther.
func ParseFrequency(s string) Frequency {
	switch s {
	case "daily":
		return FrequencyDaily
	case "weekly":
		return FrequencyWeekly
	case "monthly":
		return FrequencyMonthly
	case "":
		return FrequencyDaily
	default:
		return FrequencyOther
	}
}

// WeeklyFactor converts one occurrence's duration into hours per week:
// daily x5, weekly x1, monthly x0.25, other x1.
func (f Frequency) WeeklyFactor() float64 {
	switch f {
	case FrequencyDaily:
		return 5.0
	case FrequencyMonthly:
		return 0.25
	default:
		return 1.0
	}
}

// Default attributes applied when a survey record omits a field. Stub nodes
// created for dangling dependency ids carry exactly these values.
const (
	DefaultDepartment    = "unknown"
	DefaultOwner         = "unassigned"
	DefaultDurationHours = 1.0
)

// WorkflowNode is one recurring activity performed by one or more employees.
// Node ids are unique per company graph; re-ingesting the same activity name
// merges onto the existing node.
type WorkflowNode struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Department          string    `json:"department"`
	Owner               string    `json:"owner"`
	DurationHours       float64   `json:"duration_hours"`
	Frequency           Frequency `json:"frequency"`
	Dependencies        []string  `json:"dependencies,omitempty"`
	ToolsUsed           []string  `json:"tools_used,omitempty"`
	PainPoints          []string  `json:"pain_points,omitempty"`
	AutomationPotential float64   `json:"automation_potential"`
}

// WeeklyHours returns the frequency-normalised hours this activity consumes
// per week.
func (n *WorkflowNode) WeeklyHours() float64 {
	return n.DurationHours * n.Frequency.WeeklyFactor()
}

// Edge is a directed dependency: From must complete before To can start.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Activity is one reported daily activity from an employee survey. Every
// field except Name is optional; missing fields default per the constants
// above. The boolean flags feed the automation-potential score.
type Activity struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Department   string   `json:"department,omitempty"`
	Owner        string   `json:"owner,omitempty"`
	Duration     float64  `json:"duration,omitempty"`
	Frequency    string   `json:"frequency,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	PainPoints   []string `json:"pain_points,omitempty"`

	Repetitive       bool `json:"repetitive,omitempty"`
	Digital          bool `json:"digital,omitempty"`
	RuleBased        bool `json:"rule_based,omitempty"`
	RequiresJudgment bool `json:"requires_judgment,omitempty"`
	Creative         bool `json:"creative,omitempty"`
}

// PainPoint is a free-text complaint attached to an employee response.
type PainPoint struct {
	Description string  `json:"description"`
	Frequency   string  `json:"frequency,omitempty"`
	TimeWasted  float64 `json:"time_wasted,omitempty"`
	Suggestion  string  `json:"suggestion,omitempty"`
}

// EmployeeResponse is one employee's processed survey, as delivered by the
// questionnaire collaborator.
type EmployeeResponse struct {
	EmployeeID             string      `json:"employee_id" validate:"omitempty,max=128"`
	Department             string      `json:"department,omitempty"`
	Role                   string      `json:"role,omitempty"`
	DailyActivities        []Activity  `json:"daily_activities,omitempty" validate:"dive"`
	Collaborations         []string    `json:"collaborations,omitempty"`
	ToolsUsed              []string    `json:"tools_used,omitempty"`
	PainPoints             []PainPoint `json:"pain_points,omitempty"`
	ImprovementSuggestions []string    `json:"improvement_suggestions,omitempty"`
}
