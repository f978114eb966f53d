package models

import "time"

type ProjectStatus string

const (
	ProjectDraft           ProjectStatus = "draft"
	ProjectPendingApproval ProjectStatus = "pending_approval"
	ProjectActive          ProjectStatus = "active"
	ProjectRejected        ProjectStatus = "rejected"
	ProjectFunded          ProjectStatus = "funded"
	ProjectCompleted       ProjectStatus = "completed"
	ProjectFailed          ProjectStatus = "failed"
)

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectDraft:           {ProjectPendingApproval},
	ProjectPendingApproval: {ProjectActive, ProjectRejected},
	ProjectActive:          {ProjectFunded, ProjectFailed},
	ProjectFunded:          {ProjectCompleted},
}

func (s ProjectStatus) CanTransition(to ProjectStatus) bool {
	for _, next := range projectTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Milestone is one roadmap entry, ordered by Position.
type Milestone struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Position    int        `json:"position"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Done        bool       `json:"done"`
}

type Project struct {
	ID                string        `json:"id"`
	OwnerID           string        `json:"owner_id"`
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	FundingGoal       int64         `json:"funding_goal"`
	CurrentFunding    int64         `json:"current_funding"`
	MinimumInvestment int64         `json:"minimum_investment"`
	EquityOffered     float64       `json:"equity_offered"`
	Status            ProjectStatus `json:"status"`
	StartDate         time.Time     `json:"start_date"`
	Deadline          time.Time     `json:"deadline"`
	SupervisorID      *string       `json:"supervisor_id,omitempty"`
	DecisionMessage   string        `json:"decision_message,omitempty"`
	Milestones        []Milestone   `json:"milestones,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Headroom is the amount the project can still accept before the goal.
func (p *Project) Headroom() int64 { return p.FundingGoal - p.CurrentFunding }
