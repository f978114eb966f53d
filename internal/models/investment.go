package models

import "time"

type FundingSource string

const (
	FundingWallet FundingSource = "wallet"
	FundingDirect FundingSource = "direct"
)

// Investment is an immutable record of capital committed to a project.
type Investment struct {
	ID         string        `json:"id"`
	InvestorID string        `json:"investor_id"`
	ProjectID  string        `json:"project_id"`
	Amount     int64         `json:"amount"`
	Source     FundingSource `json:"source"`
	CreatedAt  time.Time     `json:"created_at"`
}
