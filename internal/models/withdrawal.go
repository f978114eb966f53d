package models

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalRejected  WithdrawalStatus = "rejected"
	WithdrawalCompleted WithdrawalStatus = "completed"
)

// rejected and completed are terminal.
var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:  {WithdrawalApproved, WithdrawalRejected},
	WithdrawalApproved: {WithdrawalCompleted},
}

func (s WithdrawalStatus) CanTransition(to WithdrawalStatus) bool {
	for _, next := range withdrawalTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// WithdrawalRequest freezes funds at creation: the wallet is debited when
// the request is made, refunded on rejection, and the ledger entry is only
// written on completion.
type WithdrawalRequest struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	WalletID     string           `json:"wallet_id"`
	Amount       int64            `json:"amount"`
	RIB          string           `json:"rib"`
	BankName     string           `json:"bank_name"`
	Status       WithdrawalStatus `json:"status"`
	AdminNote    string           `json:"admin_note,omitempty"`
	DecidedBy    *string          `json:"decided_by,omitempty"`
	RequestedAt  time.Time        `json:"requested_at"`
	DecisionDate *time.Time       `json:"decision_date,omitempty"`
}
