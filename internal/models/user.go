package models

import (
	"errors"
	"strings"
	"time"
)

type Role string

const (
	RoleInvestor     Role = "investor"
	RoleProjectOwner Role = "project_owner"
	// admin sub-roles
	RoleAdminSupervisor Role = "admin_supervisor"
	RoleAdminFinance    Role = "admin_finance"
	RoleAdminCompliance Role = "admin_compliance"
	RoleAdminContent    Role = "admin_content"
)

func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdminSupervisor, RoleAdminFinance, RoleAdminCompliance, RoleAdminContent:
		return true
	}
	return false
}

type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// kycTransitions is the allowed-edges set for KYC review.
// rejected -> pending covers a resubmission.
var kycTransitions = map[KYCStatus][]KYCStatus{
	KYCPending:  {KYCVerified, KYCRejected},
	KYCRejected: {KYCPending},
}

func (s KYCStatus) CanTransition(to KYCStatus) bool {
	for _, next := range kycTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type BankInfo struct {
	RIB      string `json:"rib"`
	BankName string `json:"bank_name"`
}

type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	KYCStatus    KYCStatus `json:"kyc_status"`
	Bank         *BankInfo `json:"bank,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) Validate() error {
	if len(strings.TrimSpace(u.FullName)) < 3 {
		return errors.New("full name too short")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("invalid email")
	}
	if u.Role == "" {
		u.Role = RoleInvestor
	}
	if u.KYCStatus == "" {
		u.KYCStatus = KYCPending
	}
	return nil
}
