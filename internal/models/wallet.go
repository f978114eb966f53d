package models

import "time"

// Wallet holds a user's internal balance in minor units (centimes, MAD).
// The balance must never go negative; services enforce that before any debit.
type Wallet struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Balance       int64     `json:"balance"`
	Currency      string    `json:"currency"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
