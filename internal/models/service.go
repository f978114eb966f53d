package models

import "time"

// Service is a marketplace catalog item.
type Service struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        int64     `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ServiceRequestStatus string

const (
	ServiceRequestPending         ServiceRequestStatus = "pending"
	ServiceRequestAwaitingPayment ServiceRequestStatus = "awaiting_payment"
	ServiceRequestInProgress      ServiceRequestStatus = "in_progress"
	ServiceRequestCompleted       ServiceRequestStatus = "completed"
	ServiceRequestCancelled       ServiceRequestStatus = "cancelled"
)

var serviceRequestTransitions = map[ServiceRequestStatus][]ServiceRequestStatus{
	ServiceRequestPending:         {ServiceRequestAwaitingPayment, ServiceRequestCancelled},
	ServiceRequestAwaitingPayment: {ServiceRequestInProgress, ServiceRequestCancelled},
	ServiceRequestInProgress:      {ServiceRequestCompleted, ServiceRequestCancelled},
}

func (s ServiceRequestStatus) CanTransition(to ServiceRequestStatus) bool {
	for _, next := range serviceRequestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type ServiceRequest struct {
	ID        string               `json:"id"`
	ServiceID string               `json:"service_id"`
	ClientID  string               `json:"client_id"`
	Details   string               `json:"details,omitempty"`
	Status    ServiceRequestStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
