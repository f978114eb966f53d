package services

import (
	"context"
	"strings"

	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

// MarketplaceService covers the service catalog and client requests against it.
type MarketplaceService struct {
	services repo.Services
	requests repo.ServiceRequests
	users    repo.Users
	audit    *auditor
}

func NewMarketplaceService(s repo.Services, r repo.ServiceRequests, u repo.Users, audit *auditor) *MarketplaceService {
	return &MarketplaceService{services: s, requests: r, users: u, audit: audit}
}

func (s *MarketplaceService) CreateService(ctx context.Context, adminID string, svc models.Service) (models.Service, error) {
	if strings.TrimSpace(svc.Title) == "" {
		return models.Service{}, apperr.E(apperr.Validation, "title required")
	}
	if svc.Price < 0 {
		return models.Service{}, apperr.E(apperr.Validation, "price must not be negative")
	}
	created, err := s.services.Create(ctx, svc)
	if err != nil {
		return models.Service{}, err
	}
	s.audit.log("service", created.ID, adminID, "created", created.Title)
	return created, nil
}

func (s *MarketplaceService) UpdateService(ctx context.Context, adminID string, svc models.Service) (models.Service, error) {
	if _, err := s.services.GetByID(ctx, svc.ID); err != nil {
		return models.Service{}, err
	}
	if err := s.services.Update(ctx, svc); err != nil {
		return models.Service{}, err
	}
	s.audit.log("service", svc.ID, adminID, "updated", "")
	return s.services.GetByID(ctx, svc.ID)
}

func (s *MarketplaceService) ListServices(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	return s.services.List(ctx, !includeInactive)
}

func (s *MarketplaceService) RequestService(ctx context.Context, clientID, serviceID, details string) (models.ServiceRequest, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	if !svc.Active {
		return models.ServiceRequest{}, apperr.E(apperr.InvalidState, "service is not available")
	}
	if _, err := s.users.GetByID(ctx, clientID); err != nil {
		return models.ServiceRequest{}, err
	}
	req, err := s.requests.Create(ctx, models.ServiceRequest{
		ServiceID: serviceID,
		ClientID:  clientID,
		Details:   details,
		Status:    models.ServiceRequestPending,
	})
	if err != nil {
		return models.ServiceRequest{}, err
	}
	s.audit.log("service_request", req.ID, clientID, "created", svc.Title)
	return req, nil
}

// AdvanceRequest moves a request along its lifecycle; the transition table
// rejects anything else (completed and cancelled are terminal).
func (s *MarketplaceService) AdvanceRequest(ctx context.Context, actorID, id string, to models.ServiceRequestStatus) (models.ServiceRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	if !req.Status.CanTransition(to) {
		return models.ServiceRequest{}, apperr.Errorf(apperr.InvalidState, "cannot move request from %s to %s", req.Status, to)
	}
	req.Status = to
	if err := s.requests.Update(ctx, req); err != nil {
		return models.ServiceRequest{}, err
	}
	s.audit.log("service_request", id, actorID, string(to), "")
	return req, nil
}

func (s *MarketplaceService) ListRequestsByClient(ctx context.Context, clientID string) ([]models.ServiceRequest, error) {
	return s.requests.ListByClient(ctx, clientID)
}
