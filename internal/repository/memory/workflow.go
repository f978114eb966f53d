package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type withdrawalsRepo struct{ s *store }

func (r *withdrawalsRepo) Create(_ context.Context, w models.WithdrawalRequest) (models.WithdrawalRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.RequestedAt.IsZero() {
		w.RequestedAt = time.Now()
	}
	r.s.withdrawals[w.ID] = w
	return w, nil
}

func (r *withdrawalsRepo) GetByID(_ context.Context, id string) (models.WithdrawalRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.withdrawals[id]
	if !ok {
		return models.WithdrawalRequest{}, apperr.E(apperr.NotFound, "withdrawal request not found")
	}
	return w, nil
}

func (r *withdrawalsRepo) ListByUser(_ context.Context, userID string) ([]models.WithdrawalRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.WithdrawalRequest
	for _, w := range r.s.withdrawals {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	return out, nil
}

func (r *withdrawalsRepo) ListByStatus(_ context.Context, status models.WithdrawalStatus) ([]models.WithdrawalRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.WithdrawalRequest
	for _, w := range r.s.withdrawals {
		if w.Status == status {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	return out, nil
}

func (r *withdrawalsRepo) Update(_ context.Context, w models.WithdrawalRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.withdrawals[w.ID]; !ok {
		return apperr.E(apperr.NotFound, "withdrawal request not found")
	}
	r.s.withdrawals[w.ID] = w
	return nil
}

type servicesRepo struct{ s *store }

func (r *servicesRepo) Create(_ context.Context, svc models.Service) (models.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	now := time.Now()
	svc.CreatedAt, svc.UpdatedAt = now, now
	r.s.services[svc.ID] = svc
	return svc, nil
}

func (r *servicesRepo) GetByID(_ context.Context, id string) (models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	svc, ok := r.s.services[id]
	if !ok {
		return models.Service{}, apperr.E(apperr.NotFound, "service not found")
	}
	return svc, nil
}

func (r *servicesRepo) List(_ context.Context, activeOnly bool) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Service
	for _, svc := range r.s.services {
		if activeOnly && !svc.Active {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *servicesRepo) Update(_ context.Context, svc models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.services[svc.ID]; !ok {
		return apperr.E(apperr.NotFound, "service not found")
	}
	svc.UpdatedAt = time.Now()
	r.s.services[svc.ID] = svc
	return nil
}

type serviceRequestsRepo struct{ s *store }

func (r *serviceRequestsRepo) Create(_ context.Context, req models.ServiceRequest) (models.ServiceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now()
	req.CreatedAt, req.UpdatedAt = now, now
	r.s.serviceReqs[req.ID] = req
	return req, nil
}

func (r *serviceRequestsRepo) GetByID(_ context.Context, id string) (models.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	req, ok := r.s.serviceReqs[id]
	if !ok {
		return models.ServiceRequest{}, apperr.E(apperr.NotFound, "service request not found")
	}
	return req, nil
}

func (r *serviceRequestsRepo) ListByClient(_ context.Context, clientID string) ([]models.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.ServiceRequest
	for _, req := range r.s.serviceReqs {
		if req.ClientID == clientID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *serviceRequestsRepo) Update(_ context.Context, req models.ServiceRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.serviceReqs[req.ID]; !ok {
		return apperr.E(apperr.NotFound, "service request not found")
	}
	req.UpdatedAt = time.Now()
	r.s.serviceReqs[req.ID] = req
	return nil
}

type reportsRepo struct{ s *store }

func (r *reportsRepo) Create(_ context.Context, rep models.Report) (models.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now()
	}
	r.s.reports[rep.ID] = rep
	return rep, nil
}

func (r *reportsRepo) GetByID(_ context.Context, id string) (models.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rep, ok := r.s.reports[id]
	if !ok {
		return models.Report{}, apperr.E(apperr.NotFound, "report not found")
	}
	return rep, nil
}

func (r *reportsRepo) ListByProject(_ context.Context, projectID string, publishedOnly bool) ([]models.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Report
	for _, rep := range r.s.reports {
		if rep.ProjectID != projectID {
			continue
		}
		if publishedOnly && rep.Status != models.ReportPublished {
			continue
		}
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *reportsRepo) ListByStatus(_ context.Context, status models.ReportStatus) ([]models.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Report
	for _, rep := range r.s.reports {
		if rep.Status == status {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *reportsRepo) Update(_ context.Context, rep models.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reports[rep.ID]; !ok {
		return apperr.E(apperr.NotFound, "report not found")
	}
	r.s.reports[rep.ID] = rep
	return nil
}

type settingsRepo struct{ s *store }

func (r *settingsRepo) Get(_ context.Context, key string) (models.Setting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	set, ok := r.s.settings[key]
	if !ok {
		return models.Setting{}, apperr.E(apperr.NotFound, "setting not found")
	}
	return set, nil
}

func (r *settingsRepo) List(_ context.Context) ([]models.Setting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Setting, 0, len(r.s.settings))
	for _, set := range r.s.settings {
		out = append(out, set)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (r *settingsRepo) Upsert(_ context.Context, set models.Setting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	set.UpdatedAt = time.Now()
	r.s.settings[set.Key] = set
	return nil
}

type auditLogsRepo struct{ s *store }

func (r *auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	r.s.auditLogs = append(r.s.auditLogs, l)
	return nil
}
