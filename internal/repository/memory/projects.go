package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type projectsRepo struct{ s *store }

func (r *projectsRepo) Create(_ context.Context, p models.Project) (models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.projects[p.ID] = p
	return p, nil
}

func (r *projectsRepo) GetByID(_ context.Context, id string) (models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return models.Project{}, apperr.E(apperr.NotFound, "project not found")
	}
	return p, nil
}

func (r *projectsRepo) ListByStatus(_ context.Context, status models.ProjectStatus) ([]models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Project
	for _, p := range r.s.projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *projectsRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Project
	for _, p := range r.s.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *projectsRepo) Update(_ context.Context, p models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[p.ID]; !ok {
		return apperr.E(apperr.NotFound, "project not found")
	}
	p.UpdatedAt = time.Now()
	r.s.projects[p.ID] = p
	return nil
}

func (r *projectsRepo) Milestones(_ context.Context, projectID string) ([]models.Milestone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ms := r.s.milestones[projectID]
	out := make([]models.Milestone, len(ms))
	copy(out, ms)
	return out, nil
}

func (r *projectsRepo) SaveMilestones(_ context.Context, projectID string, ms []models.Milestone) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range ms {
		if ms[i].ID == "" {
			ms[i].ID = uuid.NewString()
		}
		ms[i].ProjectID = projectID
		ms[i].Position = i
	}
	r.s.milestones[projectID] = ms
	return nil
}

type investmentsRepo struct{ s *store }

func (r *investmentsRepo) Create(_ context.Context, inv models.Investment) (models.Investment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	r.s.investments[inv.ID] = inv
	return inv, nil
}

func (r *investmentsRepo) ListByProject(_ context.Context, projectID string) ([]models.Investment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Investment
	for _, inv := range r.s.investments {
		if inv.ProjectID == projectID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *investmentsRepo) ListByInvestor(_ context.Context, investorID string) ([]models.Investment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Investment
	for _, inv := range r.s.investments {
		if inv.InvestorID == investorID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
