package services

import (
	"context"
	"strings"
	"time"

	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

type ProjectService struct {
	projects repo.Projects
	users    repo.Users
	locks    *keyedMutex
	audit    *auditor
}

func NewProjectService(p repo.Projects, u repo.Users, locks *keyedMutex, audit *auditor) *ProjectService {
	return &ProjectService{projects: p, users: u, locks: locks, audit: audit}
}

type CreateProjectInput struct {
	OwnerID           string
	Title             string
	Description       string
	FundingGoal       int64
	MinimumInvestment int64
	EquityOffered     float64
	Deadline          time.Time
	Milestones        []models.Milestone
}

func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (models.Project, error) {
	owner, err := s.users.GetByID(ctx, in.OwnerID)
	if err != nil {
		return models.Project{}, err
	}
	if owner.Role != models.RoleProjectOwner {
		return models.Project{}, apperr.E(apperr.Unauthorized, "only project owners can create projects")
	}
	if owner.KYCStatus != models.KYCVerified {
		return models.Project{}, apperr.E(apperr.Unverified, "identity verification required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return models.Project{}, apperr.E(apperr.Validation, "title required")
	}
	if in.FundingGoal <= 0 {
		return models.Project{}, apperr.E(apperr.Validation, "funding goal must be positive")
	}
	if in.MinimumInvestment < 0 || in.MinimumInvestment > in.FundingGoal {
		return models.Project{}, apperr.E(apperr.Validation, "invalid minimum investment")
	}
	if !in.Deadline.IsZero() && in.Deadline.Before(time.Now()) {
		return models.Project{}, apperr.E(apperr.Validation, "deadline is in the past")
	}

	project, err := s.projects.Create(ctx, models.Project{
		OwnerID:           in.OwnerID,
		Title:             in.Title,
		Description:       in.Description,
		FundingGoal:       in.FundingGoal,
		MinimumInvestment: in.MinimumInvestment,
		EquityOffered:     in.EquityOffered,
		Status:            models.ProjectDraft,
		StartDate:         time.Now(),
		Deadline:          in.Deadline,
	})
	if err != nil {
		return models.Project{}, err
	}
	if len(in.Milestones) > 0 {
		if err := s.projects.SaveMilestones(ctx, project.ID, in.Milestones); err != nil {
			return models.Project{}, err
		}
	}
	s.audit.log("project", project.ID, in.OwnerID, "created", "")
	return project, nil
}

// Submit moves an owner's draft into the approval queue.
func (s *ProjectService) Submit(ctx context.Context, ownerID, projectID string) (models.Project, error) {
	s.locks.Lock(projectKey(projectID))
	defer s.locks.Unlock(projectKey(projectID))

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if project.OwnerID != ownerID {
		return models.Project{}, apperr.E(apperr.Unauthorized, "not the project owner")
	}
	if !project.Status.CanTransition(models.ProjectPendingApproval) {
		return models.Project{}, apperr.Errorf(apperr.InvalidState, "cannot submit project in status %s", project.Status)
	}
	project.Status = models.ProjectPendingApproval
	if err := s.projects.Update(ctx, project); err != nil {
		return models.Project{}, err
	}
	s.audit.log("project", projectID, ownerID, "submitted", "")
	return project, nil
}

// MarkFailed closes an active project that passed its deadline short of the
// goal. Invoked from the admin surface; there is no background sweep.
func (s *ProjectService) MarkFailed(ctx context.Context, adminID, projectID string) (models.Project, error) {
	s.locks.Lock(projectKey(projectID))
	defer s.locks.Unlock(projectKey(projectID))

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !project.Status.CanTransition(models.ProjectFailed) {
		return models.Project{}, apperr.Errorf(apperr.InvalidState, "cannot fail project in status %s", project.Status)
	}
	if project.Deadline.After(time.Now()) {
		return models.Project{}, apperr.E(apperr.InvalidState, "project deadline has not passed")
	}
	project.Status = models.ProjectFailed
	if err := s.projects.Update(ctx, project); err != nil {
		return models.Project{}, err
	}
	s.audit.log("project", projectID, adminID, "failed", "deadline passed below goal")
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	ms, err := s.projects.Milestones(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	project.Milestones = ms
	return project, nil
}

func (s *ProjectService) ListActive(ctx context.Context) ([]models.Project, error) {
	return s.projects.ListByStatus(ctx, models.ProjectActive)
}

func (s *ProjectService) ListPendingApproval(ctx context.Context) ([]models.Project, error) {
	return s.projects.ListByStatus(ctx, models.ProjectPendingApproval)
}

func (s *ProjectService) ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	return s.projects.ListByOwner(ctx, ownerID)
}
