package services

import (
	"context"
	"time"

	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

// AdminService holds the privileged state-transition operations: KYC review,
// project approval, and site settings. Every transition is checked against
// the entity's allowed-edges table.
type AdminService struct {
	users    repo.Users
	projects repo.Projects
	settings repo.Settings
	locks    *keyedMutex
	audit    *auditor
}

func NewAdminService(u repo.Users, p repo.Projects, s repo.Settings, locks *keyedMutex, audit *auditor) *AdminService {
	return &AdminService{users: u, projects: p, settings: s, locks: locks, audit: audit}
}

// UpdateUserKYC holds the user lock across the read-modify-write so a
// concurrent bank-info upsert on the same record is not lost.
func (s *AdminService) UpdateUserKYC(ctx context.Context, adminID, userID string, status models.KYCStatus, note string) (models.User, error) {
	s.locks.Lock(userKey(userID))
	defer s.locks.Unlock(userKey(userID))

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !user.KYCStatus.CanTransition(status) {
		return models.User{}, apperr.Errorf(apperr.InvalidState, "cannot move kyc from %s to %s", user.KYCStatus, status)
	}
	user.KYCStatus = status
	if err := s.users.Update(ctx, user); err != nil {
		return models.User{}, err
	}
	s.audit.log("user", userID, adminID, "kyc_"+string(status), note)
	return user, nil
}

func (s *AdminService) ApproveProject(ctx context.Context, adminID, projectID, message string, equityOffered *float64) (models.Project, error) {
	return s.decideProject(ctx, adminID, projectID, models.ProjectActive, message, equityOffered)
}

func (s *AdminService) RejectProject(ctx context.Context, adminID, projectID, message string) (models.Project, error) {
	return s.decideProject(ctx, adminID, projectID, models.ProjectRejected, message, nil)
}

func (s *AdminService) decideProject(ctx context.Context, adminID, projectID string, to models.ProjectStatus, message string, equityOffered *float64) (models.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !project.Status.CanTransition(to) {
		return models.Project{}, apperr.Errorf(apperr.InvalidState, "cannot move project from %s to %s", project.Status, to)
	}
	project.Status = to
	project.SupervisorID = &adminID
	project.DecisionMessage = message
	if equityOffered != nil {
		project.EquityOffered = *equityOffered
	}
	if to == models.ProjectActive && project.StartDate.IsZero() {
		project.StartDate = time.Now()
	}
	if err := s.projects.Update(ctx, project); err != nil {
		return models.Project{}, err
	}
	s.audit.log("project", projectID, adminID, string(to), message)
	return project, nil
}

func (s *AdminService) Settings(ctx context.Context) ([]models.Setting, error) {
	return s.settings.List(ctx)
}

func (s *AdminService) UpdateSetting(ctx context.Context, adminID, key, value string) error {
	if key == "" {
		return apperr.E(apperr.Validation, "setting key required")
	}
	if err := s.settings.Upsert(ctx, models.Setting{Key: key, Value: value, UpdatedBy: adminID}); err != nil {
		return err
	}
	s.audit.log("setting", key, adminID, "updated", value)
	return nil
}
