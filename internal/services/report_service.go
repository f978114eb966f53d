package services

import (
	"context"
	"strings"
	"time"

	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

// ReportService handles project updates: owners submit, admins publish.
type ReportService struct {
	reports  repo.Reports
	projects repo.Projects
	audit    *auditor
}

func NewReportService(r repo.Reports, p repo.Projects, audit *auditor) *ReportService {
	return &ReportService{reports: r, projects: p, audit: audit}
}

func (s *ReportService) Submit(ctx context.Context, ownerID, projectID, title, content string) (models.Report, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Report{}, err
	}
	if project.OwnerID != ownerID {
		return models.Report{}, apperr.E(apperr.Unauthorized, "not the project owner")
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return models.Report{}, apperr.E(apperr.Validation, "title and content required")
	}
	rep, err := s.reports.Create(ctx, models.Report{
		ProjectID: projectID,
		AuthorID:  ownerID,
		Title:     title,
		Content:   content,
		Status:    models.ReportPending,
	})
	if err != nil {
		return models.Report{}, err
	}
	s.audit.log("report", rep.ID, ownerID, "submitted", title)
	return rep, nil
}

func (s *ReportService) Publish(ctx context.Context, adminID, id string) (models.Report, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return models.Report{}, err
	}
	if rep.Status != models.ReportPending {
		return models.Report{}, apperr.Errorf(apperr.InvalidState, "cannot publish report in status %s", rep.Status)
	}
	now := time.Now()
	rep.Status = models.ReportPublished
	rep.PublishedAt = &now
	if err := s.reports.Update(ctx, rep); err != nil {
		return models.Report{}, err
	}
	s.audit.log("report", id, adminID, "published", "")
	return rep, nil
}

func (s *ReportService) Reject(ctx context.Context, adminID, id string) (models.Report, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return models.Report{}, err
	}
	if rep.Status != models.ReportPending {
		return models.Report{}, apperr.Errorf(apperr.InvalidState, "cannot reject report in status %s", rep.Status)
	}
	rep.Status = models.ReportRejected
	if err := s.reports.Update(ctx, rep); err != nil {
		return models.Report{}, err
	}
	s.audit.log("report", id, adminID, "rejected", "")
	return rep, nil
}

func (s *ReportService) ListPublished(ctx context.Context, projectID string) ([]models.Report, error) {
	return s.reports.ListByProject(ctx, projectID, true)
}

func (s *ReportService) ListPending(ctx context.Context) ([]models.Report, error) {
	return s.reports.ListByStatus(ctx, models.ReportPending)
}
