package services

import (
	"context"
	"log/slog"

	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
	"github.com/ysalhi/tamwil-backend/internal/worker"
)

// auditor writes audit entries off the request path through the worker pool.
type auditor struct {
	logs repo.AuditLogs
	wp   *worker.Pool
}

func newAuditor(logs repo.AuditLogs, wp *worker.Pool) *auditor {
	return &auditor{logs: logs, wp: wp}
}

func (a *auditor) log(entityType, entityID, actorID, action, message string) {
	l := models.AuditLog{
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
	}
	if actorID != "" {
		l.ActorID = &actorID
	}
	if message != "" {
		l.Details = map[string]any{"message": message}
	}
	a.wp.Submit(func() {
		if err := a.logs.Create(context.Background(), l); err != nil {
			slog.Error("audit log write", "entity", entityType, "action", action, "err", err)
		}
	})
}
