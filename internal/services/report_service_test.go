package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

func TestReportSubmitAndPublish(t *testing.T) {
	e := newEnv(t)
	owner := e.owner(t)
	admin := e.user(t, models.RoleAdminSupervisor, models.KYCVerified)
	p := e.activeProject(t, owner.ID, 1_000_000, 0, 100_000)

	rep, err := e.svc.Reports.Submit(e.ctx, owner.ID, p.ID, "Q3 progress", "press line running at 60% capacity")
	require.NoError(t, err)
	assert.Equal(t, models.ReportPending, rep.Status)

	// pending reports are not public
	pub, err := e.svc.Reports.ListPublished(e.ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, pub)

	rep, err = e.svc.Reports.Publish(e.ctx, admin.ID, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportPublished, rep.Status)
	assert.NotNil(t, rep.PublishedAt)

	pub, err = e.svc.Reports.ListPublished(e.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, pub, 1)

	// publish is pending-only
	_, err = e.svc.Reports.Publish(e.ctx, admin.ID, rep.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))
}

func TestReportSubmitOwnerOnly(t *testing.T) {
	e := newEnv(t)
	owner := e.owner(t)
	stranger := e.owner(t)
	p := e.activeProject(t, owner.ID, 1_000_000, 0, 100_000)

	_, err := e.svc.Reports.Submit(e.ctx, stranger.ID, p.ID, "t", "c")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	_, err = e.svc.Reports.Submit(e.ctx, owner.ID, p.ID, "", "c")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestReportReject(t *testing.T) {
	e := newEnv(t)
	owner := e.owner(t)
	admin := e.user(t, models.RoleAdminSupervisor, models.KYCVerified)
	p := e.activeProject(t, owner.ID, 1_000_000, 0, 100_000)

	rep, err := e.svc.Reports.Submit(e.ctx, owner.ID, p.ID, "t", "c")
	require.NoError(t, err)

	rep, err = e.svc.Reports.Reject(e.ctx, admin.ID, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportRejected, rep.Status)

	_, err = e.svc.Reports.Publish(e.ctx, admin.ID, rep.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))

	pending, err := e.svc.Reports.ListPending(e.ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
