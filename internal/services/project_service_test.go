package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
	"github.com/ysalhi/tamwil-backend/internal/services"
)

func TestProjectLifecycle(t *testing.T) {
	e := newEnv(t)
	owner := e.owner(t)
	supervisor := e.user(t, models.RoleAdminSupervisor, models.KYCVerified)

	p, err := e.svc.Projects.Create(e.ctx, services.CreateProjectInput{
		OwnerID:           owner.ID,
		Title:             "Souss Argan Export",
		Description:       "Cold-press argan oil line in Agadir",
		FundingGoal:       1_000_000,
		MinimumInvestment: 100_000,
		EquityOffered:     12.5,
		Deadline:          time.Now().Add(60 * 24 * time.Hour),
		Milestones: []models.Milestone{
			{Position: 1, Title: "Press installed"},
			{Position: 2, Title: "First export batch"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectDraft, p.Status)

	p, err = e.svc.Projects.Submit(e.ctx, owner.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectPendingApproval, p.Status)

	p, err = e.svc.Admin.ApproveProject(e.ctx, supervisor.ID, p.ID, "solid plan", nil)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectActive, p.Status)
	require.NotNil(t, p.SupervisorID)
	assert.Equal(t, supervisor.ID, *p.SupervisorID)

	got, err := e.svc.Projects.Get(e.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Milestones, 2)
}

func TestProjectCreateValidation(t *testing.T) {
	e := newEnv(t)
	owner := e.owner(t)

	cases := []struct {
		name string
		in   services.CreateProjectInput
		kind apperr.Kind
	}{
		{"empty title", services.CreateProjectInput{OwnerID: owner.ID, FundingGoal: 100}, apperr.Validation},
		{"zero goal", services.CreateProjectInput{OwnerID: owner.ID, Title: "x", FundingGoal: 0}, apperr.Validation},
		{"minimum above goal", services.CreateProjectInput{OwnerID: owner.ID, Title: "x", FundingGoal: 100, MinimumInvestment: 200}, apperr.Validation},
		{"past deadline", services.CreateProjectInput{OwnerID: owner.ID, Title: "x", FundingGoal: 100, Deadline: time.Now().Add(-time.Hour)}, apperr.Validation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.svc.Projects.Create(e.ctx, tc.in)
			require.Error(t, err)
			assert.Equal(t, tc.kind, apperr.KindOf(err))
		})
	}
}

func TestProjectCreateRequiresVerifiedOwner(t *testing.T) {
	e := newEnv(t)
	in := services.CreateProjectInput{Title: "x", FundingGoal: 100_000}

	investor, _ := e.investor(t, 0)
	in.OwnerID = investor.ID
	_, err := e.svc.Projects.Create(e.ctx, in)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	unverified := e.user(t, models.RoleProjectOwner, models.KYCPending)
	in.OwnerID = unverified.ID
	_, err = e.svc.Projects.Create(e.ctx, in)
	require.Error(t, err)
	assert.Equal(t, apperr.Unverified, apperr.KindOf(err))
}

func TestProjectSubmitOwnerOnly(t *testing.T) {
	e := newEnv(t)
	owner := e.owner(t)
	stranger := e.owner(t)

	p, err := e.svc.Projects.Create(e.ctx, services.CreateProjectInput{
		OwnerID: owner.ID, Title: "Tangier Textiles", FundingGoal: 500_000,
	})
	require.NoError(t, err)

	_, err = e.svc.Projects.Submit(e.ctx, stranger.ID, p.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	// a submitted project cannot be submitted again
	_, err = e.svc.Projects.Submit(e.ctx, owner.ID, p.ID)
	require.NoError(t, err)
	_, err = e.svc.Projects.Submit(e.ctx, owner.ID, p.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))
}

func TestProjectRejectIsTerminal(t *testing.T) {
	e := newEnv(t)
	owner := e.owner(t)
	supervisor := e.user(t, models.RoleAdminSupervisor, models.KYCVerified)

	p, err := e.svc.Projects.Create(e.ctx, services.CreateProjectInput{
		OwnerID: owner.ID, Title: "Fes Leatherworks", FundingGoal: 500_000,
	})
	require.NoError(t, err)
	_, err = e.svc.Projects.Submit(e.ctx, owner.ID, p.ID)
	require.NoError(t, err)

	p, err = e.svc.Admin.RejectProject(e.ctx, supervisor.ID, p.ID, "incomplete budget")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectRejected, p.Status)
	assert.Equal(t, "incomplete budget", p.DecisionMessage)

	_, err = e.svc.Admin.ApproveProject(e.ctx, supervisor.ID, p.ID, "", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))
}

func TestMarkFailedRequiresPassedDeadline(t *testing.T) {
	e := newEnv(t)
	admin := e.user(t, models.RoleAdminSupervisor, models.KYCVerified)
	owner := e.owner(t)

	open := e.activeProject(t, owner.ID, 1_000_000, 100_000, 100_000)
	_, err := e.svc.Projects.MarkFailed(e.ctx, admin.ID, open.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))

	expired := e.activeProject(t, owner.ID, 1_000_000, 100_000, 100_000)
	expired.Deadline = time.Now().Add(-time.Hour)
	require.NoError(t, e.repos.Projects.Update(e.ctx, expired))

	got, err := e.svc.Projects.MarkFailed(e.ctx, admin.ID, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectFailed, got.Status)
}

func TestKYCTransitionTable(t *testing.T) {
	e := newEnv(t)
	admin := e.user(t, models.RoleAdminCompliance, models.KYCVerified)
	u := e.user(t, models.RoleInvestor, models.KYCPending)

	got, err := e.svc.Admin.UpdateUserKYC(e.ctx, admin.ID, u.ID, models.KYCRejected, "blurry id scan")
	require.NoError(t, err)
	assert.Equal(t, models.KYCRejected, got.KYCStatus)

	// rejected can only go back to pending
	_, err = e.svc.Admin.UpdateUserKYC(e.ctx, admin.ID, u.ID, models.KYCVerified, "")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))

	_, err = e.svc.Admin.UpdateUserKYC(e.ctx, admin.ID, u.ID, models.KYCPending, "resubmitted")
	require.NoError(t, err)
	got, err = e.svc.Admin.UpdateUserKYC(e.ctx, admin.ID, u.ID, models.KYCVerified, "")
	require.NoError(t, err)
	assert.Equal(t, models.KYCVerified, got.KYCStatus)

	// verified is terminal
	_, err = e.svc.Admin.UpdateUserKYC(e.ctx, admin.ID, u.ID, models.KYCPending, "")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))
}

func TestSettingsUpsert(t *testing.T) {
	e := newEnv(t)
	admin := e.user(t, models.RoleAdminContent, models.KYCVerified)

	require.NoError(t, e.svc.Admin.UpdateSetting(e.ctx, admin.ID, "platform_fee_bps", "250"))
	require.NoError(t, e.svc.Admin.UpdateSetting(e.ctx, admin.ID, "platform_fee_bps", "300"))

	err := e.svc.Admin.UpdateSetting(e.ctx, admin.ID, "", "x")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	all, err := e.svc.Admin.Settings(e.ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "300", all[0].Value)
	assert.Equal(t, admin.ID, all[0].UpdatedBy)
}
