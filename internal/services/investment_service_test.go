package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

func TestInvestDebitsWalletAndRecordsLedger(t *testing.T) {
	e := newEnv(t)
	investor, w := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)

	inv, err := e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 200_000)
	require.NoError(t, err)
	assert.Equal(t, models.FundingWallet, inv.Source)
	assert.Equal(t, int64(200_000), inv.Amount)

	assert.Equal(t, int64(300_000), e.wallet(t, w.ID).Balance)
	assert.Equal(t, int64(200_000), e.project(t, p.ID).CurrentFunding)

	txns := e.transactions(t, w.ID)
	require.Len(t, txns, 1)
	assert.Equal(t, models.TxnInvestment, txns[0].Type)
	assert.Equal(t, int64(200_000), txns[0].Amount)
	assert.Equal(t, models.TxnCompleted, txns[0].Status)
}

func TestInvestReachingGoalFundsProject(t *testing.T) {
	e := newEnv(t)
	investor, w := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 800_000, 100_000)

	_, err := e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 200_000)
	require.NoError(t, err)

	got := e.project(t, p.ID)
	assert.Equal(t, models.ProjectFunded, got.Status)
	assert.Equal(t, int64(1_000_000), got.CurrentFunding)
	assert.Equal(t, int64(300_000), e.wallet(t, w.ID).Balance)
}

func TestInvestOvershootRejectedBeforeAnyMutation(t *testing.T) {
	e := newEnv(t)
	investor, w := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 900_000, 100_000)

	_, err := e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 200_000)
	require.Error(t, err)
	assert.Equal(t, apperr.InsufficientFunds, apperr.KindOf(err))

	assert.Equal(t, int64(500_000), e.wallet(t, w.ID).Balance)
	assert.Equal(t, int64(900_000), e.project(t, p.ID).CurrentFunding)
	assert.Empty(t, e.transactions(t, w.ID))
}

func TestInvestInsufficientBalance(t *testing.T) {
	e := newEnv(t)
	investor, w := e.investor(t, 150_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)

	_, err := e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 200_000)
	require.Error(t, err)
	assert.Equal(t, apperr.InsufficientFunds, apperr.KindOf(err))
	assert.Equal(t, int64(150_000), e.wallet(t, w.ID).Balance)
}

func TestInvestBelowMinimum(t *testing.T) {
	e := newEnv(t)
	investor, _ := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)

	_, err := e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 50_000)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestInvestRequiresVerifiedInvestor(t *testing.T) {
	e := newEnv(t)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)

	unverified := e.user(t, models.RoleInvestor, models.KYCPending)
	_, err := e.repos.Wallets.Create(e.ctx, models.Wallet{UserID: unverified.ID, Balance: 500_000})
	require.NoError(t, err)

	_, err = e.svc.Investments.Invest(e.ctx, unverified.ID, p.ID, 200_000)
	require.Error(t, err)
	assert.Equal(t, apperr.Unverified, apperr.KindOf(err))

	owner := e.owner(t)
	_, err = e.repos.Wallets.Create(e.ctx, models.Wallet{UserID: owner.ID, Balance: 500_000})
	require.NoError(t, err)

	_, err = e.svc.Investments.Invest(e.ctx, owner.ID, p.ID, 200_000)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestInvestRejectsInactiveProject(t *testing.T) {
	e := newEnv(t)
	investor, _ := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)
	p.Status = models.ProjectFunded
	require.NoError(t, e.repos.Projects.Update(e.ctx, p))

	_, err := e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 200_000)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidState, apperr.KindOf(err))
}

func TestInvestUnknownProject(t *testing.T) {
	e := newEnv(t)
	investor, _ := e.investor(t, 500_000)

	_, err := e.svc.Investments.Invest(e.ctx, investor.ID, "missing", 200_000)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestInvestDirectSkipsWalletAndLedger(t *testing.T) {
	e := newEnv(t)
	investor, w := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)

	inv, err := e.svc.Investments.InvestDirect(e.ctx, investor.ID, p.ID, 200_000)
	require.NoError(t, err)
	assert.Equal(t, models.FundingDirect, inv.Source)

	assert.Equal(t, int64(500_000), e.wallet(t, w.ID).Balance)
	assert.Empty(t, e.transactions(t, w.ID))
	assert.Equal(t, int64(200_000), e.project(t, p.ID).CurrentFunding)
}

func TestInvestDirectOptionalLedgerEntry(t *testing.T) {
	e := newEnv(t)
	e.svc.Investments.RecordDirectTxn = true
	investor, w := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)

	_, err := e.svc.Investments.InvestDirect(e.ctx, investor.ID, p.ID, 200_000)
	require.NoError(t, err)

	// ledger entry is informational only, balance stays put
	assert.Equal(t, int64(500_000), e.wallet(t, w.ID).Balance)
	txns := e.transactions(t, w.ID)
	require.Len(t, txns, 1)
	assert.Equal(t, models.TxnInvestment, txns[0].Type)
}

func TestInvestDirectWorksWithoutWallet(t *testing.T) {
	e := newEnv(t)
	investor := e.user(t, models.RoleInvestor, models.KYCVerified)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 0, 100_000)

	_, err := e.svc.Investments.InvestDirect(e.ctx, investor.ID, p.ID, 200_000)
	require.NoError(t, err)
	assert.Equal(t, int64(200_000), e.project(t, p.ID).CurrentFunding)
}

func TestListInvestments(t *testing.T) {
	e := newEnv(t)
	investor, _ := e.investor(t, 900_000)
	p := e.activeProject(t, e.owner(t).ID, 2_000_000, 0, 100_000)

	for i := 0; i < 3; i++ {
		_, err := e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 100_000)
		require.NoError(t, err)
	}

	byProject, err := e.svc.Investments.ListByProject(e.ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 3)

	byInvestor, err := e.svc.Investments.ListByInvestor(e.ctx, investor.ID)
	require.NoError(t, err)
	assert.Len(t, byInvestor, 3)
}
