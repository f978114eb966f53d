package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

func TestDepositCreditsBalanceAndLedger(t *testing.T) {
	e := newEnv(t)
	_, w := e.investor(t, 0)

	txn, err := e.svc.Wallets.Deposit(e.ctx, w.ID, 500_000)
	require.NoError(t, err)
	assert.Equal(t, models.TxnDeposit, txn.Type)
	assert.Equal(t, models.TxnCompleted, txn.Status)

	assert.Equal(t, int64(500_000), e.wallet(t, w.ID).Balance)
	require.Len(t, e.transactions(t, w.ID), 1)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	e := newEnv(t)
	_, w := e.investor(t, 0)

	for _, amount := range []int64{0, -100} {
		_, err := e.svc.Wallets.Deposit(e.ctx, w.ID, amount)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
	assert.Empty(t, e.transactions(t, w.ID))
}

func TestDepositUnknownWallet(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.Wallets.Deposit(e.ctx, "missing", 100_000)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestRequestWithdrawalFreezesAmount(t *testing.T) {
	e := newEnv(t)
	u, w := e.investor(t, 500_000)

	req, err := e.svc.Wallets.RequestWithdrawal(e.ctx, u.ID, 200_000, testRIB, "Attijariwafa Bank")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, req.Status)
	assert.Equal(t, int64(200_000), req.Amount)

	// debited immediately, no ledger entry until the request settles
	assert.Equal(t, int64(300_000), e.wallet(t, w.ID).Balance)
	assert.Empty(t, e.transactions(t, w.ID))
}

func TestRequestWithdrawalInsufficientBalance(t *testing.T) {
	e := newEnv(t)
	u, w := e.investor(t, 100_000)

	_, err := e.svc.Wallets.RequestWithdrawal(e.ctx, u.ID, 200_000, testRIB, "BMCE")
	require.Error(t, err)
	assert.Equal(t, apperr.InsufficientFunds, apperr.KindOf(err))
	assert.Equal(t, int64(100_000), e.wallet(t, w.ID).Balance)
}

func TestRequestWithdrawalRejectsBadRIB(t *testing.T) {
	e := newEnv(t)
	u, _ := e.investor(t, 500_000)

	for _, rib := range []string{"", "12345", "00781000012345678901234X"} {
		_, err := e.svc.Wallets.RequestWithdrawal(e.ctx, u.ID, 100_000, rib, "BMCE")
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
}

func TestRequestWithdrawalUpdatesBankInfo(t *testing.T) {
	e := newEnv(t)
	u, _ := e.investor(t, 500_000)

	_, err := e.svc.Wallets.RequestWithdrawal(e.ctx, u.ID, 100_000, testRIB, "CIH Bank")
	require.NoError(t, err)

	got, err := e.repos.Users.GetByID(e.ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Bank)
	assert.Equal(t, testRIB, got.Bank.RIB)
	assert.Equal(t, "CIH Bank", got.Bank.BankName)
}

func TestWalletTransactionsDefaultLimit(t *testing.T) {
	e := newEnv(t)
	_, w := e.investor(t, 0)
	_, err := e.svc.Wallets.Deposit(e.ctx, w.ID, 100_000)
	require.NoError(t, err)

	txns, err := e.svc.Wallets.Transactions(e.ctx, w.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}
