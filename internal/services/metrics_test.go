package services_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/metrics"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

func txnCount(typ models.TransactionType) float64 {
	return testutil.ToFloat64(metrics.TransactionsTotal.WithLabelValues(string(typ)))
}

// Every ledger write bumps the transactions counter, one per type.
func TestLedgerCounterTracksEveryWrite(t *testing.T) {
	e := newEnv(t)
	admin := e.user(t, models.RoleAdminFinance, models.KYCVerified)
	investor, w := e.investor(t, 500_000)
	p := e.activeProject(t, e.owner(t).ID, 10_000_000, 0, 100_000)

	before := map[models.TransactionType]float64{
		models.TxnDeposit:    txnCount(models.TxnDeposit),
		models.TxnInvestment: txnCount(models.TxnInvestment),
		models.TxnRefund:     txnCount(models.TxnRefund),
		models.TxnWithdrawal: txnCount(models.TxnWithdrawal),
	}

	_, err := e.svc.Wallets.Deposit(e.ctx, w.ID, 100_000)
	require.NoError(t, err)

	_, err = e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 100_000)
	require.NoError(t, err)

	rejected, err := e.svc.Wallets.RequestWithdrawal(e.ctx, investor.ID, 100_000, testRIB, "BMCE")
	require.NoError(t, err)
	_, err = e.svc.Withdrawals.Reject(e.ctx, rejected.ID, admin.ID, "")
	require.NoError(t, err)

	paid, err := e.svc.Wallets.RequestWithdrawal(e.ctx, investor.ID, 100_000, testRIB, "BMCE")
	require.NoError(t, err)
	_, err = e.svc.Withdrawals.Approve(e.ctx, paid.ID, admin.ID, "")
	require.NoError(t, err)
	_, err = e.svc.Withdrawals.Complete(e.ctx, paid.ID, admin.ID)
	require.NoError(t, err)

	for _, typ := range []models.TransactionType{
		models.TxnDeposit,
		models.TxnInvestment,
		models.TxnRefund,
		models.TxnWithdrawal,
	} {
		assert.Equal(t, 1.0, txnCount(typ)-before[typ], string(typ))
	}
}
