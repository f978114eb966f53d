package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

func TestConcurrentInvestNeverOverdraws(t *testing.T) {
	e := newEnv(t)
	investor, w := e.investor(t, 300_000)
	p := e.activeProject(t, e.owner(t).ID, 10_000_000, 0, 100_000)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.svc.Investments.Invest(e.ctx, investor.ID, p.ID, 100_000)
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 3, ok)
	assert.Equal(t, int64(0), e.wallet(t, w.ID).Balance)
	assert.Equal(t, int64(300_000), e.project(t, p.ID).CurrentFunding)
	assert.Len(t, e.transactions(t, w.ID), 3)
}

func TestConcurrentInvestNeverOverfunds(t *testing.T) {
	e := newEnv(t)
	p := e.activeProject(t, e.owner(t).ID, 1_000_000, 800_000, 100_000)

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		investor, _ := e.investor(t, 100_000)
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, err := e.svc.Investments.Invest(e.ctx, id, p.ID, 100_000)
			errs[i] = err
		}(i, investor.ID)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 2, ok)

	got := e.project(t, p.ID)
	assert.Equal(t, int64(1_000_000), got.CurrentFunding)
	assert.Equal(t, models.ProjectFunded, got.Status)
}

func TestConcurrentUserUpdatesBothSurvive(t *testing.T) {
	e := newEnv(t)
	admin := e.user(t, models.RoleAdminCompliance, models.KYCVerified)

	for i := 0; i < 50; i++ {
		u := e.user(t, models.RoleInvestor, models.KYCPending)
		_, err := e.repos.Wallets.Create(e.ctx, models.Wallet{UserID: u.ID, Balance: 500_000})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, kerr := e.svc.Admin.UpdateUserKYC(e.ctx, admin.ID, u.ID, models.KYCVerified, "")
			assert.NoError(t, kerr)
		}()
		go func() {
			defer wg.Done()
			_, werr := e.svc.Wallets.RequestWithdrawal(e.ctx, u.ID, 100_000, testRIB, "CIH Bank")
			assert.NoError(t, werr)
		}()
		wg.Wait()

		got, err := e.repos.Users.GetByID(e.ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, models.KYCVerified, got.KYCStatus)
		require.NotNil(t, got.Bank)
		assert.Equal(t, testRIB, got.Bank.RIB)
	}
}

func TestConcurrentDeposits(t *testing.T) {
	e := newEnv(t)
	_, w := e.investor(t, 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.svc.Wallets.Deposit(e.ctx, w.ID, 50_000)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1_000_000), e.wallet(t, w.ID).Balance)
	assert.Len(t, e.transactions(t, w.ID), 20)
}
