package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/auth"
	"github.com/ysalhi/tamwil-backend/internal/models"
	"github.com/ysalhi/tamwil-backend/internal/repository/memory"
	"github.com/ysalhi/tamwil-backend/internal/services"
	"github.com/ysalhi/tamwil-backend/internal/worker"
)

type env struct {
	ctx   context.Context
	repos memory.Repositories
	svc   services.Deps
}

func newEnv(t *testing.T) *env {
	t.Helper()
	repos := memory.New()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	tm := auth.NewTokenManager("test-access", "test-refresh", time.Minute, time.Hour)
	svc := services.Build(services.Repos{
		Users:           repos.Users,
		Wallets:         repos.Wallets,
		Transactions:    repos.Transactions,
		Projects:        repos.Projects,
		Investments:     repos.Investments,
		Withdrawals:     repos.Withdrawals,
		Services:        repos.Services,
		ServiceRequests: repos.ServiceRequests,
		Reports:         repos.Reports,
		Settings:        repos.Settings,
		AuditLogs:       repos.AuditLogs,
	}, wp, tm)
	return &env{ctx: context.Background(), repos: repos, svc: svc}
}

const testRIB = "007810000123456789012345"

func (e *env) user(t *testing.T, role models.Role, kyc models.KYCStatus) models.User {
	t.Helper()
	u, err := e.repos.Users.Create(e.ctx, models.User{
		FullName:  "Test User",
		Email:     uniqueEmail(),
		Role:      role,
		KYCStatus: kyc,
	})
	require.NoError(t, err)
	return u
}

var emailSeq atomic.Int64

func uniqueEmail() string {
	return fmt.Sprintf("user%d@example.ma", emailSeq.Add(1))
}

// investor creates a verified investor with a funded wallet.
func (e *env) investor(t *testing.T, balance int64) (models.User, models.Wallet) {
	t.Helper()
	u := e.user(t, models.RoleInvestor, models.KYCVerified)
	w, err := e.repos.Wallets.Create(e.ctx, models.Wallet{UserID: u.ID, Balance: balance})
	require.NoError(t, err)
	return u, w
}

func (e *env) owner(t *testing.T) models.User {
	t.Helper()
	return e.user(t, models.RoleProjectOwner, models.KYCVerified)
}

func (e *env) activeProject(t *testing.T, ownerID string, goal, current, min int64) models.Project {
	t.Helper()
	p, err := e.repos.Projects.Create(e.ctx, models.Project{
		OwnerID:           ownerID,
		Title:             "Atlas Olive Cooperative",
		FundingGoal:       goal,
		CurrentFunding:    current,
		MinimumInvestment: min,
		Status:            models.ProjectActive,
		StartDate:         time.Now().Add(-24 * time.Hour),
		Deadline:          time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return p
}

func (e *env) wallet(t *testing.T, id string) models.Wallet {
	t.Helper()
	w, err := e.repos.Wallets.GetByID(e.ctx, id)
	require.NoError(t, err)
	return w
}

func (e *env) project(t *testing.T, id string) models.Project {
	t.Helper()
	p, err := e.repos.Projects.GetByID(e.ctx, id)
	require.NoError(t, err)
	return p
}

func (e *env) transactions(t *testing.T, walletID string) []models.Transaction {
	t.Helper()
	txns, err := e.repos.Transactions.ListByWallet(e.ctx, walletID, 100, 0)
	require.NoError(t, err)
	return txns
}
