package services

import (
	"github.com/ysalhi/tamwil-backend/internal/auth"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
	"github.com/ysalhi/tamwil-backend/internal/worker"
)

type Repos struct {
	Users           repo.Users
	Wallets         repo.Wallets
	Transactions    repo.Transactions
	Projects        repo.Projects
	Investments     repo.Investments
	Withdrawals     repo.Withdrawals
	Services        repo.Services
	ServiceRequests repo.ServiceRequests
	Reports         repo.Reports
	Settings        repo.Settings
	AuditLogs       repo.AuditLogs
}

type Deps struct {
	Users       *UserService
	Wallets     *WalletService
	Investments *InvestmentService
	Withdrawals *WithdrawalService
	Projects    *ProjectService
	Admin       *AdminService
	Marketplace *MarketplaceService
	Reports     *ReportService
}

// Build wires every service over one keyed mutex and one auditor so all
// wallet and project critical sections are shared across services.
func Build(r Repos, wp *worker.Pool, tm *auth.TokenManager) Deps {
	locks := newKeyedMutex()
	audit := newAuditor(r.AuditLogs, wp)

	return Deps{
		Users:       NewUserService(r.Users, r.Wallets, tm),
		Wallets:     NewWalletService(r.Wallets, r.Transactions, r.Withdrawals, r.Users, locks, audit),
		Investments: NewInvestmentService(r.Investments, r.Projects, r.Users, r.Wallets, r.Transactions, locks, audit),
		Withdrawals: NewWithdrawalService(r.Withdrawals, r.Wallets, r.Transactions, locks, audit),
		Projects:    NewProjectService(r.Projects, r.Users, locks, audit),
		Admin:       NewAdminService(r.Users, r.Projects, r.Settings, locks, audit),
		Marketplace: NewMarketplaceService(r.Services, r.ServiceRequests, r.Users, audit),
		Reports:     NewReportService(r.Reports, r.Projects, audit),
	}
}
