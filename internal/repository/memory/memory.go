// Package memory implements the repository interfaces on plain maps.
// It backs the service tests and local development without Postgres.
package memory

import (
	"sync"

	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

type store struct {
	mu           sync.RWMutex
	users        map[string]models.User
	wallets      map[string]models.Wallet
	transactions map[string]models.Transaction
	projects     map[string]models.Project
	milestones   map[string][]models.Milestone
	investments  map[string]models.Investment
	withdrawals  map[string]models.WithdrawalRequest
	services     map[string]models.Service
	serviceReqs  map[string]models.ServiceRequest
	reports      map[string]models.Report
	settings     map[string]models.Setting
	auditLogs    []models.AuditLog
}

type Repositories struct {
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

func New() Repositories {
	s := &store{
		users:        map[string]models.User{},
		wallets:      map[string]models.Wallet{},
		transactions: map[string]models.Transaction{},
		projects:     map[string]models.Project{},
		milestones:   map[string][]models.Milestone{},
		investments:  map[string]models.Investment{},
		withdrawals:  map[string]models.WithdrawalRequest{},
		services:     map[string]models.Service{},
		serviceReqs:  map[string]models.ServiceRequest{},
		reports:      map[string]models.Report{},
		settings:     map[string]models.Setting{},
	}
	return Repositories{
		Users:           &usersRepo{s},
		Wallets:         &walletsRepo{s},
		Transactions:    &transactionsRepo{s},
		Projects:        &projectsRepo{s},
		Investments:     &investmentsRepo{s},
		Withdrawals:     &withdrawalsRepo{s},
		Services:        &servicesRepo{s},
		ServiceRequests: &serviceRequestsRepo{s},
		Reports:         &reportsRepo{s},
		Settings:        &settingsRepo{s},
		AuditLogs:       &auditLogsRepo{s},
	}
}
