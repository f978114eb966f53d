package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

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

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:           &usersRepo{pool},
		Wallets:         &walletsRepo{pool},
		Transactions:    &transactionsRepo{pool},
		Projects:        &projectsRepo{pool},
		Investments:     &investmentsRepo{pool},
		Withdrawals:     &withdrawalsRepo{pool},
		Services:        &servicesRepo{pool},
		ServiceRequests: &serviceRequestsRepo{pool},
		Reports:         &reportsRepo{pool},
		Settings:        &settingsRepo{pool},
		AuditLogs:       &auditLogsRepo{pool},
	}
}

// notFound maps pgx.ErrNoRows to the service-level error taxonomy.
func notFound(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.E(apperr.NotFound, msg)
	}
	return err
}
