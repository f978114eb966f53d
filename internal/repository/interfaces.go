package repository

import (
	"context"

	"github.com/ysalhi/tamwil-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
}

type Wallets interface {
	Create(ctx context.Context, w models.Wallet) (models.Wallet, error)
	GetByID(ctx context.Context, id string) (models.Wallet, error)
	GetByUser(ctx context.Context, userID string) (models.Wallet, error)
	// UpdateBalance applies delta atomically and returns the updated wallet.
	UpdateBalance(ctx context.Context, id string, delta int64) (models.Wallet, error)
}

type Transactions interface {
	Create(ctx context.Context, t models.Transaction) (models.Transaction, error)
	GetByID(ctx context.Context, id string) (models.Transaction, error)
	ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]models.Transaction, error)
}

type Projects interface {
	Create(ctx context.Context, p models.Project) (models.Project, error)
	GetByID(ctx context.Context, id string) (models.Project, error)
	ListByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	Update(ctx context.Context, p models.Project) error
	Milestones(ctx context.Context, projectID string) ([]models.Milestone, error)
	SaveMilestones(ctx context.Context, projectID string, ms []models.Milestone) error
}

type Investments interface {
	Create(ctx context.Context, inv models.Investment) (models.Investment, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Investment, error)
	ListByInvestor(ctx context.Context, investorID string) ([]models.Investment, error)
}

type Withdrawals interface {
	Create(ctx context.Context, w models.WithdrawalRequest) (models.WithdrawalRequest, error)
	GetByID(ctx context.Context, id string) (models.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID string) ([]models.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalRequest, error)
	Update(ctx context.Context, w models.WithdrawalRequest) error
}

type Services interface {
	Create(ctx context.Context, s models.Service) (models.Service, error)
	GetByID(ctx context.Context, id string) (models.Service, error)
	List(ctx context.Context, activeOnly bool) ([]models.Service, error)
	Update(ctx context.Context, s models.Service) error
}

type ServiceRequests interface {
	Create(ctx context.Context, r models.ServiceRequest) (models.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (models.ServiceRequest, error)
	ListByClient(ctx context.Context, clientID string) ([]models.ServiceRequest, error)
	Update(ctx context.Context, r models.ServiceRequest) error
}

type Reports interface {
	Create(ctx context.Context, r models.Report) (models.Report, error)
	GetByID(ctx context.Context, id string) (models.Report, error)
	ListByProject(ctx context.Context, projectID string, publishedOnly bool) ([]models.Report, error)
	ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.Report, error)
	Update(ctx context.Context, r models.Report) error
}

type Settings interface {
	Get(ctx context.Context, key string) (models.Setting, error)
	List(ctx context.Context) ([]models.Setting, error)
	Upsert(ctx context.Context, s models.Setting) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
