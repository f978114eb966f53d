package services

import (
	"context"
	"log/slog"

	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/metrics"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

type InvestmentService struct {
	investments repo.Investments
	projects    repo.Projects
	users       repo.Users
	wallets     repo.Wallets
	txns        repo.Transactions
	locks       *keyedMutex
	audit       *auditor

	// RecordDirectTxn controls whether a direct (card) investment also
	// writes a ledger entry. Off by default: the gateway keeps its own
	// record, so the wallet ledger only reflects wallet money movements.
	RecordDirectTxn bool
}

func NewInvestmentService(inv repo.Investments, p repo.Projects, u repo.Users, w repo.Wallets, t repo.Transactions, locks *keyedMutex, audit *auditor) *InvestmentService {
	return &InvestmentService{investments: inv, projects: p, users: u, wallets: w, txns: t, locks: locks, audit: audit}
}

// Invest commits wallet funds to a project. All checks run before any
// mutation, inside the wallet and project critical sections, so a failure
// leaves no partial effects.
func (s *InvestmentService) Invest(ctx context.Context, investorID, projectID string, amount int64) (models.Investment, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return models.Investment{}, err
	}
	investor, err := s.users.GetByID(ctx, investorID)
	if err != nil {
		return models.Investment{}, err
	}
	wallet, err := s.wallets.GetByUser(ctx, investorID)
	if err != nil {
		return models.Investment{}, err
	}

	s.locks.Lock(walletKey(wallet.ID))
	defer s.locks.Unlock(walletKey(wallet.ID))
	s.locks.Lock(projectKey(projectID))
	defer s.locks.Unlock(projectKey(projectID))

	// re-read both under the locks
	wallet, err = s.wallets.GetByID(ctx, wallet.ID)
	if err != nil {
		return models.Investment{}, err
	}
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Investment{}, err
	}

	if err := validateInvestor(investor); err != nil {
		return models.Investment{}, err
	}
	if project.Status != models.ProjectActive {
		return models.Investment{}, apperr.E(apperr.InvalidState, "project is not open for investment")
	}
	if wallet.Balance < amount {
		return models.Investment{}, apperr.E(apperr.InsufficientFunds, "insufficient balance")
	}
	if err := validateAmount(&project, amount); err != nil {
		return models.Investment{}, err
	}

	if _, err := s.wallets.UpdateBalance(ctx, wallet.ID, -amount); err != nil {
		return models.Investment{}, err
	}
	if err := s.applyFunding(ctx, &project, amount); err != nil {
		return models.Investment{}, err
	}
	if _, err := s.txns.Create(ctx, models.Transaction{
		WalletID:    wallet.ID,
		Type:        models.TxnInvestment,
		Amount:      amount,
		Description: "investment in " + project.Title,
		Status:      models.TxnCompleted,
	}); err != nil {
		return models.Investment{}, err
	}
	metrics.TransactionsTotal.WithLabelValues(string(models.TxnInvestment)).Inc()
	inv, err := s.investments.Create(ctx, models.Investment{
		InvestorID: investorID,
		ProjectID:  projectID,
		Amount:     amount,
		Source:     models.FundingWallet,
	})
	if err != nil {
		return models.Investment{}, err
	}

	metrics.InvestmentsTotal.WithLabelValues(string(models.FundingWallet)).Inc()
	s.audit.log("investment", inv.ID, investorID, "created", "wallet funded")
	return inv, nil
}

// InvestDirect commits capital through an external payment instrument: the
// same checks apply except wallet balance, and neither the wallet nor the
// ledger is touched unless RecordDirectTxn is set.
func (s *InvestmentService) InvestDirect(ctx context.Context, investorID, projectID string, amount int64) (models.Investment, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return models.Investment{}, err
	}
	investor, err := s.users.GetByID(ctx, investorID)
	if err != nil {
		return models.Investment{}, err
	}

	s.locks.Lock(projectKey(projectID))
	defer s.locks.Unlock(projectKey(projectID))

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Investment{}, err
	}

	if err := validateInvestor(investor); err != nil {
		return models.Investment{}, err
	}
	if project.Status != models.ProjectActive {
		return models.Investment{}, apperr.E(apperr.InvalidState, "project is not open for investment")
	}
	if err := validateAmount(&project, amount); err != nil {
		return models.Investment{}, err
	}

	if err := s.applyFunding(ctx, &project, amount); err != nil {
		return models.Investment{}, err
	}
	inv, err := s.investments.Create(ctx, models.Investment{
		InvestorID: investorID,
		ProjectID:  projectID,
		Amount:     amount,
		Source:     models.FundingDirect,
	})
	if err != nil {
		return models.Investment{}, err
	}

	if s.RecordDirectTxn {
		if wallet, werr := s.wallets.GetByUser(ctx, investorID); werr == nil {
			if _, terr := s.txns.Create(ctx, models.Transaction{
				WalletID:    wallet.ID,
				Type:        models.TxnInvestment,
				Amount:      amount,
				Description: "direct investment in " + project.Title,
				Status:      models.TxnCompleted,
			}); terr != nil {
				slog.Error("direct investment ledger write", "investment", inv.ID, "err", terr)
			} else {
				metrics.TransactionsTotal.WithLabelValues(string(models.TxnInvestment)).Inc()
			}
		}
	}

	metrics.InvestmentsTotal.WithLabelValues(string(models.FundingDirect)).Inc()
	s.audit.log("investment", inv.ID, investorID, "created", "direct payment")
	return inv, nil
}

func (s *InvestmentService) ListByProject(ctx context.Context, projectID string) ([]models.Investment, error) {
	return s.investments.ListByProject(ctx, projectID)
}

func (s *InvestmentService) ListByInvestor(ctx context.Context, investorID string) ([]models.Investment, error) {
	return s.investments.ListByInvestor(ctx, investorID)
}

func validateInvestor(u models.User) error {
	if u.Role != models.RoleInvestor {
		return apperr.E(apperr.Unauthorized, "only investors can invest")
	}
	if u.KYCStatus != models.KYCVerified {
		return apperr.E(apperr.Unverified, "identity verification required")
	}
	return nil
}

func validateAmount(p *models.Project, amount int64) error {
	if amount < p.MinimumInvestment {
		return apperr.E(apperr.Validation, "amount below project minimum")
	}
	if amount > p.Headroom() {
		return apperr.E(apperr.InsufficientFunds, "amount exceeds remaining funding capacity")
	}
	return nil
}

// applyFunding bumps the running total and flips the project to funded when
// the goal is reached exactly (overshoot was already rejected).
func (s *InvestmentService) applyFunding(ctx context.Context, p *models.Project, amount int64) error {
	p.CurrentFunding += amount
	if p.CurrentFunding >= p.FundingGoal {
		p.Status = models.ProjectFunded
	}
	return s.projects.Update(ctx, *p)
}
