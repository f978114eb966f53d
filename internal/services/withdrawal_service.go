package services

import (
	"context"
	"time"

	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/metrics"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

// WithdrawalService drives the payout state machine:
// pending -> approved -> completed, pending -> rejected.
// The wallet was debited at request time, so approval and completion never
// move money; rejection refunds the frozen amount exactly once.
type WithdrawalService struct {
	withdrawals repo.Withdrawals
	wallets     repo.Wallets
	txns        repo.Transactions
	locks       *keyedMutex
	audit       *auditor
}

func NewWithdrawalService(wd repo.Withdrawals, w repo.Wallets, t repo.Transactions, locks *keyedMutex, audit *auditor) *WithdrawalService {
	return &WithdrawalService{withdrawals: wd, wallets: w, txns: t, locks: locks, audit: audit}
}

func (s *WithdrawalService) Get(ctx context.Context, id string) (models.WithdrawalRequest, error) {
	return s.withdrawals.GetByID(ctx, id)
}

func (s *WithdrawalService) ListPending(ctx context.Context) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.ListByStatus(ctx, models.WithdrawalPending)
}

func (s *WithdrawalService) ListByUser(ctx context.Context, userID string) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.ListByUser(ctx, userID)
}

// Approve, like every decision, runs under the wallet lock; the pending-only
// guard then ensures at most one decision settles a request.
func (s *WithdrawalService) Approve(ctx context.Context, id, adminID, note string) (models.WithdrawalRequest, error) {
	req, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.locks.Lock(walletKey(req.WalletID))
	defer s.locks.Unlock(walletKey(req.WalletID))

	req, err = s.transition(ctx, id, models.WithdrawalApproved, adminID, note)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}
	metrics.WithdrawalDecisionsTotal.WithLabelValues("approved").Inc()
	s.audit.log("withdrawal", req.ID, adminID, "approved", note)
	return req, nil
}

// Reject refunds the frozen amount. The pending-only transition guard makes
// the refund idempotent: a second reject fails before any balance change.
func (s *WithdrawalService) Reject(ctx context.Context, id, adminID, note string) (models.WithdrawalRequest, error) {
	req, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.locks.Lock(walletKey(req.WalletID))
	defer s.locks.Unlock(walletKey(req.WalletID))

	req, err = s.transition(ctx, id, models.WithdrawalRejected, adminID, note)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}
	if _, err := s.wallets.UpdateBalance(ctx, req.WalletID, req.Amount); err != nil {
		return models.WithdrawalRequest{}, err
	}
	if _, err := s.txns.Create(ctx, models.Transaction{
		WalletID:    req.WalletID,
		Type:        models.TxnRefund,
		Amount:      req.Amount,
		Description: "withdrawal request rejected",
		Status:      models.TxnCompleted,
	}); err != nil {
		return models.WithdrawalRequest{}, err
	}

	metrics.TransactionsTotal.WithLabelValues(string(models.TxnRefund)).Inc()
	metrics.WithdrawalDecisionsTotal.WithLabelValues("rejected").Inc()
	s.audit.log("withdrawal", req.ID, adminID, "rejected", note)
	return req, nil
}

// Complete records the payout in the ledger. The balance does not change;
// it was already debited when the request was created.
func (s *WithdrawalService) Complete(ctx context.Context, id, adminID string) (models.WithdrawalRequest, error) {
	req, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.locks.Lock(walletKey(req.WalletID))
	defer s.locks.Unlock(walletKey(req.WalletID))

	req, err = s.transition(ctx, id, models.WithdrawalCompleted, adminID, "")
	if err != nil {
		return models.WithdrawalRequest{}, err
	}
	if _, err := s.txns.Create(ctx, models.Transaction{
		WalletID:    req.WalletID,
		Type:        models.TxnWithdrawal,
		Amount:      req.Amount,
		Description: "withdrawal to " + req.BankName,
		Status:      models.TxnCompleted,
	}); err != nil {
		return models.WithdrawalRequest{}, err
	}

	metrics.TransactionsTotal.WithLabelValues(string(models.TxnWithdrawal)).Inc()
	metrics.WithdrawalDecisionsTotal.WithLabelValues("completed").Inc()
	s.audit.log("withdrawal", req.ID, adminID, "completed", "")
	return req, nil
}

func (s *WithdrawalService) transition(ctx context.Context, id string, to models.WithdrawalStatus, adminID, note string) (models.WithdrawalRequest, error) {
	req, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}
	if !req.Status.CanTransition(to) {
		return models.WithdrawalRequest{}, apperr.Errorf(apperr.InvalidState, "cannot move withdrawal from %s to %s", req.Status, to)
	}
	now := time.Now()
	req.Status = to
	req.DecisionDate = &now
	req.DecidedBy = &adminID
	if note != "" {
		req.AdminNote = note
	}
	if err := s.withdrawals.Update(ctx, req); err != nil {
		return models.WithdrawalRequest{}, err
	}
	return req, nil
}
