package services

import (
	"context"

	"github.com/ysalhi/tamwil-backend/internal/api/validate"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/metrics"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

type WalletService struct {
	wallets     repo.Wallets
	txns        repo.Transactions
	withdrawals repo.Withdrawals
	users       repo.Users
	locks       *keyedMutex
	audit       *auditor
}

func NewWalletService(w repo.Wallets, t repo.Transactions, wd repo.Withdrawals, u repo.Users, locks *keyedMutex, audit *auditor) *WalletService {
	return &WalletService{wallets: w, txns: t, withdrawals: wd, users: u, locks: locks, audit: audit}
}

func (s *WalletService) Get(ctx context.Context, userID string) (models.Wallet, error) {
	return s.wallets.GetByUser(ctx, userID)
}

func (s *WalletService) Transactions(ctx context.Context, walletID string, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.txns.ListByWallet(ctx, walletID, limit, offset)
}

// Deposit credits the wallet and appends a completed deposit entry to the
// ledger. The two writes run under the wallet's lock.
func (s *WalletService) Deposit(ctx context.Context, walletID string, amount int64) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, apperr.E(apperr.Validation, "amount must be positive")
	}

	s.locks.Lock(walletKey(walletID))
	defer s.locks.Unlock(walletKey(walletID))

	if _, err := s.wallets.GetByID(ctx, walletID); err != nil {
		return models.Transaction{}, err
	}
	if _, err := s.wallets.UpdateBalance(ctx, walletID, amount); err != nil {
		return models.Transaction{}, err
	}
	txn, err := s.txns.Create(ctx, models.Transaction{
		WalletID:    walletID,
		Type:        models.TxnDeposit,
		Amount:      amount,
		Description: "wallet deposit",
		Status:      models.TxnCompleted,
	})
	if err != nil {
		return models.Transaction{}, err
	}
	metrics.TransactionsTotal.WithLabelValues(string(models.TxnDeposit)).Inc()
	return txn, nil
}

// RequestWithdrawal debits the wallet immediately (the amount is frozen until
// an admin decides) and opens a pending request. The user's stored bank info
// is updated when it changed.
func (s *WalletService) RequestWithdrawal(ctx context.Context, userID string, amount int64, rib, bankName string) (models.WithdrawalRequest, error) {
	if amount <= 0 {
		return models.WithdrawalRequest{}, apperr.E(apperr.Validation, "amount must be positive")
	}
	if ve := validate.RIB("rib", rib); ve != nil {
		return models.WithdrawalRequest{}, apperr.E(apperr.Validation, ve.Error())
	}

	wallet, err := s.wallets.GetByUser(ctx, userID)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.locks.Lock(walletKey(wallet.ID))
	defer s.locks.Unlock(walletKey(wallet.ID))

	// re-read under the lock
	wallet, err = s.wallets.GetByID(ctx, wallet.ID)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}
	if wallet.Balance < amount {
		return models.WithdrawalRequest{}, apperr.E(apperr.InsufficientFunds, "insufficient balance")
	}

	if _, err := s.wallets.UpdateBalance(ctx, wallet.ID, -amount); err != nil {
		return models.WithdrawalRequest{}, err
	}
	req, err := s.withdrawals.Create(ctx, models.WithdrawalRequest{
		UserID:   userID,
		WalletID: wallet.ID,
		Amount:   amount,
		RIB:      rib,
		BankName: bankName,
		Status:   models.WithdrawalPending,
	})
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.locks.Lock(userKey(userID))
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		if user.Bank == nil || user.Bank.RIB != rib || user.Bank.BankName != bankName {
			user.Bank = &models.BankInfo{RIB: rib, BankName: bankName}
			if err := s.users.Update(ctx, user); err != nil {
				s.audit.log("user", userID, userID, "bank_info_update_failed", err.Error())
			}
		}
	}
	s.locks.Unlock(userKey(userID))

	metrics.WithdrawalRequestsTotal.Inc()
	s.audit.log("withdrawal", req.ID, userID, "created", "funds frozen")
	return req, nil
}

func (s *WalletService) Withdrawals(ctx context.Context, userID string) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.ListByUser(ctx, userID)
}
