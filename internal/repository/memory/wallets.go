package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type walletsRepo struct{ s *store }

func (r *walletsRepo) Create(_ context.Context, w models.Wallet) (models.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Currency == "" {
		w.Currency = "MAD"
	}
	w.LastUpdatedAt = time.Now()
	r.s.wallets[w.ID] = w
	return w, nil
}

func (r *walletsRepo) GetByID(_ context.Context, id string) (models.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.wallets[id]
	if !ok {
		return models.Wallet{}, apperr.E(apperr.NotFound, "wallet not found")
	}
	return w, nil
}

func (r *walletsRepo) GetByUser(_ context.Context, userID string) (models.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, w := range r.s.wallets {
		if w.UserID == userID {
			return w, nil
		}
	}
	return models.Wallet{}, apperr.E(apperr.NotFound, "wallet not found")
}

func (r *walletsRepo) UpdateBalance(_ context.Context, id string, delta int64) (models.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.wallets[id]
	if !ok {
		return models.Wallet{}, apperr.E(apperr.NotFound, "wallet not found")
	}
	w.Balance += delta
	w.LastUpdatedAt = time.Now()
	r.s.wallets[id] = w
	return w, nil
}

type transactionsRepo struct{ s *store }

func (r *transactionsRepo) Create(_ context.Context, t models.Transaction) (models.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	r.s.transactions[t.ID] = t
	return t, nil
}

func (r *transactionsRepo) GetByID(_ context.Context, id string) (models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return models.Transaction{}, apperr.E(apperr.NotFound, "transaction not found")
	}
	return t, nil
}

func (r *transactionsRepo) ListByWallet(_ context.Context, walletID string, limit, offset int) ([]models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Transaction
	for _, t := range r.s.transactions {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
