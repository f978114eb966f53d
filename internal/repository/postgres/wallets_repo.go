package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type walletsRepo struct{ pool *pgxpool.Pool }

func (r *walletsRepo) Create(ctx context.Context, w models.Wallet) (models.Wallet, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Currency == "" {
		w.Currency = "MAD"
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO wallets(id, user_id, balance, currency, last_updated_at)
		 VALUES($1,$2,$3,$4,now())
		 RETURNING id, user_id, balance, currency, last_updated_at`,
		w.ID, w.UserID, w.Balance, w.Currency,
	).Scan(&w.ID, &w.UserID, &w.Balance, &w.Currency, &w.LastUpdatedAt)
	return w, err
}

func (r *walletsRepo) GetByID(ctx context.Context, id string) (models.Wallet, error) {
	var w models.Wallet
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, balance, currency, last_updated_at FROM wallets WHERE id=$1`, id,
	).Scan(&w.ID, &w.UserID, &w.Balance, &w.Currency, &w.LastUpdatedAt)
	if err != nil {
		return models.Wallet{}, notFound(err, "wallet not found")
	}
	return w, nil
}

func (r *walletsRepo) GetByUser(ctx context.Context, userID string) (models.Wallet, error) {
	var w models.Wallet
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, balance, currency, last_updated_at FROM wallets WHERE user_id=$1`, userID,
	).Scan(&w.ID, &w.UserID, &w.Balance, &w.Currency, &w.LastUpdatedAt)
	if err != nil {
		return models.Wallet{}, notFound(err, "wallet not found")
	}
	return w, nil
}

func (r *walletsRepo) UpdateBalance(ctx context.Context, id string, delta int64) (models.Wallet, error) {
	var w models.Wallet
	err := r.pool.QueryRow(ctx,
		`UPDATE wallets
		    SET balance = balance + $2,
		        last_updated_at = now()
		  WHERE id = $1
		  RETURNING id, user_id, balance, currency, last_updated_at`,
		id, delta,
	).Scan(&w.ID, &w.UserID, &w.Balance, &w.Currency, &w.LastUpdatedAt)
	if err != nil {
		return models.Wallet{}, notFound(err, "wallet not found")
	}
	return w, nil
}
