package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

func (r *transactionsRepo) Create(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO transactions(id, wallet_id, type, amount, description, status)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING id, wallet_id, type, amount, description, status, created_at`,
		t.ID, t.WalletID, t.Type, t.Amount, t.Description, t.Status,
	).Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Description, &t.Status, &t.CreatedAt)
	return t, err
}

func (r *transactionsRepo) GetByID(ctx context.Context, id string) (models.Transaction, error) {
	var t models.Transaction
	err := r.pool.QueryRow(ctx,
		`SELECT id, wallet_id, type, amount, description, status, created_at
		   FROM transactions WHERE id=$1`, id,
	).Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Description, &t.Status, &t.CreatedAt)
	if err != nil {
		return models.Transaction{}, notFound(err, "transaction not found")
	}
	return t, nil
}

func (r *transactionsRepo) ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, wallet_id, type, amount, description, status, created_at
		   FROM transactions
		  WHERE wallet_id=$1
		  ORDER BY created_at DESC
		  LIMIT $2 OFFSET $3`,
		walletID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Description, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
