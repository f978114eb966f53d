package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type withdrawalsRepo struct{ pool *pgxpool.Pool }

const withdrawalCols = `id, user_id, wallet_id, amount, rib, bank_name, status, admin_note, decided_by, requested_at, decision_date`

func scanWithdrawal(row interface{ Scan(...any) error }) (models.WithdrawalRequest, error) {
	var w models.WithdrawalRequest
	err := row.Scan(&w.ID, &w.UserID, &w.WalletID, &w.Amount, &w.RIB, &w.BankName,
		&w.Status, &w.AdminNote, &w.DecidedBy, &w.RequestedAt, &w.DecisionDate)
	return w, err
}

func (r *withdrawalsRepo) Create(ctx context.Context, w models.WithdrawalRequest) (models.WithdrawalRequest, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO withdrawal_requests(id, user_id, wallet_id, amount, rib, bank_name, status)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		w.ID, w.UserID, w.WalletID, w.Amount, w.RIB, w.BankName, w.Status,
	)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}
	return r.GetByID(ctx, w.ID)
}

func (r *withdrawalsRepo) GetByID(ctx context.Context, id string) (models.WithdrawalRequest, error) {
	w, err := scanWithdrawal(r.pool.QueryRow(ctx,
		`SELECT `+withdrawalCols+` FROM withdrawal_requests WHERE id=$1`, id))
	if err != nil {
		return models.WithdrawalRequest{}, notFound(err, "withdrawal request not found")
	}
	return w, nil
}

func (r *withdrawalsRepo) ListByUser(ctx context.Context, userID string) ([]models.WithdrawalRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+withdrawalCols+` FROM withdrawal_requests WHERE user_id=$1 ORDER BY requested_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectWithdrawals(rows)
}

func (r *withdrawalsRepo) ListByStatus(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+withdrawalCols+` FROM withdrawal_requests WHERE status=$1 ORDER BY requested_at DESC`, status)
	if err != nil {
		return nil, err
	}
	return collectWithdrawals(rows)
}

func collectWithdrawals(rows pgx.Rows) ([]models.WithdrawalRequest, error) {
	defer rows.Close()
	var out []models.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *withdrawalsRepo) Update(ctx context.Context, w models.WithdrawalRequest) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE withdrawal_requests
		    SET status=$2, admin_note=$3, decided_by=$4, decision_date=$5
		  WHERE id=$1`,
		w.ID, w.Status, w.AdminNote, w.DecidedBy, w.DecisionDate,
	)
	return err
}
