package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type investmentsRepo struct{ pool *pgxpool.Pool }

func (r *investmentsRepo) Create(ctx context.Context, inv models.Investment) (models.Investment, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO investments(id, investor_id, project_id, amount, source)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING id, investor_id, project_id, amount, source, created_at`,
		inv.ID, inv.InvestorID, inv.ProjectID, inv.Amount, inv.Source,
	).Scan(&inv.ID, &inv.InvestorID, &inv.ProjectID, &inv.Amount, &inv.Source, &inv.CreatedAt)
	return inv, err
}

func (r *investmentsRepo) ListByProject(ctx context.Context, projectID string) ([]models.Investment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, investor_id, project_id, amount, source, created_at
		   FROM investments WHERE project_id=$1 ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, err
	}
	return collectInvestments(rows)
}

func (r *investmentsRepo) ListByInvestor(ctx context.Context, investorID string) ([]models.Investment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, investor_id, project_id, amount, source, created_at
		   FROM investments WHERE investor_id=$1 ORDER BY created_at DESC`, investorID)
	if err != nil {
		return nil, err
	}
	return collectInvestments(rows)
}

func collectInvestments(rows pgx.Rows) ([]models.Investment, error) {
	defer rows.Close()
	var out []models.Investment
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.InvestorID, &inv.ProjectID, &inv.Amount, &inv.Source, &inv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
