package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type projectsRepo struct{ pool *pgxpool.Pool }

const projectCols = `id, owner_id, title, description, funding_goal, current_funding, minimum_investment,
	equity_offered, status, start_date, deadline, supervisor_id, decision_message, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.FundingGoal, &p.CurrentFunding,
		&p.MinimumInvestment, &p.EquityOffered, &p.Status, &p.StartDate, &p.Deadline,
		&p.SupervisorID, &p.DecisionMessage, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *projectsRepo) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projects(id, owner_id, title, description, funding_goal, current_funding,
		   minimum_investment, equity_offered, status, start_date, deadline)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.OwnerID, p.Title, p.Description, p.FundingGoal, p.CurrentFunding,
		p.MinimumInvestment, p.EquityOffered, p.Status, p.StartDate, p.Deadline,
	)
	if err != nil {
		return models.Project{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *projectsRepo) GetByID(ctx context.Context, id string) (models.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, `SELECT `+projectCols+` FROM projects WHERE id=$1`, id))
	if err != nil {
		return models.Project{}, notFound(err, "project not found")
	}
	return p, nil
}

func (r *projectsRepo) ListByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectCols+` FROM projects WHERE status=$1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

func (r *projectsRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectCols+` FROM projects WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

func collectProjects(rows pgx.Rows) ([]models.Project, error) {
	defer rows.Close()
	var out []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectsRepo) Update(ctx context.Context, p models.Project) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE projects SET title=$2, description=$3, funding_goal=$4, current_funding=$5,
		   minimum_investment=$6, equity_offered=$7, status=$8, start_date=$9, deadline=$10,
		   supervisor_id=$11, decision_message=$12, updated_at=now()
		 WHERE id=$1`,
		p.ID, p.Title, p.Description, p.FundingGoal, p.CurrentFunding,
		p.MinimumInvestment, p.EquityOffered, p.Status, p.StartDate, p.Deadline,
		p.SupervisorID, p.DecisionMessage,
	)
	return err
}

func (r *projectsRepo) Milestones(ctx context.Context, projectID string) ([]models.Milestone, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, position, title, description, due_date, done
		   FROM milestones WHERE project_id=$1 ORDER BY position`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Position, &m.Title, &m.Description, &m.DueDate, &m.Done); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *projectsRepo) SaveMilestones(ctx context.Context, projectID string, ms []models.Milestone) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM milestones WHERE project_id=$1`, projectID); err != nil {
		return err
	}
	for i, m := range ms {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO milestones(id, project_id, position, title, description, due_date, done)
			 VALUES($1,$2,$3,$4,$5,$6,$7)`,
			m.ID, projectID, i, m.Title, m.Description, m.DueDate, m.Done,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
