package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type reportsRepo struct{ pool *pgxpool.Pool }

const reportCols = `id, project_id, author_id, title, content, status, created_at, published_at`

func scanReport(row interface{ Scan(...any) error }) (models.Report, error) {
	var rep models.Report
	err := row.Scan(&rep.ID, &rep.ProjectID, &rep.AuthorID, &rep.Title, &rep.Content,
		&rep.Status, &rep.CreatedAt, &rep.PublishedAt)
	return rep, err
}

func (r *reportsRepo) Create(ctx context.Context, rep models.Report) (models.Report, error) {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reports(id, project_id, author_id, title, content, status)
		 VALUES($1,$2,$3,$4,$5,$6)`,
		rep.ID, rep.ProjectID, rep.AuthorID, rep.Title, rep.Content, rep.Status,
	)
	if err != nil {
		return models.Report{}, err
	}
	return r.GetByID(ctx, rep.ID)
}

func (r *reportsRepo) GetByID(ctx context.Context, id string) (models.Report, error) {
	rep, err := scanReport(r.pool.QueryRow(ctx, `SELECT `+reportCols+` FROM reports WHERE id=$1`, id))
	if err != nil {
		return models.Report{}, notFound(err, "report not found")
	}
	return rep, nil
}

func (r *reportsRepo) ListByProject(ctx context.Context, projectID string, publishedOnly bool) ([]models.Report, error) {
	q := `SELECT ` + reportCols + ` FROM reports WHERE project_id=$1`
	if publishedOnly {
		q += ` AND status='published'`
	}
	q += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	return collectReports(rows)
}

func (r *reportsRepo) ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.Report, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reportCols+` FROM reports WHERE status=$1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	return collectReports(rows)
}

func collectReports(rows pgx.Rows) ([]models.Report, error) {
	defer rows.Close()
	var out []models.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *reportsRepo) Update(ctx context.Context, rep models.Report) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE reports SET title=$2, content=$3, status=$4, published_at=$5 WHERE id=$1`,
		rep.ID, rep.Title, rep.Content, rep.Status, rep.PublishedAt,
	)
	return err
}

type settingsRepo struct{ pool *pgxpool.Pool }

func (r *settingsRepo) Get(ctx context.Context, key string) (models.Setting, error) {
	var s models.Setting
	err := r.pool.QueryRow(ctx,
		`SELECT key, value, updated_by, updated_at FROM settings WHERE key=$1`, key,
	).Scan(&s.Key, &s.Value, &s.UpdatedBy, &s.UpdatedAt)
	if err != nil {
		return models.Setting{}, notFound(err, "setting not found")
	}
	return s, nil
}

func (r *settingsRepo) List(ctx context.Context) ([]models.Setting, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value, updated_by, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *settingsRepo) Upsert(ctx context.Context, s models.Setting) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings(key, value, updated_by, updated_at)
		 VALUES($1,$2,$3,now())
		 ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_by=EXCLUDED.updated_by, updated_at=now()`,
		s.Key, s.Value, s.UpdatedBy,
	)
	return err
}

type auditLogsRepo struct{ pool *pgxpool.Pool }

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs(entity_type, entity_id, actor_id, action, details) VALUES($1,$2,$3,$4,$5)`,
		l.EntityType, l.EntityID, l.ActorID, l.Action, l.Details,
	)
	return err
}
