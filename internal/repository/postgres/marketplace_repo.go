package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type servicesRepo struct{ pool *pgxpool.Pool }

func (r *servicesRepo) Create(ctx context.Context, s models.Service) (models.Service, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO services(id, title, description, price, delivery_days, active)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING id, title, description, price, delivery_days, active, created_at, updated_at`,
		s.ID, s.Title, s.Description, s.Price, s.DeliveryDays, s.Active,
	).Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.DeliveryDays, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *servicesRepo) GetByID(ctx context.Context, id string) (models.Service, error) {
	var s models.Service
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, price, delivery_days, active, created_at, updated_at
		   FROM services WHERE id=$1`, id,
	).Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.DeliveryDays, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return models.Service{}, notFound(err, "service not found")
	}
	return s, nil
}

func (r *servicesRepo) List(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	q := `SELECT id, title, description, price, delivery_days, active, created_at, updated_at FROM services`
	if activeOnly {
		q += ` WHERE active`
	}
	q += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.DeliveryDays, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *servicesRepo) Update(ctx context.Context, s models.Service) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE services SET title=$2, description=$3, price=$4, delivery_days=$5, active=$6, updated_at=now() WHERE id=$1`,
		s.ID, s.Title, s.Description, s.Price, s.DeliveryDays, s.Active,
	)
	return err
}

type serviceRequestsRepo struct{ pool *pgxpool.Pool }

func (r *serviceRequestsRepo) Create(ctx context.Context, req models.ServiceRequest) (models.ServiceRequest, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO service_requests(id, service_id, client_id, details, status)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING id, service_id, client_id, details, status, created_at, updated_at`,
		req.ID, req.ServiceID, req.ClientID, req.Details, req.Status,
	).Scan(&req.ID, &req.ServiceID, &req.ClientID, &req.Details, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	return req, err
}

func (r *serviceRequestsRepo) GetByID(ctx context.Context, id string) (models.ServiceRequest, error) {
	var req models.ServiceRequest
	err := r.pool.QueryRow(ctx,
		`SELECT id, service_id, client_id, details, status, created_at, updated_at
		   FROM service_requests WHERE id=$1`, id,
	).Scan(&req.ID, &req.ServiceID, &req.ClientID, &req.Details, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return models.ServiceRequest{}, notFound(err, "service request not found")
	}
	return req, nil
}

func (r *serviceRequestsRepo) ListByClient(ctx context.Context, clientID string) ([]models.ServiceRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, service_id, client_id, details, status, created_at, updated_at
		   FROM service_requests WHERE client_id=$1 ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ServiceRequest
	for rows.Next() {
		var req models.ServiceRequest
		if err := rows.Scan(&req.ID, &req.ServiceID, &req.ClientID, &req.Details, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *serviceRequestsRepo) Update(ctx context.Context, req models.ServiceRequest) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE service_requests SET details=$2, status=$3, updated_at=now() WHERE id=$1`,
		req.ID, req.Details, req.Status,
	)
	return err
}
