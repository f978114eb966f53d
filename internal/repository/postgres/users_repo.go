package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userCols = `id, full_name, email, password_hash, phone, role, kyc_status, rib, bank_name, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	var rib, bankName *string
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.KYCStatus, &rib, &bankName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	if rib != nil {
		u.Bank = &models.BankInfo{RIB: *rib}
		if bankName != nil {
			u.Bank.BankName = *bankName
		}
	}
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, full_name, email, password_hash, phone, role, kyc_status) VALUES($1,$2,$3,$4,$5,$6,$7)`,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.Phone, u.Role, u.KYCStatus,
	)
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(ctx, u.ID)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id=$1`, id))
	if err != nil {
		return models.User{}, notFound(err, "user not found")
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email=$1`, email))
	if err != nil {
		return models.User{}, notFound(err, "user not found")
	}
	return u, nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at DESC LIMIT 200`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Update(ctx context.Context, u models.User) error {
	var rib, bankName *string
	if u.Bank != nil {
		rib, bankName = &u.Bank.RIB, &u.Bank.BankName
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET full_name=$2, email=$3, phone=$4, role=$5, kyc_status=$6, rib=$7, bank_name=$8, updated_at=now() WHERE id=$1`,
		u.ID, u.FullName, u.Email, u.Phone, u.Role, u.KYCStatus, rib, bankName,
	)
	return err
}
