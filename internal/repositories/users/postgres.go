package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/azarovs/parkd/internal/common"
	"github.com/azarovs/parkd/internal/dbx"
	"github.com/azarovs/parkd/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, username, first_name, last_name, password_hash, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (id, email, username, first_name, last_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Username, user.FirstName, user.LastName,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	if err != nil {
		if verr := uniqueViolation(err); verr != nil {
			return verr
		}
		return &common.PersistenceError{Op: "users.create", Err: err}
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "users.get")
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email), "users.get_by_email")
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username), "users.get_by_username")
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &common.PersistenceError{Op: "users.list", Err: err}
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.Username, &user.FirstName,
			&user.LastName, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, &common.PersistenceError{Op: "users.list", Err: err}
		}
		out = append(out, user)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.PersistenceError{Op: "users.list", Err: err}
	}

	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {
	query :=
		`UPDATE users
		 SET email = $2, username = $3, first_name = $4, last_name = $5, password_hash = $6, updated_at = $7
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Username, user.FirstName, user.LastName,
		user.PasswordHash, user.UpdatedAt)

	if err != nil {
		if verr := uniqueViolation(err); verr != nil {
			return verr
		}
		return &common.PersistenceError{Op: "users.update", Err: err}
	}

	return requireRow(res, "users.update")
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return &common.PersistenceError{Op: "users.delete", Err: err}
	}
	return requireRow(res, "users.delete")
}

func (r *PostgresRepository) scanOne(row *sql.Row, op string) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.FirstName,
		&user.LastName, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.PersistenceError{Op: op, Err: err}
	}

	return user, nil
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &common.PersistenceError{Op: op, Err: err}
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// uniqueViolation maps a unique-index violation to a per-field
// ValidationError; the service-level check covers the same ground, this is
// the last line against races.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	v := common.NewValidationError()
	switch pgErr.ConstraintName {
	case "users_email_key":
		v.Add("email", "is already taken")
	case "users_username_key":
		v.Add("username", "is already taken")
	default:
		v.Add("user", "conflicts with an existing user")
	}
	return v.Err()
}
