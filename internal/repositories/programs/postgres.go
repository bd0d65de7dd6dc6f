package programs

import (
	"context"
	"database/sql"
	"errors"

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

const programColumns = `id, name, description, device_id, created_at`

func (r *PostgresRepository) Create(ctx context.Context, program *models.Program) error {
	query :=
		`INSERT INTO programs (id, name, description, device_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		program.ID, program.Name, program.Description, program.DeviceID, program.CreatedAt)

	if err != nil {
		return &common.PersistenceError{Op: "programs.create", Err: err}
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE id = $1`

	program := &models.Program{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&program.ID, &program.Name,
		&program.Description, &program.DeviceID, &program.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.PersistenceError{Op: "programs.get", Err: err}
	}

	return program, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY created_at, id`
	return r.queryMany(ctx, "programs.list", query)
}

func (r *PostgresRepository) ListByDevice(ctx context.Context, deviceID string) ([]*models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE device_id = $1 ORDER BY created_at, id`
	return r.queryMany(ctx, "programs.list_by_device", query, deviceID)
}

func (r *PostgresRepository) Update(ctx context.Context, program *models.Program) error {
	query :=
		`UPDATE programs
		 SET name = $2, description = $3
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, program.ID, program.Name, program.Description)
	if err != nil {
		return &common.PersistenceError{Op: "programs.update", Err: err}
	}

	return requireRow(res, "programs.update")
}

func (r *PostgresRepository) SetDevice(ctx context.Context, id string, deviceID *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE programs SET device_id = $2 WHERE id = $1`, id, deviceID)

	if err != nil {
		return &common.PersistenceError{Op: "programs.set_device", Err: err}
	}

	return requireRow(res, "programs.set_device")
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return &common.PersistenceError{Op: "programs.delete", Err: err}
	}
	return requireRow(res, "programs.delete")
}

func (r *PostgresRepository) queryMany(ctx context.Context, op, query string, args ...any) ([]*models.Program, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &common.PersistenceError{Op: op, Err: err}
	}
	defer rows.Close()

	var out []*models.Program
	for rows.Next() {
		program := &models.Program{}
		if err := rows.Scan(&program.ID, &program.Name, &program.Description,
			&program.DeviceID, &program.CreatedAt); err != nil {
			return nil, &common.PersistenceError{Op: op, Err: err}
		}
		out = append(out, program)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.PersistenceError{Op: op, Err: err}
	}

	return out, nil
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
