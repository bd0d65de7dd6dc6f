package devices

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

const deviceColumns = `id, name, description, type, owner_id, created_at`

func (r *PostgresRepository) Create(ctx context.Context, device *models.Device) error {
	query :=
		`INSERT INTO devices (id, name, description, type, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		device.ID, device.Name, device.Description, string(device.Type),
		device.OwnerID, device.CreatedAt)

	if err != nil {
		return &common.PersistenceError{Op: "devices.create", Err: err}
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	device := &models.Device{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&device.ID, &device.Name,
		&device.Description, &device.Type, &device.OwnerID, &device.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, &common.PersistenceError{Op: "devices.get", Err: err}
	}

	return device, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at, id`
	return r.queryMany(ctx, "devices.list", query)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE owner_id = $1 ORDER BY created_at, id`
	return r.queryMany(ctx, "devices.list_by_owner", query, userID)
}

func (r *PostgresRepository) Update(ctx context.Context, device *models.Device) error {
	query :=
		`UPDATE devices
		 SET name = $2, description = $3, type = $4
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		device.ID, device.Name, device.Description, string(device.Type))

	if err != nil {
		return &common.PersistenceError{Op: "devices.update", Err: err}
	}

	return requireRow(res, "devices.update")
}

func (r *PostgresRepository) SetOwner(ctx context.Context, id string, ownerID *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE devices SET owner_id = $2 WHERE id = $1`, id, ownerID)

	if err != nil {
		return &common.PersistenceError{Op: "devices.set_owner", Err: err}
	}

	return requireRow(res, "devices.set_owner")
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return &common.PersistenceError{Op: "devices.delete", Err: err}
	}
	return requireRow(res, "devices.delete")
}

func (r *PostgresRepository) queryMany(ctx context.Context, op, query string, args ...any) ([]*models.Device, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &common.PersistenceError{Op: op, Err: err}
	}
	defer rows.Close()

	var out []*models.Device
	for rows.Next() {
		device := &models.Device{}
		if err := rows.Scan(&device.ID, &device.Name, &device.Description,
			&device.Type, &device.OwnerID, &device.CreatedAt); err != nil {
			return nil, &common.PersistenceError{Op: op, Err: err}
		}
		out = append(out, device)
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
