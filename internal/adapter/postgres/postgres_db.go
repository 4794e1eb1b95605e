package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

const motorcycleNotFound = "Motor tidak ditemukan"

const motorcycleColumns = `id, user_id, brand, model, variant, plate_number, year, stnk_expiry,
	usage_type, initial_km, current_km, created_at, updated_at`

type MotorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) *MotorcycleRepository {
	return &MotorcycleRepository{
		db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMotorcycle(row rowScanner) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Brand,
		&m.Model,
		&m.Variant,
		&m.PlateNumber,
		&m.Year,
		&m.StnkExpiry,
		&m.UsageType,
		&m.InitialKm,
		&m.CurrentKm,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MotorcycleRepository) CreateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error) {
	query := `INSERT INTO motorcycles (id, user_id, brand, model, variant, plate_number, year, stnk_expiry,
		usage_type, initial_km, current_km)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		motorcycle.ID,
		motorcycle.UserID,
		motorcycle.Brand,
		motorcycle.Model,
		motorcycle.Variant,
		motorcycle.PlateNumber,
		motorcycle.Year,
		motorcycle.StnkExpiry,
		motorcycle.UsageType,
		motorcycle.InitialKm,
		motorcycle.CurrentKm,
	).Scan(
		&motorcycle.CreatedAt,
		&motorcycle.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, userNotFound)
	}
	return motorcycle, nil
}

func (r *MotorcycleRepository) GetMotorcycleByID(ctx context.Context, motorcycleID uuid.UUID) (*domain.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE id = $1`

	m, err := scanMotorcycle(r.db.QueryRowContext(ctx, query, motorcycleID))
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}
	return m, nil
}

func (r *MotorcycleRepository) GetMotorcycleByPlate(ctx context.Context, plateNumber string) (*domain.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE plate_number = $1`

	m, err := scanMotorcycle(r.db.QueryRowContext(ctx, query, plateNumber))
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}
	return m, nil
}

func (r *MotorcycleRepository) GetMotorcyclesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + `
		FROM motorcycles WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	motorcycles := []*domain.Motorcycle{}
	for rows.Next() {
		m, err := scanMotorcycle(rows)
		if err != nil {
			return nil, err
		}
		motorcycles = append(motorcycles, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return motorcycles, nil
}

func (r *MotorcycleRepository) UpdateMotorcycle(ctx context.Context, motorcycle *domain.Motorcycle) (*domain.Motorcycle, error) {
	query := `UPDATE motorcycles
		SET
			brand = $1,
			model = $2,
			variant = $3,
			plate_number = $4,
			year = $5,
			stnk_expiry = $6,
			usage_type = $7,
			initial_km = $8,
			current_km = GREATEST(current_km, $9),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING ` + motorcycleColumns

	updated, err := scanMotorcycle(r.db.QueryRowContext(ctx, query,
		motorcycle.Brand,
		motorcycle.Model,
		motorcycle.Variant,
		motorcycle.PlateNumber,
		motorcycle.Year,
		motorcycle.StnkExpiry,
		motorcycle.UsageType,
		motorcycle.InitialKm,
		motorcycle.CurrentKm,
		motorcycle.ID,
	))
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}
	return updated, nil
}

// DeleteMotorcycle relies on ON DELETE CASCADE for service records,
// complaints and reminders.
func (r *MotorcycleRepository) DeleteMotorcycle(ctx context.Context, motorcycleID uuid.UUID) error {
	query := `DELETE FROM motorcycles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, motorcycleID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError(motorcycleNotFound)
	}

	return nil
}
