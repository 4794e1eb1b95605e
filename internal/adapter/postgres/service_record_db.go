package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type ServiceRecordRepository struct {
	db *sql.DB
}

func NewServiceRecordRepository(db *sql.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{db: db}
}

func (r *ServiceRecordRepository) CreateServiceRecord(ctx context.Context, record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin service record tx: %w", err)
	}
	defer tx.Rollback()

	spareparts := record.Spareparts
	if spareparts == nil {
		spareparts = []string{}
	}

	insert := `INSERT INTO service_records (id, motorcycle_id, user_id, date, km, actions, spareparts, notes, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err = tx.QueryRowContext(ctx, insert,
		record.ID,
		record.MotorcycleID,
		record.UserID,
		record.Date,
		record.Km,
		pq.Array(record.Actions),
		pq.Array(spareparts),
		record.Notes,
		record.Cost,
	).Scan(&record.CreatedAt)
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}

	raise := `UPDATE motorcycles
		SET current_km = GREATEST(current_km, $1),
			updated_at = CASE WHEN $1 > current_km THEN CURRENT_TIMESTAMP ELSE updated_at END
		WHERE id = $2
		RETURNING brand, model, plate_number, current_km`

	summary := &domain.MotorcycleSummary{}
	err = tx.QueryRowContext(ctx, raise, record.Km, record.MotorcycleID).Scan(
		&summary.Brand,
		&summary.Model,
		&summary.PlateNumber,
		&summary.CurrentKm,
	)
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit service record tx: %w", err)
	}

	record.Spareparts = spareparts
	record.Motorcycle = summary
	return record, nil
}

const serviceRecordSelect = `SELECT s.id, s.motorcycle_id, s.user_id, s.date, s.km, s.actions, s.spareparts,
		s.notes, s.cost, s.created_at, m.brand, m.model, m.plate_number, m.current_km
	FROM service_records s
	JOIN motorcycles m ON m.id = s.motorcycle_id`

func (r *ServiceRecordRepository) GetServiceRecordsByUserID(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.ServiceRecord, error) {
	query := serviceRecordSelect + `
	WHERE s.user_id = $1 AND ($2::uuid IS NULL OR s.motorcycle_id = $2)
	ORDER BY s.date DESC, s.created_at DESC`

	return r.query(ctx, query, userID, nullableUUID(motorcycleID))
}

func (r *ServiceRecordRepository) GetRecentServiceRecords(ctx context.Context, motorcycleID uuid.UUID, limit int) ([]*domain.ServiceRecord, error) {
	query := serviceRecordSelect + `
	WHERE s.motorcycle_id = $1
	ORDER BY s.date DESC, s.created_at DESC
	LIMIT $2`

	return r.query(ctx, query, motorcycleID, limit)
}

func (r *ServiceRecordRepository) query(ctx context.Context, query string, args ...any) ([]*domain.ServiceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*domain.ServiceRecord{}
	for rows.Next() {
		record := &domain.ServiceRecord{Motorcycle: &domain.MotorcycleSummary{}}
		err := rows.Scan(
			&record.ID,
			&record.MotorcycleID,
			&record.UserID,
			&record.Date,
			&record.Km,
			pq.Array(&record.Actions),
			pq.Array(&record.Spareparts),
			&record.Notes,
			&record.Cost,
			&record.CreatedAt,
			&record.Motorcycle.Brand,
			&record.Motorcycle.Model,
			&record.Motorcycle.PlateNumber,
			&record.Motorcycle.CurrentKm,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// nullableUUID lets an optional filter be passed as a single query argument.
func nullableUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}
