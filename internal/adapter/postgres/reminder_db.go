package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

const reminderNotFound = "Reminder tidak ditemukan"

type ReminderRepository struct {
	db *sql.DB
}

func NewReminderRepository(db *sql.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

const reminderSelect = `SELECT r.id, r.motorcycle_id, r.type, r.due_km, r.due_date, r.is_completed, r.description,
		r.created_at, r.updated_at, m.brand, m.model, m.plate_number, m.current_km
	FROM reminders r
	JOIN motorcycles m ON m.id = r.motorcycle_id`

func scanReminder(row rowScanner) (*domain.Reminder, error) {
	reminder := &domain.Reminder{Motorcycle: &domain.MotorcycleSummary{}}
	var dueKm sql.NullInt64
	var dueDate sql.NullTime
	err := row.Scan(
		&reminder.ID,
		&reminder.MotorcycleID,
		&reminder.Type,
		&dueKm,
		&dueDate,
		&reminder.IsCompleted,
		&reminder.Description,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
		&reminder.Motorcycle.Brand,
		&reminder.Motorcycle.Model,
		&reminder.Motorcycle.PlateNumber,
		&reminder.Motorcycle.CurrentKm,
	)
	if err != nil {
		return nil, err
	}
	if dueKm.Valid {
		km := int(dueKm.Int64)
		reminder.DueKm = &km
	}
	if dueDate.Valid {
		reminder.DueDate = &dueDate.Time
	}
	return reminder, nil
}

func (r *ReminderRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := []*domain.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reminders, nil
}

type execQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertReminder(ctx context.Context, q execQuerier, reminder *domain.Reminder) error {
	query := `INSERT INTO reminders (id, motorcycle_id, type, due_km, due_date, is_completed, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := q.QueryRowContext(ctx, query,
		reminder.ID,
		reminder.MotorcycleID,
		reminder.Type,
		reminder.DueKm,
		reminder.DueDate,
		reminder.IsCompleted,
		reminder.Description,
	).Scan(&reminder.CreatedAt, &reminder.UpdatedAt)
	return mapError(err, motorcycleNotFound)
}

func (r *ReminderRepository) CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if err := insertReminder(ctx, r.db, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *ReminderRepository) GetReminderByID(ctx context.Context, reminderID uuid.UUID) (*domain.Reminder, error) {
	reminder, err := scanReminder(r.db.QueryRowContext(ctx, reminderSelect+` WHERE r.id = $1`, reminderID))
	if err != nil {
		return nil, mapError(err, reminderNotFound)
	}
	return reminder, nil
}

func (r *ReminderRepository) GetReminders(ctx context.Context, filter domain.ReminderFilter) ([]*domain.Reminder, error) {
	query := reminderSelect + `
	WHERE m.user_id = $1
		AND ($2::uuid IS NULL OR r.motorcycle_id = $2)
		AND (NOT $3 OR r.is_completed = FALSE)
	ORDER BY r.created_at ASC`

	return r.list(ctx, query, filter.UserID, nullableUUID(filter.MotorcycleID), filter.ActiveOnly)
}

func (r *ReminderRepository) GetOpenRemindersByMotorcycleID(ctx context.Context, motorcycleID uuid.UUID) ([]*domain.Reminder, error) {
	query := reminderSelect + `
	WHERE r.motorcycle_id = $1 AND r.is_completed = FALSE
	ORDER BY r.created_at ASC`

	return r.list(ctx, query, motorcycleID)
}

func (r *ReminderRepository) SetReminderCompleted(ctx context.Context, reminderID uuid.UUID, completed bool) (*domain.Reminder, error) {
	query := `UPDATE reminders SET is_completed = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, completed, reminderID)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, domain.NewNotFoundError(reminderNotFound)
	}
	return r.GetReminderByID(ctx, reminderID)
}

func (r *ReminderRepository) DeleteReminder(ctx context.Context, reminderID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, reminderID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(reminderNotFound)
	}
	return nil
}

// ReplaceOpenKmReminder locks the motorcycle row so concurrent postings for
// the same motorcycle replace the open km reminder one after another.
func (r *ReminderRepository) ReplaceOpenKmReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin reminder tx: %w", err)
	}
	defer tx.Rollback()

	summary := &domain.MotorcycleSummary{}
	err = tx.QueryRowContext(ctx,
		`SELECT brand, model, plate_number, current_km FROM motorcycles WHERE id = $1 FOR UPDATE`,
		reminder.MotorcycleID,
	).Scan(&summary.Brand, &summary.Model, &summary.PlateNumber, &summary.CurrentKm)
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM reminders WHERE motorcycle_id = $1 AND type = $2 AND is_completed = FALSE`,
		reminder.MotorcycleID, domain.KmBased,
	)
	if err != nil {
		return nil, fmt.Errorf("delete open km reminders: %w", err)
	}

	if err := insertReminder(ctx, tx, reminder); err != nil {
		return nil, fmt.Errorf("insert km reminder: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reminder tx: %w", err)
	}

	reminder.Motorcycle = summary
	return reminder, nil
}
