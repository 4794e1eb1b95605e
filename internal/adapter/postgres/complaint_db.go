package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type ComplaintRepository struct {
	db *sql.DB
}

func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// CreateComplaint writes the complaint and its ordered recommendations in one
// transaction.
func (r *ComplaintRepository) CreateComplaint(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin complaint tx: %w", err)
	}
	defer tx.Rollback()

	symptoms := complaint.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	insert := `INSERT INTO complaints (id, motorcycle_id, user_id, description, symptoms, diagnosis)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err = tx.QueryRowContext(ctx, insert,
		complaint.ID,
		complaint.MotorcycleID,
		complaint.UserID,
		complaint.Description,
		pq.Array(symptoms),
		complaint.Diagnosis,
	).Scan(&complaint.CreatedAt)
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}

	insertRec := `INSERT INTO complaint_recommendations (complaint_id, position, action, priority, estimated_cost)
		VALUES ($1, $2, $3, $4, $5)`
	for i, rec := range complaint.Recommendations {
		if _, err := tx.ExecContext(ctx, insertRec, complaint.ID, i, rec.Action, rec.Priority, rec.EstimatedCost); err != nil {
			return nil, mapError(err, motorcycleNotFound)
		}
	}

	summary := &domain.MotorcycleSummary{}
	err = tx.QueryRowContext(ctx,
		`SELECT brand, model, plate_number, current_km FROM motorcycles WHERE id = $1`,
		complaint.MotorcycleID,
	).Scan(&summary.Brand, &summary.Model, &summary.PlateNumber, &summary.CurrentKm)
	if err != nil {
		return nil, mapError(err, motorcycleNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit complaint tx: %w", err)
	}

	complaint.Symptoms = symptoms
	complaint.Motorcycle = summary
	return complaint, nil
}

func (r *ComplaintRepository) GetComplaintsByUserID(ctx context.Context, userID uuid.UUID, motorcycleID *uuid.UUID) ([]*domain.Complaint, error) {
	query := `SELECT c.id, c.motorcycle_id, c.user_id, c.description, c.symptoms, c.diagnosis, c.created_at,
			m.brand, m.model, m.plate_number, m.current_km
		FROM complaints c
		JOIN motorcycles m ON m.id = c.motorcycle_id
		WHERE c.user_id = $1 AND ($2::uuid IS NULL OR c.motorcycle_id = $2)
		ORDER BY c.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, nullableUUID(motorcycleID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := []*domain.Complaint{}
	byID := map[uuid.UUID]*domain.Complaint{}
	ids := []uuid.UUID{}
	for rows.Next() {
		c := &domain.Complaint{Motorcycle: &domain.MotorcycleSummary{}}
		err := rows.Scan(
			&c.ID,
			&c.MotorcycleID,
			&c.UserID,
			&c.Description,
			pq.Array(&c.Symptoms),
			&c.Diagnosis,
			&c.CreatedAt,
			&c.Motorcycle.Brand,
			&c.Motorcycle.Model,
			&c.Motorcycle.PlateNumber,
			&c.Motorcycle.CurrentKm,
		)
		if err != nil {
			return nil, err
		}
		c.Recommendations = []*domain.Recommendation{}
		complaints = append(complaints, c)
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return complaints, nil
	}

	if err := r.loadRecommendations(ctx, ids, byID); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepository) loadRecommendations(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]*domain.Complaint) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query := `SELECT complaint_id, action, priority, estimated_cost
		FROM complaint_recommendations
		WHERE complaint_id = ANY($1::uuid[])
		ORDER BY complaint_id, position`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(keys))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var complaintID uuid.UUID
		rec := &domain.Recommendation{}
		if err := rows.Scan(&complaintID, &rec.Action, &rec.Priority, &rec.EstimatedCost); err != nil {
			return err
		}
		if c, ok := byID[complaintID]; ok {
			c.Recommendations = append(c.Recommendations, rec)
		}
	}
	return rows.Err()
}
