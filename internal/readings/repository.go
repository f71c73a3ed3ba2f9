package readings

import (
	"context"
	"database/sql"
)

type Repository interface {
	Upsert(ctx context.Context, r Reading) error
	Get(ctx context.Context, subjectID uint64) (Reading, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, reading Reading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO readings (subject_id, humidity, moisture_content, storage_conditions, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (subject_id)
		DO UPDATE SET humidity = $2, moisture_content = $3, storage_conditions = $4, updated_at = NOW()
	`, reading.SubjectID, reading.Humidity, reading.MoistureContent, reading.StorageConditions)
	return err
}

// Get returns the zero-valued reading for a subject that was never written.
// Absence is not an error.
func (r *repository) Get(ctx context.Context, subjectID uint64) (Reading, error) {
	var reading Reading
	err := r.db.QueryRowContext(ctx, `
		SELECT subject_id, humidity, moisture_content, storage_conditions, updated_at
		FROM readings
		WHERE subject_id = $1
	`, subjectID).
		Scan(&reading.SubjectID, &reading.Humidity, &reading.MoistureContent, &reading.StorageConditions, &reading.UpdatedAt)

	if err == sql.ErrNoRows {
		return Reading{SubjectID: subjectID}, nil
	}
	if err != nil {
		return Reading{}, err
	}
	return reading, nil
}
