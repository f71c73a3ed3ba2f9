package readings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO readings").
			WithArgs(uint64(7), uint64(55), uint64(12), uint64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Upsert(context.Background(), Reading{
			SubjectID:         7,
			Humidity:          55,
			MoistureContent:   12,
			StorageConditions: 3,
		})
		assert.NoError(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO readings").
			WillReturnError(errors.New("db error"))

		err := repo.Upsert(context.Background(), Reading{SubjectID: 7})
		assert.Error(t, err)
	})
}

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	cols := []string{"subject_id", "humidity", "moisture_content", "storage_conditions", "updated_at"}

	t.Run("Written Subject", func(t *testing.T) {
		mock.ExpectQuery("SELECT subject_id, humidity, moisture_content").
			WithArgs(uint64(7)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(7, 55, 12, 3, time.Now()))

		r, err := repo.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(55), r.Humidity)
		assert.Equal(t, uint64(12), r.MoistureContent)
		assert.Equal(t, uint64(3), r.StorageConditions)
	})

	t.Run("Never Written Returns Zero Triple", func(t *testing.T) {
		mock.ExpectQuery("SELECT subject_id, humidity, moisture_content").
			WithArgs(uint64(99)).
			WillReturnRows(sqlmock.NewRows(cols))

		r, err := repo.Get(context.Background(), 99)
		require.NoError(t, err)
		assert.Equal(t, uint64(99), r.SubjectID)
		assert.Zero(t, r.Humidity)
		assert.Zero(t, r.MoistureContent)
		assert.Zero(t, r.StorageConditions)
	})
}
