package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/palloncino/storage-server-app-01/internal/product/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestDeleteByIDsCommitsAndReportsPreImages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "img_url"}).
			AddRow(1, "http://localhost/images/a.png").
			AddRow(2, ""),
	)
	mock.ExpectExec(`DELETE FROM "products"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	var preImages []domain.Product
	count, err := repo.DeleteByIDs([]int{1, 2}, func(products []domain.Product) {
		preImages = products
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, preImages, 2)
	assert.Equal(t, "http://localhost/images/a.png", preImages[0].ImgURL)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDsZeroRowsRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "img_url"}),
	)
	mock.ExpectExec(`DELETE FROM "products"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	cleanupCalled := false
	count, err := repo.DeleteByIDs([]int{3}, func([]domain.Product) {
		cleanupCalled = true
	})
	require.ErrorIs(t, err, ErrNoneMatched)
	assert.Zero(t, count)
	assert.False(t, cleanupCalled)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDsStoreErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	storeErr := errors.New("deadlock detected")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "img_url"}).AddRow(1, ""),
	)
	mock.ExpectExec(`DELETE FROM "products"`).WillReturnError(storeErr)
	mock.ExpectRollback()

	cleanupCalled := false
	count, err := repo.DeleteByIDs([]int{1}, func([]domain.Product) {
		cleanupCalled = true
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "deadlock detected")
	assert.Zero(t, count)
	assert.False(t, cleanupCalled)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateByIDReportsAffectedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := repo.UpdateByID(5, map[string]any{"name": "Frame"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
