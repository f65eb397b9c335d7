package objects

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"bucket", "object_key", "content_type", "size", "updated_at"})
}

func TestCatalog_Put(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	catalog := NewCatalog(db)

	sqlMock.ExpectExec("INSERT INTO `object_records`").
		WithArgs("assets", "avatars/u/1.png", "image/png", int64(42), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := catalog.Put(context.Background(), &Record{
		Bucket:      "assets",
		Key:         "avatars/u/1.png",
		ContentType: "image/png",
		Size:        42,
	})
	require.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCatalog_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		now := time.Now()
		sqlMock.ExpectQuery("SELECT \\* FROM `object_records` WHERE").
			WillReturnRows(recordRows().AddRow("assets", "a.txt", "text/plain", 5, now))

		rec, err := NewCatalog(db).Get(context.Background(), "assets", "a.txt")
		require.NoError(t, err)
		assert.Equal(t, "text/plain", rec.ContentType)
		assert.Equal(t, int64(5), rec.Size)
		assert.Equal(t, "a.txt", rec.Key)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SELECT \\* FROM `object_records` WHERE").WillReturnRows(recordRows())

		rec, err := NewCatalog(db).Get(context.Background(), "assets", "missing")
		assert.ErrorIs(t, err, ErrNotCataloged)
		assert.Nil(t, rec)
	})

	t.Run("Error", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

		_, err := NewCatalog(db).Get(context.Background(), "assets", "a.txt")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCatalog_Remove(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectExec("DELETE FROM `object_records` WHERE").
		WithArgs("assets", "a.txt").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewCatalog(db).Remove(context.Background(), "assets", "a.txt")
	require.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
