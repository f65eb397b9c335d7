package objects

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"object-storage/core/storage"
	"object-storage/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, withCatalog bool) (*Service, *mocks.MemoryClient, sqlmock.Sqlmock) {
	client := mocks.NewMemoryClient("assets")
	cfg := storage.Config{Bucket: "assets", Prefix: "avatars"}
	store := storage.NewService(client, cfg, zap.NewNop())

	if !withCatalog {
		return NewService(store, cfg, nil, zap.NewNop()), client, nil
	}
	db, sqlMock := setupMockDB(t)
	return NewService(store, cfg, NewCatalog(db), zap.NewNop()), client, sqlMock
}

func TestService_SaveRecordsMetadata(t *testing.T) {
	svc, client, sqlMock := newTestService(t, true)
	sqlMock.ExpectExec("INSERT INTO `object_records`").
		WithArgs("assets", "avatars/u/1.png", "image/png", int64(4), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec, err := svc.Save(context.Background(), "/u/1.png", strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "avatars/u/1.png", rec.Key)
	assert.Equal(t, int64(4), rec.Size)

	_, ok := client.Object("assets", "avatars/u/1.png")
	assert.True(t, ok)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_CatalogFailureIsNotFatal(t *testing.T) {
	svc, client, sqlMock := newTestService(t, true)
	sqlMock.ExpectExec("INSERT INTO `object_records`").WillReturnError(assert.AnError)

	_, err := svc.Update(context.Background(), "doc.txt", strings.NewReader("x"), 1, "")
	require.NoError(t, err)

	obj, ok := client.Object("assets", "avatars/doc.txt")
	require.True(t, ok)
	assert.Equal(t, DefaultContentType, obj.ContentType)
}

func TestService_LoadContentType(t *testing.T) {
	t.Run("FromCatalog", func(t *testing.T) {
		svc, _, sqlMock := newTestService(t, true)
		sqlMock.ExpectExec("INSERT INTO `object_records`").WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectQuery("SELECT \\* FROM `object_records`").
			WillReturnRows(recordRows().AddRow("assets", "avatars/a.png", "image/png", 3, time.Now()))

		ctx := context.Background()
		_, err := svc.Save(ctx, "a.png", strings.NewReader("png"), 3, "image/png")
		require.NoError(t, err)

		rc, contentType, err := svc.Load(ctx, "a.png")
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, "image/png", contentType)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
	})

	t.Run("WithoutCatalog", func(t *testing.T) {
		svc, _, _ := newTestService(t, false)
		ctx := context.Background()
		_, err := svc.Save(ctx, "a.png", strings.NewReader("png"), 3, "image/png")
		require.NoError(t, err)

		rc, contentType, err := svc.Load(ctx, "a.png")
		require.NoError(t, err)
		rc.Close()
		assert.Equal(t, DefaultContentType, contentType)
	})
}

func TestService_DeleteRemovesMetadata(t *testing.T) {
	svc, _, sqlMock := newTestService(t, true)
	sqlMock.ExpectExec("DELETE FROM `object_records`").
		WithArgs("assets", "avatars/gone.txt").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.Delete(context.Background(), "gone.txt"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	_, _, err := svc.Load(context.Background(), "gone.txt")
	assert.True(t, storage.IsNotFound(err))
}

func TestService_EmptyKey(t *testing.T) {
	svc, _, _ := newTestService(t, false)
	ctx := context.Background()

	_, err := svc.Save(ctx, "/", strings.NewReader(""), 0, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, _, err = svc.Load(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrEmptyKey)
}

func TestService_DescribeWithoutCatalog(t *testing.T) {
	svc, _, _ := newTestService(t, false)
	_, err := svc.Describe(context.Background(), "a.png")
	assert.ErrorIs(t, err, ErrCatalogDisabled)
}
