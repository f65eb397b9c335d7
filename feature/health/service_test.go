package health

import (
	"context"
	"testing"

	"object-storage/core/storage"
	"object-storage/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testCfg = storage.Config{Bucket: "assets", Region: "us-east-1", Prefix: "avatars"}

func TestCheck(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		svc := NewService(mocks.NewMemoryClient("assets"), testCfg, zap.NewNop())
		report, err := svc.Check(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Equal(t, "avatars", report.Prefix)
	})

	t.Run("Missing", func(t *testing.T) {
		svc := NewService(mocks.NewMemoryClient(), testCfg, zap.NewNop())
		report, err := svc.Check(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Exists)
	})

	t.Run("Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, assert.AnError)

		_, err := NewService(mockClient, testCfg, zap.NewNop()).Check(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestFix(t *testing.T) {
	t.Run("CreatesBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "assets", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		report, err := NewService(mockClient, testCfg, zap.NewNop()).Fix(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.True(t, report.Fixed)
		mockClient.AssertNumberOfCalls(t, "MakeBucket", 1)
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)

		report, err := NewService(mockClient, testCfg, zap.NewNop()).Fix(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Fixed)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreateFails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "assets", mock.Anything).Return(assert.AnError)

		_, err := NewService(mockClient, testCfg, zap.NewNop()).Fix(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}
