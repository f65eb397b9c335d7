package mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/minio/minio-go/v7"
)

// Object is a blob held by MemoryClient.
type Object struct {
	Data        []byte
	ContentType string
}

// MemoryClient is an in-memory storage.Client with S3 semantics for
// missing keys and buckets.
type MemoryClient struct {
	mu      sync.RWMutex
	buckets map[string]map[string]Object
}

// NewMemoryClient creates a MemoryClient with the given buckets already present.
func NewMemoryClient(buckets ...string) *MemoryClient {
	c := &MemoryClient{buckets: make(map[string]map[string]Object)}
	for _, b := range buckets {
		c.buckets[b] = make(map[string]Object)
	}
	return c
}

// Object returns the stored blob, if any.
func (c *MemoryClient) Object(bucketName, objectName string) (Object, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	obj, ok := c.buckets[bucketName][objectName]
	return obj, ok
}

func (c *MemoryClient) BucketExists(_ context.Context, bucketName string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.buckets[bucketName]
	return ok, nil
}

func (c *MemoryClient) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.buckets[bucketName]; ok {
		return minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou", StatusCode: http.StatusConflict, BucketName: bucketName}
	}
	c.buckets[bucketName] = make(map[string]Object)
	return nil
}

func (c *MemoryClient) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	var data []byte
	var err error
	if objectSize >= 0 {
		data, err = io.ReadAll(io.LimitReader(reader, objectSize))
		if err == nil && int64(len(data)) != objectSize {
			err = fmt.Errorf("unexpected EOF: read %d of %d bytes", len(data), objectSize)
		}
	} else {
		data, err = io.ReadAll(reader)
	}
	if err != nil {
		return minio.UploadInfo{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.buckets[bucketName]
	if !ok {
		return minio.UploadInfo{}, noSuchBucket(bucketName)
	}
	bucket[objectName] = Object{Data: data, ContentType: opts.ContentType}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(data))}, nil
}

func (c *MemoryClient) GetObject(_ context.Context, bucketName, objectName string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bucket, ok := c.buckets[bucketName]
	if !ok {
		return nil, noSuchBucket(bucketName)
	}
	obj, ok := bucket[objectName]
	if !ok {
		return nil, minio.ErrorResponse{
			Code:       "NoSuchKey",
			Message:    "The specified key does not exist.",
			StatusCode: http.StatusNotFound,
			BucketName: bucketName,
			Key:        objectName,
		}
	}
	return io.NopCloser(bytes.NewReader(obj.Data)), nil
}

func (c *MemoryClient) RemoveObject(_ context.Context, bucketName, objectName string, _ minio.RemoveObjectOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.buckets[bucketName]
	if !ok {
		return noSuchBucket(bucketName)
	}
	delete(bucket, objectName)
	return nil
}

func noSuchBucket(bucketName string) error {
	return minio.ErrorResponse{
		Code:       "NoSuchBucket",
		Message:    "The specified bucket does not exist",
		StatusCode: http.StatusNotFound,
		BucketName: bucketName,
	}
}
