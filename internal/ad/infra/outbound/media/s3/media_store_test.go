package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePutter struct {
	bucket      string
	key         string
	contentType string
	body        []byte
	calls       int
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.calls++
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.bucket, f.key, f.contentType, f.body = bucketName, objectName, opts.ContentType, body
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func TestMediaStore_Store(t *testing.T) {
	putter := &fakePutter{}
	store := newMediaStore(putter, Options{Bucket: "test-bucket"}, zap.NewNop())

	url, err := store.Store(context.Background(), "test-uuid-1234", "aGVsbG8=")

	require.NoError(t, err)
	assert.Equal(t, "https://test-bucket.s3.amazonaws.com/ads/test-uuid-1234.jpg", url)
	assert.Equal(t, "test-bucket", putter.bucket)
	assert.Equal(t, "ads/test-uuid-1234.jpg", putter.key)
	assert.Equal(t, "image/jpeg", putter.contentType)
	assert.Equal(t, []byte("hello"), putter.body)
}

func TestMediaStore_PublicBaseURL(t *testing.T) {
	store := newMediaStore(&fakePutter{}, Options{Bucket: "test-bucket", PublicBaseURL: "http://localhost:4566/test-bucket/"}, zap.NewNop())

	url, err := store.Store(context.Background(), "a1", "aGVsbG8=")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4566/test-bucket/ads/a1.jpg", url)
}

func TestMediaStore_InvalidPayload(t *testing.T) {
	putter := &fakePutter{}
	store := newMediaStore(putter, Options{Bucket: "test-bucket"}, zap.NewNop())

	_, err := store.Store(context.Background(), "a1", "***")

	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Zero(t, putter.calls)
}

func TestMediaStore_BackendFailure(t *testing.T) {
	store := newMediaStore(&fakePutter{err: errors.New("access denied")}, Options{Bucket: "test-bucket"}, zap.NewNop())

	_, err := store.Store(context.Background(), "a1", "aGVsbG8=")

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
