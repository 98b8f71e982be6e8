package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/davicafu/adsflow/internal/ad/infra/outbound/media"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Options describe cómo llegar al almacenamiento de objetos.
type Options struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	PathStyle     bool
	PublicBaseURL string
}

// objectPutter es el subconjunto del cliente minio que usa el adapter.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MediaStore sube las imágenes de los anuncios a un bucket compatible con S3.
type MediaStore struct {
	client  objectPutter
	bucket  string
	baseURL string
	log     *zap.Logger
}

var _ domain.MediaStore = (*MediaStore)(nil)

// NewMediaStore crea el cliente minio a partir de las opciones.
// Sin claves estáticas se usa la cadena de credenciales de AWS (entorno, IAM).
func NewMediaStore(opts Options, log *zap.Logger) (*MediaStore, error) {
	creds := credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.IAM{},
	})
	if opts.AccessKey != "" {
		creds = credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, "")
	}

	lookup := minio.BucketLookupAuto
	if opts.PathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:        creds,
		Secure:       opts.UseSSL,
		Region:       opts.Region,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", opts.Endpoint, err)
	}

	log.Info("S3 media store ready",
		zap.String("endpoint", opts.Endpoint),
		zap.String("bucket", opts.Bucket),
		zap.Bool("path_style", opts.PathStyle),
	)
	return newMediaStore(client, opts, log), nil
}

func newMediaStore(client objectPutter, opts Options, log *zap.Logger) *MediaStore {
	baseURL := strings.TrimRight(opts.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", opts.Bucket)
	}
	return &MediaStore{client: client, bucket: opts.Bucket, baseURL: baseURL, log: log}
}

// Store decodifica la imagen y la sube a ads/{id}.jpg, sobrescribiendo si ya existe.
func (s *MediaStore) Store(ctx context.Context, id, imageData string) (string, error) {
	data, err := media.DecodeBase64(imageData)
	if err != nil {
		return "", err
	}

	key := media.ObjectKey(id)
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: media.ContentType,
	})
	if err != nil {
		s.log.Error("PutObject failed", zap.String("bucket", s.bucket), zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	s.log.Debug("Image uploaded", zap.String("key", info.Key), zap.String("etag", info.ETag), zap.Int64("size", info.Size))
	return s.baseURL + "/" + key, nil
}
