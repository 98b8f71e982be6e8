package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, domain.AdTable, cfg.Ads.TableName)
	assert.Equal(t, domain.AdBucket, cfg.Ads.BucketName)
	assert.Equal(t, domain.AdTopic, cfg.Ads.Topic)
	assert.Equal(t, RecordStoreMemory, cfg.Backends.RecordStore)
	assert.Equal(t, MediaStoreFilesystem, cfg.Backends.MediaStore)
	assert.Equal(t, PublisherMemory, cfg.Backends.EventPublisher)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Startup.RetryDelay)
	assert.False(t, cfg.LocalDeployment)
	assert.True(t, cfg.S3.UseSSL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ADS_TABLE_NAME", "test-table")
	t.Setenv("ADS_TOPIC", "arn:aws:sns:us-east-1:000000000000:ads")
	t.Setenv("RECORD_STORE", RecordStoreDynamoDB)
	t.Setenv("EVENT_PUBLISHER", PublisherKafka)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "test-table", cfg.Ads.TableName)
	assert.Equal(t, "arn:aws:sns:us-east-1:000000000000:ads", cfg.Ads.Topic)
	assert.Equal(t, RecordStoreDynamoDB, cfg.Backends.RecordStore)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfig_LocalDeployment(t *testing.T) {
	t.Setenv("AWS_SAM_LOCAL", "true")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.LocalDeployment)
	assert.Equal(t, LocalRegion, cfg.AWS.Region)
	assert.Equal(t, LocalDynamoDBEndpoint, cfg.AWS.DynamoDBEndpoint)
	assert.Equal(t, LocalStackEndpoint, cfg.AWS.SNSEndpoint)
	assert.Equal(t, LocalStackS3Host, cfg.S3.Endpoint)
	assert.True(t, cfg.S3.PathStyle)
	assert.False(t, cfg.S3.UseSSL)
	assert.Equal(t, "test", cfg.S3.AccessKey)
}

func TestApplyLocalDeployment_KeepsExplicitEndpoints(t *testing.T) {
	cfg := &Config{LocalDeployment: true}
	cfg.AWS.DynamoDBEndpoint = "http://localhost:8000"
	cfg.S3.AccessKey, cfg.S3.SecretKey = "minio", "minio123"

	cfg.ApplyLocalDeployment()

	assert.Equal(t, "http://localhost:8000", cfg.AWS.DynamoDBEndpoint)
	assert.Equal(t, "minio", cfg.S3.AccessKey)
}

func TestApplyLocalDeployment_KeepsExplicitS3Endpoint(t *testing.T) {
	cfg := &Config{LocalDeployment: true}
	cfg.S3.Endpoint = "minio:9000"
	cfg.S3.UseSSL = true

	cfg.ApplyLocalDeployment()

	assert.Equal(t, "minio:9000", cfg.S3.Endpoint)
	assert.True(t, cfg.S3.UseSSL)
	assert.False(t, cfg.S3.PathStyle)
	assert.Equal(t, LocalRegion, cfg.AWS.Region)
}

func TestApplyLocalDeployment_Disabled(t *testing.T) {
	cfg := &Config{}
	cfg.S3.Endpoint = AWSS3Endpoint

	cfg.ApplyLocalDeployment()

	assert.Equal(t, AWSS3Endpoint, cfg.S3.Endpoint)
	assert.Empty(t, cfg.AWS.DynamoDBEndpoint)
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	t.Setenv("RECORD_STORE", "cassandra")

	_, err := LoadConfig("")

	assert.ErrorContains(t, err, "RECORD_STORE")
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ads:
  table_name: yaml-table
backends:
  record_store: sqlite
sqlite:
  path: /tmp/ads.db
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml-table", cfg.Ads.TableName)
	assert.Equal(t, RecordStoreSQLite, cfg.Backends.RecordStore)
	assert.Equal(t, "/tmp/ads.db", cfg.SQLite.Path)
	// Lo no indicado en el fichero toma el valor por defecto
	assert.Equal(t, domain.AdTopic, cfg.Ads.Topic)
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("ADS_TABLE_NAME", "env-table")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-table", cfg.Ads.TableName)
}
