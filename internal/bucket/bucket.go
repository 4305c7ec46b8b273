package bucket

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrNotConfigured is returned by uploads when no storage credentials are set.
var ErrNotConfigured = errors.New("object storage is not configured")

type Config struct {
	S3AccessKey       string `mapstructure:"s3_access_key"`
	S3SecretAccessKey string `mapstructure:"s3_secret_access_key"`
	S3Endpoint        string `mapstructure:"s3_endpoint"`
	S3BucketName      string `mapstructure:"s3_bucket_name"`
	S3BucketLocation  string `mapstructure:"s3_bucket_location"`
	BaseFolder        string `mapstructure:"base_folder"`
	// PublicBaseURL is prepended to object keys in returned URLs,
	// e.g. a CDN domain in front of the bucket.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// objectPutter is the part of *minio.Client the bucket uses.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Bucket struct {
	Client objectPutter
	*Config
}

// New connects to the S3 compatible storage.
func New(c *Config) (*Bucket, error) {
	cli, err := minio.New(c.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.S3AccessKey, c.S3SecretAccessKey, ""),
		Secure: true,
		Region: c.S3BucketLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create s3 client: %w", err)
	}
	return &Bucket{
		Client: cli,
		Config: c,
	}, nil
}
