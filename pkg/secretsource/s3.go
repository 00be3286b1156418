package secretsource

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// maxS3SecretSize caps how much of an object is read as a secret.
const maxS3SecretSize = 64 << 10

// S3Client is the subset of *s3.Client used by S3.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config locates the secret object.
type S3Config struct {
	Bucket         string `env:"TOKEN_SECRET_S3_BUCKET"`
	Key            string `env:"TOKEN_SECRET_S3_KEY"`
	Region         string `env:"TOKEN_SECRET_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"TOKEN_SECRET_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"TOKEN_SECRET_S3_SECRET_ACCESS_KEY"`
	Endpoint       string `env:"TOKEN_SECRET_S3_ENDPOINT"` // for S3-compatible services
	ForcePathStyle bool   `env:"TOKEN_SECRET_S3_FORCE_PATH_STYLE"`
}

// S3 reads the secret object on every call.
type S3 struct {
	client S3Client
	bucket string
	key    string
}

// NewS3 creates a source reading bucket/key through client.
func NewS3(client S3Client, bucket, key string) (*S3, error) {
	if client == nil || bucket == "" || key == "" {
		return nil, ErrInvalidConfig
	}
	return &S3{client: client, bucket: bucket, key: key}, nil
}

// NewS3FromConfig builds an AWS client from cfg and the default credential
// chain, preferring static credentials when both key fields are set.
func NewS3FromConfig(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" || cfg.Key == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return NewS3(client, cfg.Bucket, cfg.Key)
}

func (s *S3) Provide(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrSecretNotFound
		}
		return nil, errors.Join(ErrUnavailable, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxS3SecretSize+1))
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	if len(data) > maxS3SecretSize {
		return nil, fmt.Errorf("%w: object larger than %d bytes", ErrUnavailable, maxS3SecretSize)
	}
	if len(data) == 0 {
		return nil, ErrEmptySecret
	}
	return data, nil
}

func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return true
		}
	}
	return false
}
