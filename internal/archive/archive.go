package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"cryptoetl/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Archiver keeps the untouched API payload of a run
type Archiver interface {
	Archive(ctx context.Context, runID uuid.UUID, fetchedAt time.Time, body []byte) (string, error)
}

// PutObjectAPI is the part of the S3 client the archiver uses
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type NoopArchiver struct{}

func (NoopArchiver) Archive(ctx context.Context, runID uuid.UUID, fetchedAt time.Time, body []byte) (string, error) {
	return "", nil
}

type S3Archiver struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

// New returns a NoopArchiver unless archiving is enabled
func New(ctx context.Context, cfg config.ArchiveConfig) (Archiver, error) {
	if !cfg.Enabled {
		return NoopArchiver{}, nil
	}
	return NewS3Archiver(ctx, cfg)
}

func NewS3Archiver(ctx context.Context, cfg config.ArchiveConfig) (*S3Archiver, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archiver{
		Client: client,
		Bucket: cfg.Bucket,
		Prefix: cfg.Prefix,
	}, nil
}

// ObjectKey partitions archived payloads by UTC day
func ObjectKey(prefix string, runID uuid.UUID, fetchedAt time.Time) string {
	return path.Join(
		prefix,
		"dt="+fetchedAt.UTC().Format("2006-01-02"),
		runID.String()+".json",
	)
}

func (a *S3Archiver) Archive(ctx context.Context, runID uuid.UUID, fetchedAt time.Time, body []byte) (string, error) {
	key := ObjectKey(a.Prefix, runID, fetchedAt)

	_, err := a.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"run-id":     runID.String(),
			"fetched-at": fetchedAt.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to put s3://%s/%s: %w", a.Bucket, key, err)
	}

	return key, nil
}
