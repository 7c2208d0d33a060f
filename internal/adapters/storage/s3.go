package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"devevent/internal/domain"
)

// S3Config holds configuration for the S3 compatible asset bucket.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // optional, for S3 compatible hosts such as MinIO or R2
	PublicBaseURL   string // optional, e.g. a CDN in front of the bucket
	AccessKeyID     string
	SecretAccessKey string
}

// s3API is the subset of *s3.Client the asset store calls.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3AssetStore struct {
	client        s3API
	bucket        string
	publicBaseURL string
}

// NewS3AssetStore returns an AssetStore that puts images into the configured bucket and
// serves them from PublicBaseURL, or from the bucket's virtual-hosted URL when unset.
func NewS3AssetStore(cfg S3Config) (domain.AssetStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("asset bucket is required")
	}
	if cfg.Region == "" {
		return nil, errors.New("asset region is required")
	}
	awsCfg := aws.Config{
		Region: cfg.Region,
	}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		if cfg.Endpoint != "" {
			base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}
	return newS3AssetStore(client, cfg.Bucket, base), nil
}

func newS3AssetStore(client s3API, bucket, publicBaseURL string) *s3AssetStore {
	return &s3AssetStore{client: client, bucket: bucket, publicBaseURL: publicBaseURL}
}

func (s *s3AssetStore) Upload(ctx context.Context, folder string, image *domain.ImageUpload) (string, error) {
	if image == nil || image.Body == nil {
		return "", domain.ErrImageRequired
	}
	key := path.Join(folder, uuid.NewString()+imageExtension(image))
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   image.Body,
	}
	if image.ContentType != "" {
		input.ContentType = aws.String(image.ContentType)
	}
	if image.Size > 0 {
		input.ContentLength = aws.Int64(image.Size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload image to s3: %w", err)
	}
	return s.publicBaseURL + "/" + key, nil
}

func (s *s3AssetStore) Delete(ctx context.Context, secureURL string) error {
	key, ok := strings.CutPrefix(secureURL, s.publicBaseURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("asset url %q is not served by bucket %s", secureURL, s.bucket)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from s3: %w", err)
	}
	return nil
}

func imageExtension(image *domain.ImageUpload) string {
	if ext := strings.ToLower(path.Ext(image.Filename)); ext != "" {
		return ext
	}
	if image.ContentType != "" {
		if exts, err := mime.ExtensionsByType(image.ContentType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}
	return ""
}
