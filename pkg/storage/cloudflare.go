package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	internalConfig "github.com/mystfest/registration-backend/internal/config"
)

// CloudflareStorage keeps uploaded identity documents in an R2 bucket
// served from a public URL.
type CloudflareStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewCloudflareStorage(cfg *internalConfig.Config) (*CloudflareStorage, error) {
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &CloudflareStorage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.R2.Bucket,
		publicURL: cfg.R2.PublicURL,
	}, nil
}

func (s *CloudflareStorage) Upload(key string, src io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}

func (s *CloudflareStorage) Delete(key string) error {
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from R2: %w", err)
	}
	return nil
}

func (s *CloudflareStorage) PublicURL(key string) string {
	return s.publicURL + "/" + key
}
