package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/autofounder/deck-backend/config"
)

const (
	pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	presignExpiry   = 15 * time.Minute
)

// Uploader stores finished export artifacts in an S3-compatible bucket
// and hands out presigned download URLs.
type Uploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewUploader builds an uploader from config. Returns nil (uploads
// disabled) when no bucket is configured.
func NewUploader(ctx context.Context, cfg appconfig.S3Config) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true // MinIO
		}
	})

	return &Uploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}, nil
}

// objectKey shards exports by date so buckets stay browsable.
func objectKey(deckID, filename string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("exports/%d/%d/%d/%s/%s", d.Year(), d.Month(), d.Day(), deckID, filename)
}

// Upload stores the artifact and returns a presigned GET URL for it.
func (u *Uploader) Upload(ctx context.Context, deckID, filename string, data []byte) (string, error) {
	key := objectKey(deckID, filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(pptxContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload export %s: %w", key, err)
	}

	req, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign export %s: %w", key, err)
	}

	return req.URL, nil
}
