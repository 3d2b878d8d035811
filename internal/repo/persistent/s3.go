package persistent

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Background-Remover/pkg/s3client"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3ArtifactRepo struct {
	*s3client.S3Client
	bucket string
}

func NewS3ArtifactRepo(s3c *s3client.S3Client, bucket string) *S3ArtifactRepo {
	return &S3ArtifactRepo{s3c, bucket}
}

func (r *S3ArtifactRepo) Put(ctx context.Context, key string, data []byte, contentType string, tags map[string]string) error {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		Metadata:      tags,
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		return fmt.Errorf("S3ArtifactRepo - Put - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *S3ArtifactRepo) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := r.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("S3ArtifactRepo - SignedURL - r.Presign.PresignGetObject: %w", err)
	}

	return req.URL, nil
}

func (r *S3ArtifactRepo) Location(key string) string {
	return fmt.Sprintf("s3://%s/%s", r.bucket, key)
}
