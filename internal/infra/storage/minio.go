package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Store struct {
	client     *minio.Client
	bucketName string
	region     string
	presignTTL time.Duration
}

// New buat koneksi MinIO dan pastikan bucket ada.
// When presignTTL > 0, Put returns presigned GET URLs instead of plain object URLs.
func New(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool, presignTTL time.Duration) (*Store, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", bucket, err)
		}
	}

	return &Store{client: cli, bucketName: bucket, region: region, presignTTL: presignTTL}, nil
}

// Put implementasi report.Archive
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	if s.presignTTL > 0 {
		u, err := s.client.PresignedGetObject(ctx, s.bucketName, key, s.presignTTL, url.Values{})
		if err != nil {
			return "", err
		}
		return u.String(), nil
	}

	// URL publik (jika bucket public)
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucketName, key), nil
}
