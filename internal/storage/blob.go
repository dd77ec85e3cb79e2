// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/goshawklogistics/goshawk-go/internal/config"
	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// blobPrefix namespaces every object this application writes to the bucket.
const blobPrefix = "uploads/"

// blobAPI is the slice of the S3 client the store uses. *s3.Client
// satisfies it; tests substitute an in-memory fake.
type blobAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// BlobStore keeps images in an S3-compatible bucket under the uploads/
// prefix. Objects are public; the store hands out the canonical public URL
// at upload time and resolves deletes from that same URL.
type BlobStore struct {
	client    blobAPI
	bucket    string
	publicURL string
}

// NewBlobStore builds a blob store from the application configuration. The
// endpoint override makes it work against MinIO and other S3-compatible
// services as well as AWS itself.
func NewBlobStore(ctx context.Context, cfg *config.Config) (*BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.BlobRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.BlobAccessKey, cfg.BlobSecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading blob config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BlobEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BlobEndpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimSuffix(cfg.BlobPublicURL, "/")
	if publicURL == "" {
		publicURL = strings.TrimSuffix(cfg.BlobEndpoint, "/") + "/" + cfg.BlobBucket
	}

	return &BlobStore{client: client, bucket: cfg.BlobBucket, publicURL: publicURL}, nil
}

// Put uploads image bytes under uploads/{filename} and returns the public URL.
func (s *BlobStore) Put(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := blobPrefix + filename
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading blob: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

// List returns the public URLs of every image object under the uploads/
// prefix. Objects without an image extension are skipped.
func (s *BlobStore) List(ctx context.Context) ([]string, error) {
	urls := []string{}
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(blobPrefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing blobs: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if model.HasImageExtension(key) {
				urls = append(urls, s.publicURL+"/"+key)
			}
		}
	}
	return urls, nil
}

// Delete removes the object behind a public URL previously returned by Put.
// Returns ErrNotFound when the object does not exist: DeleteObject succeeds
// for absent keys, so the key is checked first to keep repeated deletes from
// reporting success.
func (s *BlobStore) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(url, s.publicURL), "/")
	if key == "" || key == url {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, url)
		}
		return fmt.Errorf("checking blob: %w", err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting blob: %w", err)
	}
	return nil
}

// Owns reports whether url points into this store's bucket.
func (s *BlobStore) Owns(url string) bool {
	return strings.HasPrefix(url, "http") && strings.HasPrefix(url, s.publicURL+"/")
}
