// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
)

// minioAttachmentStorage writes attachments to an S3-compatible bucket.
type minioAttachmentStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewMinioAttachmentStorage connects to the bucket, creating it when absent.
func NewMinioAttachmentStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (AttachmentStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created attachment bucket")
	}

	return &minioAttachmentStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: objectsPublicURL(cfg),
		logger:    log,
	}, nil
}

func (m *minioAttachmentStorage) PutAttachment(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := m.client.PutObject(ctx, m.bucket, key, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*minioAttachmentStorage.PutAttachment").
			Str("key", key).
			Msg("failed to upload attachment")
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	logger.FromContext(ctx).Debug().Str("key", key).Str("etag", info.ETag).Msg("attachment uploaded")
	return joinPublicURL(m.publicURL, m.bucket+"/"+key), nil
}

func (m *minioAttachmentStorage) AttachmentKey(publicURL string) (string, bool) {
	return keyFromPublicURL(m.publicURL, m.bucket, publicURL)
}

func objectsPublicURL(cfg config.Objects) string {
	if cfg.PublicURL != "" {
		return cfg.PublicURL
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint
}

// joinPublicURL appends an escaped object path to base.
func joinPublicURL(base, objectPath string) string {
	escaped := (&url.URL{Path: strings.TrimLeft(objectPath, "/")}).EscapedPath()
	return strings.TrimRight(base, "/") + "/" + escaped
}

// keyFromPublicURL reverses joinPublicURL for URLs below base/root.
func keyFromPublicURL(base, root, raw string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/" + root + "/"
	escaped, ok := strings.CutPrefix(raw, prefix)
	if !ok || escaped == "" || strings.ContainsAny(escaped, "?#") {
		return "", false
	}

	key, err := url.PathUnescape(escaped)
	if err != nil || path.Clean(key) != key || strings.HasPrefix(key, "/") || key == ".." || strings.HasPrefix(key, "../") {
		return "", false
	}
	return key, true
}
