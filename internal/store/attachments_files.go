// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/eco-ideas/internal/logger"
)

// FilesRoute is the HTTP path prefix under which the file backend is served.
const FilesRoute = "/files"

// fileAttachmentStorage writes attachments below a local directory that the
// HTTP server exposes under FilesRoute.
type fileAttachmentStorage struct {
	dir       string
	publicURL string
	logger    *logger.Logger
}

// NewFileAttachmentStorage creates dir when needed.
func NewFileAttachmentStorage(dir, publicURL string, log *logger.Logger) (AttachmentStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create attachments dir: %w", err)
	}
	return &fileAttachmentStorage{dir: dir, publicURL: publicURL, logger: log}, nil
}

func (f *fileAttachmentStorage) PutAttachment(ctx context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	path := filepath.Join(f.dir, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(f.dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: key %q escapes attachments dir", ErrUploadingObject, key)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("failed to write attachment")
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	return joinPublicURL(f.publicURL, strings.TrimPrefix(FilesRoute, "/")+"/"+key), nil
}

func (f *fileAttachmentStorage) AttachmentKey(publicURL string) (string, bool) {
	return keyFromPublicURL(f.publicURL, strings.TrimPrefix(FilesRoute, "/"), publicURL)
}

