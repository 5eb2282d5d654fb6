// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eco-ideas/internal/logger"
)

func TestFileAttachmentStorage_PutAttachment(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileAttachmentStorage(dir, "http://localhost:8080/", logger.Nop())
	require.NoError(t, err)

	url, err := storage.PutAttachment(context.Background(), "u-1/1700000000000.pdf", strings.NewReader("hello"), 5, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/u-1/1700000000000.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "u-1", "1700000000000.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = storage.PutAttachment(context.Background(), "u-1/1700000000000.pdf", strings.NewReader("again"), 5, "")
	assert.ErrorIs(t, err, ErrUploadingObject, "existing keys are never overwritten")
}

func TestFileAttachmentStorage_RejectsEscapingKeys(t *testing.T) {
	storage, err := NewFileAttachmentStorage(t.TempDir(), "http://localhost", logger.Nop())
	require.NoError(t, err)

	_, err = storage.PutAttachment(context.Background(), "../outside.txt", strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, ErrUploadingObject)
}

func TestFileAttachmentStorage_AttachmentKey(t *testing.T) {
	storage, err := NewFileAttachmentStorage(t.TempDir(), "http://localhost:8080/", logger.Nop())
	require.NoError(t, err)

	url, err := storage.PutAttachment(context.Background(), "u-1/1700000000000 plano.pdf", strings.NewReader("x"), 1, "")
	require.NoError(t, err)

	key, ok := storage.AttachmentKey(url)
	require.True(t, ok)
	assert.Equal(t, "u-1/1700000000000 plano.pdf", key)

	_, ok = storage.AttachmentKey("https://evil.example.com/files/u-1/1.pdf")
	assert.False(t, ok)
}

func Test_keyFromPublicURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantKey string
		wantOK  bool
	}{
		{name: "issued url", raw: "https://cdn.example.com/idea-attachments/u-1/1.png", wantKey: "u-1/1.png", wantOK: true},
		{name: "escaped", raw: "https://cdn.example.com/idea-attachments/u%201/a%20b.png", wantKey: "u 1/a b.png", wantOK: true},
		{name: "other host", raw: "https://evil.example.com/idea-attachments/u-1/1.png"},
		{name: "other bucket", raw: "https://cdn.example.com/other/u-1/1.png"},
		{name: "host prefix trick", raw: "https://cdn.example.com.evil.io/idea-attachments/u-1/1.png"},
		{name: "bare root", raw: "https://cdn.example.com/idea-attachments/"},
		{name: "query", raw: "https://cdn.example.com/idea-attachments/u-1/1.png?x=1"},
		{name: "traversal", raw: "https://cdn.example.com/idea-attachments/u-2/../u-1/1.png"},
		{name: "escaped traversal", raw: "https://cdn.example.com/idea-attachments/%2e%2e/secret"},
		{name: "not a url", raw: "javascript:alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := keyFromPublicURL("https://cdn.example.com/", "idea-attachments", tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func Test_joinPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/idea-attachments/u-1/1.png",
		joinPublicURL("https://cdn.example.com/", "idea-attachments/u-1/1.png"))
	assert.Equal(t, "http://h/b/u%201/a%20b.png", joinPublicURL("http://h", "/b/u 1/a b.png"))
}
