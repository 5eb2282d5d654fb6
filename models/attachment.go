// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// AttachmentUpload is a file to be stored alongside an idea.
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Attachment is the durable reference returned after a successful upload.
type Attachment struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// AttachmentKey returns the object key for a file uploaded by userID at the
// given instant: {user_id}/{unix_millis}.{ext}. Files without an extension
// are stored without one.
func AttachmentKey(userID, fileName string, at time.Time) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		return fmt.Sprintf("%s/%d", userID, at.UnixMilli())
	}
	return fmt.Sprintf("%s/%d.%s", userID, at.UnixMilli(), ext)
}
