// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/models"
)

func multipartRequest(t *testing.T, field, fileName string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/attachments", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+userToken)
	return req
}

func TestUploadAttachment(t *testing.T) {
	var (
		gotUser   string
		gotUpload models.AttachmentUpload
		gotBody   string
	)
	services := newTestServices()
	services.AttachmentService = &fakeAttachmentService{
		uploadFn: func(_ context.Context, userID string, upload models.AttachmentUpload) (models.Attachment, error) {
			gotUser, gotUpload = userID, upload
			b, _ := io.ReadAll(upload.Body)
			gotBody = string(b)
			return models.Attachment{URL: "http://files.local/files/u-1/1.pdf", FileName: upload.FileName}, nil
		},
	}
	router := newTestRouter(services)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, multipartRequest(t, "file", "plano.pdf", []byte("%PDF-1.4")))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	attachment := decodeBody[models.Attachment](t, rr)
	assert.Equal(t, "http://files.local/files/u-1/1.pdf", attachment.URL)
	assert.Equal(t, "plano.pdf", attachment.FileName)

	assert.Equal(t, "u-1", gotUser)
	assert.Equal(t, "plano.pdf", gotUpload.FileName)
	assert.EqualValues(t, len("%PDF-1.4"), gotUpload.Size)
	assert.Equal(t, "%PDF-1.4", gotBody)
}

func TestUploadAttachment_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		req         func(t *testing.T) *http.Request
		uploadErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name: "over the size limit",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "big.bin", bytes.Repeat([]byte("x"), 4<<10))
			},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: app.MsgFileTooLarge,
		},
		{
			name: "wrong field name",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "document", "a.txt", []byte("a"))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/attachments", strings.NewReader(`{"a":1}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+userToken)
				return req
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name: "storage failure",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "a.txt", []byte("a"))
			},
			uploadErr:   store.ErrUploadingObject,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgUploadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AttachmentService = &fakeAttachmentService{
				uploadFn: func(context.Context, string, models.AttachmentUpload) (models.Attachment, error) {
					if tt.uploadErr != nil {
						return models.Attachment{}, tt.uploadErr
					}
					return models.Attachment{URL: "u"}, nil
				},
			}

			rr := httptest.NewRecorder()
			newTestRouter(services).ServeHTTP(rr, tt.req(t))

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantMessage, errorBody(t, rr))
		})
	}
}
