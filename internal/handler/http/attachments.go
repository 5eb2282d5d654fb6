// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/models"
)

const (
	attachmentField      = "file"
	multipartMemoryLimit = 8 << 20
)

// uploadAttachment stores the "file" part of a multipart form and answers
// with its durable URL.
func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := userID(w, r)
	if !ok {
		return
	}

	if h.cfg.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Info().Int64("limit", tooLarge.Limit).Msg("attachment too large")
			utils.WriteError(w, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Info().Err(err).Msg("invalid multipart form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(attachmentField)
	if err != nil {
		log.Info().Err(err).Msg("multipart form has no file part")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer file.Close()

	attachment, err := h.services.AttachmentService.Upload(r.Context(), id, models.AttachmentUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeServiceError(w, r, err, "attachment upload failed")
		return
	}

	_, _ = utils.WriteJSON(w, attachment, http.StatusCreated)
}
