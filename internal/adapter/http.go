// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [ServerAdapter]. POST /api/auth/signup.
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.Profile, error) {
	var profile models.Profile
	err := h.send(h.request(ctx).SetBody(req), http.MethodPost, "/api/auth/signup", &profile, "sign up")
	return profile, err
}

// SignIn implements [ServerAdapter]. POST /api/auth/signin; the access
// token of the returned session is stored via SetToken.
func (h *httpServerAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error) {
	var session models.Session
	if err := h.send(h.request(ctx).SetBody(req), http.MethodPost, "/api/auth/signin", &session, "sign in"); err != nil {
		return models.Session{}, err
	}

	h.SetToken(session.AccessToken)
	return session, nil
}

// Refresh implements [ServerAdapter]. POST /api/auth/refresh.
func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	body := models.RefreshRequest{RefreshToken: refreshToken}
	if err := h.send(h.request(ctx).SetBody(body), http.MethodPost, "/api/auth/refresh", &session, "refresh"); err != nil {
		return models.Session{}, err
	}

	h.SetToken(session.AccessToken)
	return session, nil
}

// SignOut implements [ServerAdapter]. POST /api/auth/signout.
func (h *httpServerAdapter) SignOut(ctx context.Context, refreshToken string) error {
	defer h.SetToken("")

	body := models.RefreshRequest{RefreshToken: refreshToken}
	return h.send(h.authedRequest(ctx).SetBody(body), http.MethodPost, "/api/auth/signout", nil, "sign out")
}

// GetProfile implements [ServerAdapter]. GET /api/profiles/me; a missing
// profile is reported as [ErrNotFound].
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := h.send(h.authedRequest(ctx), http.MethodGet, "/api/profiles/me", &profile, "get profile")
	return profile, err
}

// CreateProfile implements [ServerAdapter]. POST /api/profiles/me.
func (h *httpServerAdapter) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.Profile, error) {
	var profile models.Profile
	err := h.send(h.authedRequest(ctx).SetBody(req), http.MethodPost, "/api/profiles/me", &profile, "create profile")
	return profile, err
}

// LookupProfiles implements [ServerAdapter]. POST /api/profiles/lookup.
func (h *httpServerAdapter) LookupProfiles(ctx context.Context, ids []string) ([]models.Profile, error) {
	var profiles []models.Profile
	body := models.ProfileLookupRequest{IDs: ids}
	err := h.send(h.authedRequest(ctx).SetBody(body), http.MethodPost, "/api/profiles/lookup", &profiles, "lookup profiles")
	return profiles, err
}

// ListProfiles implements [ServerAdapter]. GET /api/admin/profiles.
func (h *httpServerAdapter) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := h.send(h.authedRequest(ctx), http.MethodGet, "/api/admin/profiles", &profiles, "list profiles")
	return profiles, err
}

// UpdateRole implements [ServerAdapter]. PATCH /api/admin/profiles/{id}/role.
func (h *httpServerAdapter) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	var profile models.Profile
	req := h.authedRequest(ctx).
		SetPathParam("id", userID).
		SetBody(models.RoleUpdateRequest{Role: role})
	err := h.send(req, http.MethodPatch, "/api/admin/profiles/{id}/role", &profile, "update role")
	return profile, err
}

// ListIdeas implements [ServerAdapter]. GET /api/ideas?status=&category=.
func (h *httpServerAdapter) ListIdeas(ctx context.Context, filter models.IdeaFilter) ([]models.Idea, error) {
	req := h.authedRequest(ctx)
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Category != "" {
		req.SetQueryParam("category", string(filter.Category))
	}

	var ideas []models.Idea
	if err := h.send(req, http.MethodGet, "/api/ideas", &ideas, "list ideas"); err != nil {
		return nil, err
	}
	return ideas, nil
}

// CreateIdea implements [ServerAdapter]. POST /api/ideas.
func (h *httpServerAdapter) CreateIdea(ctx context.Context, req models.CreateIdeaRequest) (models.Idea, error) {
	var idea models.Idea
	err := h.send(h.authedRequest(ctx).SetBody(req), http.MethodPost, "/api/ideas", &idea, "create idea")
	return idea, err
}

// UploadAttachment implements [ServerAdapter]. It sends the file as the
// "file" part of a multipart POST /api/attachments.
func (h *httpServerAdapter) UploadAttachment(ctx context.Context, upload models.AttachmentUpload) (models.Attachment, error) {
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	req := h.authedRequest(ctx).
		SetMultipartField("file", upload.FileName, contentType, upload.Body)

	var attachment models.Attachment
	err := h.send(req, http.MethodPost, "/api/attachments", &attachment, "upload attachment")
	return attachment, err
}

// UpdateIdeaStatus implements [ServerAdapter].
// PATCH /api/admin/ideas/{id}/status.
func (h *httpServerAdapter) UpdateIdeaStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error) {
	var idea models.Idea
	req := h.authedRequest(ctx).
		SetPathParam("id", ideaID).
		SetBody(models.StatusUpdateRequest{Status: status})
	err := h.send(req, http.MethodPatch, "/api/admin/ideas/{id}/status", &idea, "update idea status")
	return idea, err
}

// ListCategories implements [ServerAdapter]. GET /api/categories.
func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.CategoryInfo, error) {
	var categories []models.CategoryInfo
	err := h.send(h.authedRequest(ctx), http.MethodGet, "/api/categories", &categories, "list categories")
	return categories, err
}

// ListGoals implements [ServerAdapter]. GET /api/goals.
func (h *httpServerAdapter) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	err := h.send(h.authedRequest(ctx), http.MethodGet, "/api/goals", &goals, "list goals")
	return goals, err
}

// UpdateGoals implements [ServerAdapter]. PUT /api/admin/goals.
func (h *httpServerAdapter) UpdateGoals(ctx context.Context, updates []models.GoalUpdate) ([]models.GoalUpdateResult, error) {
	var resp models.GoalsUpdateResponse
	body := models.GoalsUpdateRequest{Updates: updates}
	if err := h.send(h.authedRequest(ctx).SetBody(body), http.MethodPut, "/api/admin/goals", &resp, "update goals"); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// ActivateCategoryGoals implements [ServerAdapter].
// POST /api/admin/categories/{name}/goals.
func (h *httpServerAdapter) ActivateCategoryGoals(ctx context.Context, category models.Category) ([]models.Goal, error) {
	var goals []models.Goal
	req := h.authedRequest(ctx).SetPathParam("name", string(category))
	err := h.send(req, http.MethodPost, "/api/admin/categories/{name}/goals", &goals, "activate category goals")
	return goals, err
}

// DeactivateCategoryGoals implements [ServerAdapter].
// DELETE /api/admin/categories/{name}/goals.
func (h *httpServerAdapter) DeactivateCategoryGoals(ctx context.Context, category models.Category) error {
	req := h.authedRequest(ctx).SetPathParam("name", string(category))
	return h.send(req, http.MethodDelete, "/api/admin/categories/{name}/goals", nil, "deactivate category goals")
}

// ListNotifications implements [ServerAdapter]. GET /api/notifications.
func (h *httpServerAdapter) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	err := h.send(h.authedRequest(ctx), http.MethodGet, "/api/notifications", &notifications, "list notifications")
	return notifications, err
}

// Chat implements [ServerAdapter]. POST /api/chat.
func (h *httpServerAdapter) Chat(ctx context.Context, message string) (string, error) {
	var resp models.ChatResponse
	body := models.ChatRequest{Message: message}
	if err := h.send(h.authedRequest(ctx).SetBody(body), http.MethodPost, "/api/chat", &resp, "chat"); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var resp models.VersionResponse
	err := h.send(h.request(ctx), http.MethodGet, "/api/version", &resp, "version")
	return resp.Version, err
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// send executes req and decodes a successful JSON body into result when it
// is not nil.
func (h *httpServerAdapter) send(req *resty.Request, method, path string, result any, op string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("request failed")
		return fmt.Errorf("%s request: %w: %w", op, ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return fmt.Errorf("%s: %w", op, err)
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrDecodeResponse, err)
	}
	return nil
}
