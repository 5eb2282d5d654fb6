// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// ─────────────────────────────────────────────
// Function-field fakes for service interfaces
// ─────────────────────────────────────────────

type fakeAuthService struct {
	signUpFn  func(ctx context.Context, req models.SignUpRequest) (models.Profile, error)
	signInFn  func(ctx context.Context, req models.SignInRequest) (models.Session, error)
	refreshFn func(ctx context.Context, refreshToken string) (models.Session, error)
	signOutFn func(ctx context.Context, refreshToken string) error
}

func (f *fakeAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.Profile, error) {
	return f.signUpFn(ctx, req)
}

func (f *fakeAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error) {
	return f.signInFn(ctx, req)
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	return f.refreshFn(ctx, refreshToken)
}

func (f *fakeAuthService) SignOut(ctx context.Context, refreshToken string) error {
	if f.signOutFn == nil {
		return nil
	}
	return f.signOutFn(ctx, refreshToken)
}

// ParseToken accepts "user-token" and "admin-token".
func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case userToken:
		return models.Token{UserID: "u-1"}, nil
	case adminToken:
		return models.Token{UserID: "admin-1"}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type fakeProfileService struct {
	getFn      func(ctx context.Context, userID string) (models.Profile, error)
	backfillFn func(ctx context.Context, userID string, req models.CreateProfileRequest) (models.Profile, error)
	lookupFn   func(ctx context.Context, userIDs []string) ([]models.Profile, error)
	listFn     func(ctx context.Context) ([]models.Profile, error)
	roleFn     func(ctx context.Context, userID string, role models.Role) (models.Profile, error)
	isAdminFn  func(ctx context.Context, userID string) (bool, error)
}

func (f *fakeProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return f.getFn(ctx, userID)
}

func (f *fakeProfileService) BackfillProfile(ctx context.Context, userID string, req models.CreateProfileRequest) (models.Profile, error) {
	return f.backfillFn(ctx, userID, req)
}

func (f *fakeProfileService) LookupProfiles(ctx context.Context, userIDs []string) ([]models.Profile, error) {
	return f.lookupFn(ctx, userIDs)
}

func (f *fakeProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return f.listFn(ctx)
}

func (f *fakeProfileService) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	return f.roleFn(ctx, userID, role)
}

func (f *fakeProfileService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if f.isAdminFn != nil {
		return f.isAdminFn(ctx, userID)
	}
	return userID == "admin-1", nil
}

type fakeIdeaService struct {
	listFn   func(ctx context.Context, userID string, filter models.IdeaFilter) ([]models.Idea, error)
	createFn func(ctx context.Context, userID string, req models.CreateIdeaRequest) (models.Idea, error)
	statusFn func(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error)
}

func (f *fakeIdeaService) ListIdeas(ctx context.Context, userID string, filter models.IdeaFilter) ([]models.Idea, error) {
	return f.listFn(ctx, userID, filter)
}

func (f *fakeIdeaService) CreateIdea(ctx context.Context, userID string, req models.CreateIdeaRequest) (models.Idea, error) {
	return f.createFn(ctx, userID, req)
}

func (f *fakeIdeaService) UpdateStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error) {
	return f.statusFn(ctx, ideaID, status)
}

type fakeAttachmentService struct {
	uploadFn func(ctx context.Context, userID string, upload models.AttachmentUpload) (models.Attachment, error)
}

func (f *fakeAttachmentService) Upload(ctx context.Context, userID string, upload models.AttachmentUpload) (models.Attachment, error) {
	return f.uploadFn(ctx, userID, upload)
}

type fakeCategoryService struct {
	categories []models.CategoryInfo
	err        error
}

func (f *fakeCategoryService) ListCategories(context.Context) ([]models.CategoryInfo, error) {
	return f.categories, f.err
}

type fakeGoalService struct {
	listFn       func(ctx context.Context) ([]models.Goal, error)
	updateFn     func(ctx context.Context, updates []models.GoalUpdate) []models.GoalUpdateResult
	activateFn   func(ctx context.Context, category models.Category) ([]models.Goal, error)
	deactivateFn func(ctx context.Context, category models.Category) error
}

func (f *fakeGoalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return f.listFn(ctx)
}

func (f *fakeGoalService) UpdateGoals(ctx context.Context, updates []models.GoalUpdate) []models.GoalUpdateResult {
	return f.updateFn(ctx, updates)
}

func (f *fakeGoalService) ActivateCategory(ctx context.Context, category models.Category) ([]models.Goal, error) {
	return f.activateFn(ctx, category)
}

func (f *fakeGoalService) DeactivateCategory(ctx context.Context, category models.Category) error {
	return f.deactivateFn(ctx, category)
}

func (f *fakeGoalService) ReconcileGoals(context.Context) error { return nil }

type fakeNotificationService struct {
	listFn func(ctx context.Context, userID string) ([]models.Notification, error)
}

func (f *fakeNotificationService) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return f.listFn(ctx, userID)
}

type fakeChatService struct {
	chatFn func(ctx context.Context, message string) (string, error)
}

func (f *fakeChatService) Chat(ctx context.Context, message string) (string, error) {
	return f.chatFn(ctx, message)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Test harness
// ─────────────────────────────────────────────

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

// newTestServices returns fakes with no behaviour set. Calling an unset
// function panics, which the recoverer turns into a 500.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:         &fakeAuthService{},
		ProfileService:      &fakeProfileService{},
		IdeaService:         &fakeIdeaService{},
		AttachmentService:   &fakeAttachmentService{},
		CategoryService:     &fakeCategoryService{},
		GoalService:         &fakeGoalService{},
		NotificationService: &fakeNotificationService{},
		ChatService:         &fakeChatService{},
		AppInfoService:      &mockAppInfoService{version: "test-version"},
	}
}

func testServerConfig() config.Server {
	return config.Server{MaxUploadSize: 1 << 10}
}

func newTestRouter(services *service.Services) http.Handler {
	return NewHandler(services, testServerConfig(), "", logger.Nop()).Init()
}

// do performs a request against handler with an optional bearer token.
func do(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
