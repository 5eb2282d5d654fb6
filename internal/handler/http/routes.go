// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/eco-ideas/internal/store"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signUp)
			r.With(IPRateLimit(h.signInLimiter)).Post("/signin", h.signIn)
			r.Post("/refresh", h.refresh)
			r.With(h.auth).Post("/signout", h.signOut)
		})

		// routes for any signed-in user
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/profiles/me", h.getMyProfile)
			r.Post("/profiles/me", h.createMyProfile)
			r.Post("/profiles/lookup", h.lookupProfiles)

			r.Get("/ideas", h.listIdeas)
			r.Post("/ideas", h.createIdea)
			r.Post("/attachments", h.uploadAttachment)

			r.Get("/categories", h.listCategories)
			r.Get("/goals", h.listGoals)
			r.Get("/notifications", h.listNotifications)

			r.With(UserRateLimit(h.chatLimiter)).Post("/chat", h.chat)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth, h.adminOnly)

			r.Patch("/ideas/{id}/status", h.updateIdeaStatus)
			r.Put("/goals", h.updateGoals)
			r.Post("/categories/{name}/goals", h.activateCategory)
			r.Delete("/categories/{name}/goals", h.deactivateCategory)
			r.Get("/profiles", h.listProfiles)
			r.Patch("/profiles/{id}/role", h.updateRole)
		})
	})

	if h.filesDir != "" {
		files := http.StripPrefix(store.FilesRoute, http.FileServer(http.Dir(h.filesDir)))
		router.Get(store.FilesRoute+"/*", files.ServeHTTP)
	}

	return router
}
