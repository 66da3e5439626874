// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/auth", func(r chi.Router) {
		// probes and login need no credentials
		r.Get("/live", h.live)
		r.Get("/ready", h.ready)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.bearer)

			r.Post("/logout", h.logout)
			r.Get("/users/me", h.me)
		})

		// admin surface, reachable only from allowed hosts
		r.Group(func(r chi.Router) {
			r.Use(h.internalOnly)

			r.Post("/users", h.createUser)
			r.Post("/users/search", h.searchUsers)
			r.Get("/users/{id}", h.getUser)
			r.Post("/users/{id}", h.updatePassword)
			r.Post("/users/{id}/deactivate", h.deactivateUser)
			r.Post("/users/{id}/reactivate", h.reactivateUser)
		})
	})

	// everything else is forwarded to the upstream
	if h.websocketMode {
		router.HandleFunc("/*", h.tunnel)
	} else {
		router.Group(func(r chi.Router) {
			r.Use(h.bearer)
			r.HandleFunc("/*", h.relay)
		})
	}

	return router
}
