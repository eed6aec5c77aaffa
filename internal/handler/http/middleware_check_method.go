// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A path
// that exists under another method is answered with 404 Not Found, so
// callers cannot probe which methods a route supports. A request whose
// method does match a route, URL parameters included, is served normally.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeError(w, r, "CheckHTTPMethod", errRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
