// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/chiro-hub/internal/app"
	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// For a path registered on router it answers 405 with a JSON error body and
// an Allow header listing the methods the route handles. Paths that are not
// registered verbatim (parameterised or wildcard patterns are not expanded)
// get a JSON 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil {
			notFound(w, r)
			return
		}

		allowed := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			allowed = append(allowed, method)
		}
		sort.Strings(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}
