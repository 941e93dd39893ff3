// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Get("/api/quote", ok)
	router.Put("/api/quote", ok)
	router.Post("/api/session/ensure", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{"registered method", http.MethodGet, "/api/quote", http.StatusOK, ""},
		{"unregistered method lists allowed", http.MethodDelete, "/api/quote", http.StatusMethodNotAllowed, "GET, PUT"},
		{"single allowed method", http.MethodGet, "/api/session/ensure", http.StatusMethodNotAllowed, "POST"},
		{"unknown path", http.MethodGet, "/api/nothing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}
