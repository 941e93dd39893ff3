// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates an httpDocumentStore pointed at the test server.
func newTestStore(t *testing.T, serverURL string) *httpDocumentStore[models.Quote] {
	t.Helper()
	s, err := NewHTTPQuoteStore(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return s.(*httpDocumentStore[models.Quote])
}

func sampleQuote() models.Quote {
	return models.Quote{
		Customer: models.Customer{Name: "Ada"},
		Currency: "EUR",
		Items:    []models.QuoteItem{{SKU: "A-1", Name: "Desk", Quantity: 1, UnitPrice: 19900}},
	}
}

func TestNewHTTPDocumentStore_EmptyAddress(t *testing.T) {
	_, err := NewHTTPQuoteStore(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

// ── EnsureSession ───────────────────────────────────────────────────────────

func TestEnsureSession_AdoptsCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, SessionEnsurePath, r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		http.SetCookie(w, &http.Cookie{Name: utils.SessionCookieName, Value: "jwt-1", HttpOnly: true, Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	require.NoError(t, s.EnsureSession(context.Background()))
	assert.Equal(t, "jwt-1", s.SessionToken())
}

func TestEnsureSession_SendsRestoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer restored", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	s.SetSessionToken(" restored ")

	require.NoError(t, s.EnsureSession(context.Background()))
	assert.Equal(t, "restored", s.SessionToken())
}

func TestEnsureSession_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "redis down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).EnsureSession(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestEnsureSession_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestStore(t, url).EnsureSession(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── LoadDocument ────────────────────────────────────────────────────────────

func TestLoadDocument_OK(t *testing.T) {
	want := sampleQuote()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, QuotePath, r.URL.Path)
		assert.Empty(t, r.Header.Get("If-None-Match"))

		w.Header().Set("ETag", `"v2"`)
		_, _ = utils.WriteJSON(w, want, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).LoadDocument(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, got.Status)
	assert.Equal(t, "v2", got.VersionToken)
	require.NotNil(t, got.Document)
	assert.Equal(t, want, *got.Document)
}

func TestLoadDocument_NotModified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"v1"`, r.Header.Get("If-None-Match"))
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).LoadDocument(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotModified, got.Status)
	assert.Nil(t, got.Document)
	assert.Equal(t, "v1", got.VersionToken)
}

func TestLoadDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "no session", http.StatusUnauthorized)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "missing etag",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = utils.WriteJSON(w, sampleQuote(), http.StatusOK)
			},
			wantErr: ErrMissingETag,
		},
		{
			name: "corrupt body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("ETag", `"v1"`)
				_, _ = w.Write([]byte("{"))
			},
			wantErr: ErrDecodeDocument,
		},
		{
			name: "unexpected status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
			wantErr: ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestStore(t, srv.URL).LoadDocument(context.Background(), "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── SaveDocument ────────────────────────────────────────────────────────────

func TestSaveDocument_OK(t *testing.T) {
	doc := sampleQuote()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, `"v1"`, r.Header.Get("If-Match"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.Quote
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, doc, got)

		w.Header().Set("ETag", `"v2"`)
		_, _ = utils.WriteJSON(w, models.SaveResult{VersionToken: "v2"}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).SaveDocument(context.Background(), doc, "v1")
	require.NoError(t, err)
	assert.Equal(t, models.SaveResult{Status: http.StatusOK, VersionToken: "v2"}, got)
}

func TestSaveDocument_WithoutKnownTokenOmitsIfMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["If-Match"]
		assert.False(t, present)
		_, _ = utils.WriteJSON(w, models.SaveResult{VersionToken: "v1"}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).SaveDocument(context.Background(), sampleQuote(), "")
	require.NoError(t, err)
	assert.Equal(t, "v1", got.VersionToken)
}

func TestSaveDocument_PreconditionFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "version conflict", http.StatusPreconditionFailed)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).SaveDocument(context.Background(), sampleQuote(), "stale")
	require.NoError(t, err)
	assert.Equal(t, http.StatusPreconditionFailed, got.Status)
	assert.Empty(t, got.VersionToken)
}

func TestSaveDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestStore(t, srv.URL).SaveDocument(context.Background(), sampleQuote(), "v1")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, errors.Is(err, ErrNetwork))
		})
	}
}

func TestSaveDocument_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	s, err := NewHTTPQuoteStore(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = s.SaveDocument(context.Background(), sampleQuote(), "v1")
	assert.ErrorIs(t, err, ErrNetwork)
}
