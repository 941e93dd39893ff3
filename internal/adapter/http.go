package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/models"
	"github.com/go-resty/resty/v2"
)

// Server routes used by the HTTP document store.
const (
	SessionEnsurePath = "/api/session/ensure"
	QuotePath         = "/api/quote"
)

type httpDocumentStore[T any] struct {
	client       *utils.HTTPClient
	documentPath string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDocumentStore constructs an HTTP/REST implementation of
// [DocumentStore] for the document served at documentPath. Every request is
// bounded by adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty.
func NewHTTPDocumentStore[T any](adapterCfg config.ClientAdapter, documentPath string, logger *logger.Logger) (DocumentStore[T], error) {
	address := strings.TrimSpace(adapterCfg.HTTPAddress)
	if address == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	client := utils.NewHTTPClient(strings.TrimRight(address, "/"), adapterCfg.RequestTimeout)

	return &httpDocumentStore[T]{client: client, documentPath: documentPath, logger: logger}, nil
}

// NewHTTPQuoteStore is [NewHTTPDocumentStore] for the quote document.
func NewHTTPQuoteStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (DocumentStore[models.Quote], error) {
	return NewHTTPDocumentStore[models.Quote](adapterCfg, QuotePath, logger)
}

func (h *httpDocumentStore[T]) SessionToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpDocumentStore[T]) SetSessionToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// request returns a request bound to ctx that carries the current session
// token as a bearer credential when one is known.
func (h *httpDocumentStore[T]) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.SessionToken(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// EnsureSession implements [DocumentStore]. It POSTs to
// POST /api/session/ensure and adopts the session cookie of the response.
func (h *httpDocumentStore[T]) EnsureSession(ctx context.Context) error {
	resp, err := h.request(ctx).Post(SessionEnsurePath)
	if err != nil {
		return transportError("ensure session request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == utils.SessionCookieName && cookie.Value != "" {
			h.SetSessionToken(cookie.Value)
			return nil
		}
	}

	h.logger.Debug().Str("func", "httpDocumentStore.EnsureSession").Msg("server kept the existing session")
	return nil
}

// LoadDocument implements [DocumentStore]. It GETs the document path with
// If-None-Match when knownToken is set.
func (h *httpDocumentStore[T]) LoadDocument(ctx context.Context, knownToken string) (models.LoadResult[T], error) {
	req := h.request(ctx).SetHeader("Accept", "application/json")
	if knownToken != "" {
		req.SetHeader("If-None-Match", utils.QuoteETag(knownToken))
	}

	resp, err := req.Get(h.documentPath)
	if err != nil {
		return models.LoadResult[T]{}, transportError("load document request", err)
	}

	if resp.StatusCode() == http.StatusNotModified {
		return models.LoadResult[T]{Status: http.StatusNotModified, VersionToken: knownToken}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadResult[T]{}, err
	}

	token := utils.ParseETag(resp.Header().Get("ETag"))
	if token == "" {
		return models.LoadResult[T]{}, ErrMissingETag
	}

	var doc T
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.LoadResult[T]{}, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	return models.LoadResult[T]{Status: http.StatusOK, Document: &doc, VersionToken: token}, nil
}

// SaveDocument implements [DocumentStore]. It PUTs the full document with
// If-Match when knownToken is set. The new token is read from the ETag
// header, falling back to the JSON body.
func (h *httpDocumentStore[T]) SaveDocument(ctx context.Context, doc T, knownToken string) (models.SaveResult, error) {
	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc)
	if knownToken != "" {
		req.SetHeader("If-Match", utils.QuoteETag(knownToken))
	}

	resp, err := req.Put(h.documentPath)
	if err != nil {
		return models.SaveResult{}, transportError("save document request", err)
	}

	if resp.StatusCode() == http.StatusPreconditionFailed {
		h.logger.Debug().Str("func", "httpDocumentStore.SaveDocument").Str("known_token", knownToken).Msg("precondition failed")
		return models.SaveResult{Status: http.StatusPreconditionFailed}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResult{}, err
	}

	result := models.SaveResult{Status: http.StatusOK, VersionToken: utils.ParseETag(resp.Header().Get("ETag"))}
	if result.VersionToken == "" {
		var body models.SaveResult
		if err = json.Unmarshal(resp.Body(), &body); err == nil {
			result.VersionToken = body.VersionToken
		}
	}
	if result.VersionToken == "" {
		return models.SaveResult{}, ErrMissingETag
	}

	return result, nil
}
