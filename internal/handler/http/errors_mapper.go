package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/quote-sync/internal/app"
	"github.com/MKhiriev/quote-sync/internal/service"
	"github.com/MKhiriev/quote-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidQuote:          http.StatusBadRequest,
	service.ErrNoSession:             http.StatusUnauthorized,
	service.ErrInvalidSession:        http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrVersionConflict: http.StatusPreconditionFailed,
	store.ErrQuoteNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

// statusFromError returns the HTTP status for the first sentinel err wraps.
// The version conflict is checked first because conflict errors may also
// wrap store.ErrQuoteNotFound.
func statusFromError(err error) int {
	if errors.Is(err, store.ErrVersionConflict) {
		return http.StatusPreconditionFailed
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusUnauthorized:        app.MsgSessionIsExpiredOrInvalid,
	http.StatusNotFound:            app.MsgQuoteNotFound,
	http.StatusPreconditionFailed:  app.MsgVersionConflict,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

// messageFromError returns the response body text for err.
func messageFromError(err error, status int) string {
	switch {
	case errors.Is(err, service.ErrInvalidQuote):
		return app.MsgInvalidQuote
	case errors.Is(err, service.ErrVersionIsNotSpecified):
		return app.MsgVersionIsNotSpecified
	}
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// writeError maps err to its status and writes a short message as the body.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	http.Error(w, messageFromError(err, status), status)
	return status
}
