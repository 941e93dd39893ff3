package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// SessionCookieName is the HTTP-only cookie carrying the guest session JWT.
const SessionCookieName = "qs_session"

// AnyVersion is the If-Match wildcard: the write succeeds against any
// existing version and fails when there is none.
const AnyVersion = "*"

// If-Match parse errors.
var (
	// ErrWeakETag reports a weak validator, which never matches under the
	// strong comparison If-Match requires.
	ErrWeakETag = errors.New("weak entity tag in If-Match")
	// ErrETagList reports more than one entity tag.
	ErrETagList = errors.New("If-Match carries more than one entity tag")
	// ErrMalformedETag reports a tag that is not a quoted string.
	ErrMalformedETag = errors.New("malformed entity tag in If-Match")
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// QuoteETag renders a version token as a strong entity tag.
// An empty token renders as an empty string.
func QuoteETag(token string) string {
	if token == "" {
		return ""
	}
	return `"` + token + `"`
}

// ParseETag extracts the version token from an ETag or If-None-Match
// header value, both of which use weak comparison. Weak validators ("W/") and surrounding quotes
// are stripped; a list of tags yields its first element. "*" and empty
// values yield an empty token.
func ParseETag(header string) string {
	tag := strings.TrimSpace(header)
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = strings.TrimSpace(tag[:i])
	}
	tag = strings.TrimPrefix(tag, "W/")
	tag = strings.Trim(tag, `"`)
	if tag == "*" {
		return ""
	}
	return tag
}

// ParseIfMatch parses an If-Match header for strong comparison. An empty
// header yields "", "*" yields [AnyVersion] and a single strong tag yields
// its token.
func ParseIfMatch(header string) (string, error) {
	tag := strings.TrimSpace(header)
	switch {
	case tag == "":
		return "", nil
	case tag == AnyVersion:
		return AnyVersion, nil
	case strings.Contains(tag, ","):
		return "", ErrETagList
	case strings.HasPrefix(tag, "W/"):
		return "", ErrWeakETag
	}

	if len(tag) < 3 || tag[0] != '"' || tag[len(tag)-1] != '"' || strings.Contains(tag[1:len(tag)-1], `"`) {
		return "", ErrMalformedETag
	}
	return tag[1 : len(tag)-1], nil
}
