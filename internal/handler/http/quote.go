// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/quote-sync/internal/app"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/models"
)

// getQuote handles GET /api/quote.
//
// When If-None-Match names the current version token the response is 304
// without a body. Otherwise the stored quote is returned with its token in
// the ETag header.
func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	guestID, ok := utils.GetGuestIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoGuestInContext).Str("func", "*Handler.getQuote").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stored, err := h.services.QuoteService.GetQuote(r.Context(), guestID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQuote").Msg("error getting quote")
		writeError(w, err)
		return
	}

	w.Header().Set("ETag", utils.QuoteETag(stored.VersionToken))
	w.Header().Set("Cache-Control", "no-cache")

	if known := utils.ParseETag(r.Header.Get("If-None-Match")); known != "" && known == stored.VersionToken {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(stored.Body); err != nil {
		log.Err(err).Str("func", "*Handler.getQuote").Msg("error writing quote")
	}
}

// putQuote handles PUT /api/quote.
//
// The body replaces the whole quote. If-Match must carry the current version
// token as a strong tag, or "*" to overwrite whatever version exists;
// without it the write only succeeds for a guest that has no quote yet. A
// stale or weak precondition is answered with 412.
func (h *Handler) putQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	guestID, ok := utils.GetGuestIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoGuestInContext).Str("func", "*Handler.putQuote").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var quote models.Quote
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQuoteBodyBytes)).Decode(&quote); err != nil {
		log.Err(err).Str("func", "*Handler.putQuote").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ifMatch, err := utils.ParseIfMatch(r.Header.Get("If-Match"))
	if errors.Is(err, utils.ErrWeakETag) {
		log.Info().Str("func", "*Handler.putQuote").Str("if_match", r.Header.Get("If-Match")).Msg("weak validator never matches")
		http.Error(w, app.MsgVersionConflict, http.StatusPreconditionFailed)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.putQuote").Msg("invalid If-Match")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	saved, err := h.services.QuoteService.SaveQuote(r.Context(), guestID, quote, ifMatch)
	if err != nil {
		status := writeError(w, err)
		if status == http.StatusPreconditionFailed {
			log.Info().Str("func", "*Handler.putQuote").Str("if_match", ifMatch).Msg("stale version token")
		} else {
			log.Err(err).Str("func", "*Handler.putQuote").Msg("error saving quote")
		}
		return
	}

	w.Header().Set("ETag", utils.QuoteETag(saved.VersionToken))
	if _, err = utils.WriteJSON(w, models.SaveResult{VersionToken: saved.VersionToken}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.putQuote").Msg("error writing response")
	}
}
