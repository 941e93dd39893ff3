package http

import (
	"net/http"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/utils"
)

// ensureSession handles POST /api/session/ensure.
//
// The call is idempotent: a request carrying a valid session keeps its guest
// and only gets the expiry refreshed. Anything else starts a new guest. The
// token is returned in an HTTP-only cookie and the response has no body.
func (h *Handler) ensureSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	existing, _ := sessionTokenFromRequest(r)

	token, err := h.services.SessionService.EnsureSession(r.Context(), existing)
	if err != nil {
		log.Err(err).Str("func", "*Handler.ensureSession").Msg("error ensuring session")
		writeError(w, err)
		return
	}

	cookie := &http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)

	log.Debug().Str("func", "*Handler.ensureSession").Str("guest_id", token.GuestID).Msg("session ensured")
	w.WriteHeader(http.StatusNoContent)
}
