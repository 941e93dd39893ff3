package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/quote-sync/internal/app"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/service"
	"github.com/MKhiriev/quote-sync/internal/utils"
)

// session is an HTTP middleware that requires a live guest session.
//
// The token is taken from the session cookie or, failing that, from an
// "Authorization: Bearer" header. On success the guest ID is stored in the
// request context under [utils.GuestIDCtxKey]. Every failure is answered
// with 401 Unauthorized.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.session").Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		guestID, err := h.services.SessionService.ParseSession(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrInvalidSession):
				log.Err(err).Str("func", "*Handler.session").Msg("session rejected")
				http.Error(w, app.MsgSessionIsExpiredOrInvalid, http.StatusUnauthorized)
			default:
				log.Err(err).Str("func", "*Handler.session").Msg("error checking session")
				http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			}
			return
		}

		guestLog := log.With().Str("guest_id", guestID).Logger()
		ctx = utils.WithGuestID(guestLog.WithContext(ctx), guestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest returns the session token, preferring the cookie
// over the Authorization header.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(utils.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
