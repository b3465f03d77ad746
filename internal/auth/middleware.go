package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-typed-routes/internal/app"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/utils"
)

// Middleware returns an HTTP middleware enforcing bearer authentication.
//
// On success it stores the caller identity in the request context
// ([utils.WithIdentity]) and calls next. Otherwise it responds 401:
//   - header absent: [ErrEmptyAuthorizationHeader]
//   - header without a token: [ErrInvalidAuthorizationHeader] or [ErrEmptyToken]
//   - expired token: [app.MsgTokenIsExpired]
//   - any other token failure: "Unauthorized"
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := tokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := a.Parse(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		ctx := utils.WithIdentity(r.Context(), token.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromAuthHeader extracts the token from "Authorization: <scheme> <token>".
func tokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authHeader), " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
