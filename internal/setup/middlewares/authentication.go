package middlewares

import (
	"net/http"
	"strings"

	"github.com/anuntech/decision-backend/internal/utils"
	"github.com/rs/zerolog/log"
)

func VerifyAccessToken(next http.Handler, secret string) http.Handler {
	tokenUtil := utils.NewCreateAccessTokenUtil(secret)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		if cookie, err := r.Cookie("__Secure-next-auth.session-token"); err == nil {
			authorization = cookie.Value
		} else if cookie, err := r.Cookie("next-auth.session-token"); err == nil {
			authorization = cookie.Value
		} else {
			authorization = r.Header.Get("Authorization")
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")
		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		claims, err := tokenUtil.DecodeToken(authorization)
		if err != nil {
			log.Debug().Err(err).Msg("rejected access token")
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		userId, ok := claims["sub"].(string)
		if !ok || userId == "" {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", userId)

		next.ServeHTTP(w, r)
	})
}
