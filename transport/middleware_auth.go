package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/booking-capacity/application/auth"
	"github.com/muhammadheryan/booking-capacity/constant"
	utilsContext "github.com/muhammadheryan/booking-capacity/utils/context"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware returns a middleware that accepts admin tokens only.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			adminID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("[AuthMiddleware] token rejected", zap.String("path", r.URL.Path), zap.String("error", err.Error()))
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithAdminID(r.Context(), adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	return token, token != ""
}
