package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const CtxServico ctxKey = "servico"

// MiddlewareAutenticacao exige um Bearer token de serviço válido.
// Com AUTH_DISABLED=true o middleware vira passthrough (uso local).
func MiddlewareAutenticacao(desabilitado bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if desabilitado || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")
			claims, err := ValidarToken(raw)
			if err != nil {
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), CtxServico, claims.Servico)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
