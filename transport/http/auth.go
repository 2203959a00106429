package http

import (
	"net/http"

	"github.com/nakamauwu/hirechat/auth"
	"github.com/nakamauwu/hirechat/errs"
)

// withPrincipal puts the caller of a bearer token into the request context.
// Requests without a token go through anonymous and the service
// rejects what needs a caller.
func (h *Handler) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}

		token := auth.BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		principal, err := h.Verifier.Verify(ctx, token)
		if err != nil {
			if errs.KindOf(err) != errs.KindUnauthenticated {
				err = auth.ErrInvalidToken
			}
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			h.respondErr(w, err)
			return
		}

		ctx = auth.ContextWithPrincipal(ctx, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
