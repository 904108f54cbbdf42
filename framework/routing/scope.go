package routing

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/km-arc/go-injector/framework/injector"
)

// Identifiers bound into every request's child injector by [ScopeMiddleware].
const (
	// ScopeRequest resolves to the *http.Request being served.
	ScopeRequest = "http.request"

	// ScopeRequestID resolves to the request's generated id (also sent back
	// in the X-Request-ID response header).
	ScopeRequestID = "request.id"
)

type scopeCtxKey struct{}

// ScopeMiddleware derives a child injector from root for every request and
// stores it in the request context. Handlers retrieve it with [Scope] and
// resolve through it: request-scoped identifiers hit the child's table,
// everything else walks up into root. Singletons resolved through the scope
// are cached on the scope, so they live exactly as long as the request.
func ScopeMiddleware(root *injector.Injector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			scope := root.Child(injector.WithLabel("request:" + id))
			_ = scope.RegisterValue(ScopeRequest, r)
			_ = scope.RegisterValue(ScopeRequestID, id)

			w.Header().Set("X-Request-ID", id)

			ctx := context.WithValue(r.Context(), scopeCtxKey{}, scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Scope returns the request's child injector, or nil when [ScopeMiddleware]
// is not installed.
func Scope(r *http.Request) *injector.Injector {
	s, _ := r.Context().Value(scopeCtxKey{}).(*injector.Injector)
	return s
}
