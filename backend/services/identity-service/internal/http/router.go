package httpserver

import "net/http"

// Routes aggregates handlers for the HTTP server.
type Routes struct {
	Signup       http.HandlerFunc
	Lookup       http.HandlerFunc
	Login        http.HandlerFunc
	ResetRequest http.HandlerFunc
	ResetConfirm http.HandlerFunc
	Health       http.HandlerFunc
}

// NewRouter wires all HTTP routes.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Signup != nil {
		mux.Handle("/accounts", method(http.MethodPost, routes.Signup))
	}
	if routes.Lookup != nil {
		mux.Handle("/accounts/lookup", method(http.MethodGet, routes.Lookup))
	}
	if routes.Login != nil {
		mux.Handle("/login", method(http.MethodPost, routes.Login))
	}
	if routes.ResetRequest != nil {
		mux.Handle("/password-reset", method(http.MethodPost, routes.ResetRequest))
	}
	if routes.ResetConfirm != nil {
		mux.Handle("/password-reset/confirm", method(http.MethodPost, routes.ResetConfirm))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
