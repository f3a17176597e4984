package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes aggregates handlers for the HTTP server.
type Routes struct {
	CheckEmail    http.HandlerFunc
	Register      http.HandlerFunc
	LoggedInUser  http.HandlerFunc
	ListStations  http.HandlerFunc
	CreateStation http.HandlerFunc
	UpdateStation http.HandlerFunc
	DeleteStation http.HandlerFunc
	ResetStations http.HandlerFunc
	Health        http.HandlerFunc
}

// NewRouter wires all HTTP routes.
func NewRouter(routes Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(allowCORS)

	r.Post("/check-email", routes.CheckEmail)
	r.Post("/register", routes.Register)
	r.Get("/loggedinuser", routes.LoggedInUser)

	r.Route("/api/stations", func(r chi.Router) {
		r.Get("/", routes.ListStations)
		r.Post("/", routes.CreateStation)
		r.Post("/reset", routes.ResetStations)
		r.Put("/{id}", routes.UpdateStation)
		r.Delete("/{id}", routes.DeleteStation)
	})

	r.Get("/health", routes.Health)
	return r
}

// allowCORS mirrors the permissive CORS policy of the original service,
// which is consumed directly from browsers.
func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
