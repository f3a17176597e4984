package handlers

import (
	"encoding/json"
	"net/http"

	"evcharge/backend/services/station-api/internal/service"
)

// NewCheckEmailHandler handles POST /check-email. Asks the identity
// provider whether an account exists for the given email.
func NewCheckEmailHandler(users *service.UserService) http.HandlerFunc {
	type request struct {
		Email string `json:"email"`
	}
	type response struct {
		Registered bool `json:"registered"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		}

		registered, err := users.CheckEmail(r.Context(), req.Email)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, response{Registered: registered})
	}
}

// NewRegisterUserHandler handles POST /register.
func NewRegisterUserHandler(users *service.UserService) http.HandlerFunc {
	type request struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		user, err := users.Register(r.Context(), req.Name, req.Email)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// NewLoggedInUserHandler handles GET /loggedinuser?email=.
func NewLoggedInUserHandler(users *service.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := users.LoggedInUser(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}
