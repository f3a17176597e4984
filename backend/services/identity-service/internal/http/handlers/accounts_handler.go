package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"evcharge/backend/services/identity-service/internal/service"
)

// NewSignupHandler handles POST /accounts.
func NewSignupHandler(accounts *service.AccountsService) http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		ID        int64     `json:"id"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Password = strings.TrimSpace(req.Password)
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		account, err := accounts.Signup(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmailInUse):
				writeError(w, http.StatusConflict, "email already registered")
			case errors.Is(err, service.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "email and password are required")
			default:
				writeError(w, http.StatusInternalServerError, "failed to create account")
			}
			return
		}

		writeJSON(w, http.StatusCreated, response{
			ID:        account.ID,
			Email:     account.Email,
			CreatedAt: account.CreatedAt,
		})
	}
}

// NewLookupHandler handles GET /accounts/lookup?email=. A 404 response is
// the normal "not registered" outcome consumed by the station API.
func NewLookupHandler(accounts *service.AccountsService) http.HandlerFunc {
	type response struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		account, err := accounts.Lookup(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "email is required")
			case errors.Is(err, service.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, "account not found")
			default:
				writeError(w, http.StatusInternalServerError, "failed to look up account")
			}
			return
		}

		writeJSON(w, http.StatusOK, response{ID: account.ID, Email: account.Email})
	}
}

// NewLoginHandler handles POST /login.
func NewLoginHandler(accounts *service.AccountsService) http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Password = strings.TrimSpace(req.Password)
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		token, _, err := accounts.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to login")
			return
		}

		writeJSON(w, http.StatusOK, response{Token: token, TokenType: "Bearer"})
	}
}
