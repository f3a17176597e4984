package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"evcharge/backend/services/identity-service/internal/service"
)

// NewResetRequestHandler handles POST /password-reset. An unknown email
// still answers 200 with the generic message so callers cannot probe for
// registered addresses.
func NewResetRequestHandler(accounts *service.AccountsService) http.HandlerFunc {
	type request struct {
		Email string `json:"email"`
	}
	type response struct {
		Message string `json:"message"`
		Token   string `json:"token,omitempty"`
	}

	const genericMessage = "If the email is registered, a reset token has been issued"

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			writeError(w, http.StatusBadRequest, "email is required")
			return
		}

		token, err := accounts.RequestPasswordReset(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, service.ErrAccountNotFound) {
				writeJSON(w, http.StatusOK, response{Message: genericMessage})
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to issue reset token")
			return
		}

		// There is no mail transport here; the token goes back to the
		// caller, which is responsible for delivering it.
		writeJSON(w, http.StatusOK, response{Message: genericMessage, Token: token})
	}
}

// NewResetConfirmHandler handles POST /password-reset/confirm.
func NewResetConfirmHandler(accounts *service.AccountsService) http.HandlerFunc {
	type request struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		err := accounts.ConfirmPasswordReset(r.Context(), strings.TrimSpace(req.Token), strings.TrimSpace(req.Password))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "token and password are required")
			case errors.Is(err, service.ErrResetTokenInvalid):
				writeError(w, http.StatusBadRequest, "reset token is invalid or expired")
			default:
				writeError(w, http.StatusInternalServerError, "failed to reset password")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
	}
}
