package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"evcharge/backend/services/station-api/internal/service"
)

// NewListStationsHandler handles GET /api/stations.
func NewListStationsHandler(stations *service.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := stations.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewCreateStationHandler handles POST /api/stations.
func NewCreateStationHandler(stations *service.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input service.StationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		station, err := stations.Create(r.Context(), input)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, station)
	}
}

// NewUpdateStationHandler handles PUT /api/stations/{id}.
func NewUpdateStationHandler(stations *service.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var input service.StationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		station, err := stations.Update(r.Context(), id, input)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, station)
	}
}

// NewDeleteStationHandler handles DELETE /api/stations/{id}.
func NewDeleteStationHandler(stations *service.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := stations.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Station deleted successfully"})
	}
}

// NewResetStationsHandler handles POST /api/stations/reset. Administrative
// demo operation: wipes the collection and reinserts the demo dataset.
func NewResetStationsHandler(stations *service.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := stations.Reset(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Mock data reset successfully"})
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Conflicts report 400 on this surface, matching the original contract.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Reason)
	case errors.As(err, &conflictErr):
		writeError(w, http.StatusBadRequest, conflictErr.Reason)
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Reason)
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
