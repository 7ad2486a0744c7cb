package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	appver "vincode/internal/version"
	"vincode/internal/workspace"
)

func versionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": appver.AppVersion})
}

func schemaHandler(w http.ResponseWriter, r *http.Request) {
	sch := workspace.StateSchema()
	if r.URL.Query().Get("kind") == "settings" {
		sch = workspace.SettingsSchema()
	}
	writeJSON(w, http.StatusOK, sch)
}

func fileTypesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, workspace.FileTypes)
}

// decodeJSON reads a request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// statusFor maps workspace errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, workspace.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, workspace.ErrInvalidMove),
		errors.Is(err, workspace.ErrInvalidName),
		errors.Is(err, workspace.ErrInvalidSetting),
		errors.Is(err, workspace.ErrNotFile),
		errors.Is(err, workspace.ErrNotFolder),
		errors.Is(err, workspace.ErrNotHTML),
		errors.Is(err, workspace.ErrNotOpen):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errJSON(err))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err, ok := v.(error); ok {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func errJSON(err error) map[string]string { return map[string]string{"error": err.Error()} }
