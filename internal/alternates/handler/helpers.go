package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"alternates-service/internal/alternates/model"
)

type errorBody struct {
	Error string     `json:"error"`
	Kind  model.Kind `json:"kind,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, kind model.Kind) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg, Kind: kind})
}

// statusFor: content problems are 422, unusable uploads 400.
func statusFor(k model.Kind) int {
	switch k {
	case model.KindMissingColumns, model.KindComputation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// attachment quotes or RFC 2231-encodes the name as needed.
func attachment(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}
