package httpapi

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// writeFailure reports validation and processing failures with a 200
// status and success:false, so a client can branch on the body without
// special-casing HTTP status.
func writeFailure(w http.ResponseWriter, errMsg string) {
	writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": errMsg})
}

func writeFailureStatus(w http.ResponseWriter, status int, errMsg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": errMsg})
}
