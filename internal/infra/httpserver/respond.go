package httpserver

import (
	"encoding/json"
	"net/http"
)

// envelope is the JSON body of every API response
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, payload envelope) error {
	body := envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{"success": false, "error": err.Error()})
}
