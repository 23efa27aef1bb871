package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSON emits a JSON body with the given status. The middleware layer
// cannot use the handler package's response helpers without an import cycle,
// so it carries its own.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
