// Package algoutil holds small http helpers shared by the services.
package algoutil

import (
	"encoding/json"
	"net/http"

	"github.com/lonng/taiserver/protocol"
)

// AccessControl allows cross origin calls from origin, "*" when empty.
func AccessControl(origin string, h http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type")

		h.ServeHTTP(w, r)
	})
}

// OptionControl answers preflight requests without reaching h.
func OptionControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			json.NewEncoder(w).Encode(&protocol.StringResponse{Code: 0, Data: "success"})
			return
		}

		h.ServeHTTP(w, r)
	})
}
