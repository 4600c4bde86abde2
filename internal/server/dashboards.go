package server

import (
	"encoding/json"
	"net/http"
	"sort"
)

// DashboardsHandler serves dashboard JSON from an in-memory map. The bare
// prefix path lists the available dashboards.
func DashboardsHandler(prefix string, dashboards map[string][]byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == prefix {
			paths := make([]string, 0, len(dashboards))
			for p := range dashboards {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(paths)
			return
		}
		if data, ok := dashboards[path]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(data)
			return
		}

		http.NotFound(w, r)
	})
}
