package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/five82/carlot/internal/carapi"
)

// GetCars answers a vehicle query the way the upstream endpoint does: ids and
// coordinates are not part of the payload.
func (h *httpServer) GetCars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.apiKey != "" && r.Header.Get(apiKeyHeader) != h.apiKey {
		h.log.Printf("rejected request without valid api key from %s", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "invalid api key")
		return
	}

	vars := r.URL.Query()
	limit, err := validateLimit(vars)
	if err != nil {
		h.log.Printf("limit validation failed: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	model := strings.TrimSpace(vars.Get("model"))

	cars := matchCars(h.vehicles(), model, limit)
	h.log.Printf("GET %s model=%q limit=%d -> %d cars", carsPath, model, limit, len(cars))

	if err := json.NewEncoder(w).Encode(cars); err != nil {
		h.log.Printf("encode response: %v", err)
	}
}

func validateLimit(vars url.Values) (int, error) {
	raw := strings.TrimSpace(vars.Get("limit"))
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer: %q", raw)
	}
	if limit < 1 || limit > maxLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d: %d", maxLimit, limit)
	}
	return limit, nil
}

func matchCars(all []carapi.Vehicle, model string, limit int) []carapi.Vehicle {
	needle := strings.ToLower(model)
	out := make([]carapi.Vehicle, 0, min(len(all), limit))
	for _, v := range all {
		if len(out) == limit {
			break
		}
		if needle != "" && !strings.Contains(strings.ToLower(v.Model), needle) {
			continue
		}
		v.ID = 0
		v.Latitude = 0
		v.Longitude = 0
		out = append(out, v)
	}
	return out
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
