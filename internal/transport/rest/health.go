package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// Pinger is implemented by optional backing services (database, redis).
type Pinger interface {
	Ping(ctx context.Context) error
}

// readiness reports whether the phoneme corpus has been loaded.
type readiness interface {
	Ready() bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	corpus  readiness
	deps    map[string]Pinger
	version string
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler. deps maps a component name to its
// pinger; nil entries are ignored.
func NewHealthHandler(corpus readiness, version string, deps map[string]Pinger) *HealthHandler {
	clean := make(map[string]Pinger, len(deps))
	for name, p := range deps {
		if p != nil {
			clean[name] = p
		}
	}
	return &HealthHandler{corpus: corpus, deps: clean, version: version, timeout: 3 * time.Second}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the corpus is loaded and every
// configured dependency answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	body := HealthResponse{Status: "ok", Timestamp: time.Now()}

	if !h.corpus.Ready() {
		status, body.Status = http.StatusServiceUnavailable, "down"
	} else {
		for _, name := range h.names() {
			if err := h.deps[name].Ping(ctx); err != nil {
				status, body.Status = http.StatusServiceUnavailable, "down"
				break
			}
		}
	}

	writeJSON(w, status, body)
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.deps)+1)
	overallStatus := "ok"

	if h.corpus.Ready() {
		components["corpus"] = CompStatus{Status: "ok"}
	} else {
		components["corpus"] = CompStatus{Status: "down"}
		overallStatus = "down"
	}

	for _, name := range h.names() {
		start := time.Now()
		err := h.deps[name].Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[name] = CompStatus{Status: "down"}
			overallStatus = "down"
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) names() []string {
	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
