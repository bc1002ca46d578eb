package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/catalog-api/internal/api/shared"
)

// TestingHandler serves the endpoints used by automated API test suites to
// probe the service.
type TestingHandler struct {
	version string
	now     func() time.Time
}

// NewTestingHandler creates a TestingHandler reporting the given API version.
func NewTestingHandler(version string) *TestingHandler {
	return &TestingHandler{version: version, now: time.Now}
}

// Health handles GET /test/health requests
func (h *TestingHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: h.now().UTC(),
	})
}

// Echo handles POST /test/echo requests. Any JSON object is returned unchanged.
func (h *TestingHandler) Echo(w http.ResponseWriter, r *http.Request) {
	obj, err := shared.DecodeJSONObject(w, r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, obj)
}
