// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/beehively/hub/internal/errors"
	"github.com/beehively/hub/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Ingest   *IngestHandlers
	Firmware *FirmwareHandlers
	Gateway  *GatewayHandlers
	Readings *ReadingHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService) *Resources {
	return &Resources{
		Ingest:   &IngestHandlers{hubservice: svc},
		Firmware: &FirmwareHandlers{hubservice: svc},
		Gateway:  &GatewayHandlers{hubservice: svc},
		Readings: &ReadingHandlers{hubservice: svc},
	}
}

// HealthCheck reports service status and version
func (res *Resources) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": nuts.GetVersion(),
	})
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
