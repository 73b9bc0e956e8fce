// FilePath: api/resources/api.resource.ingest.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/beehively/hub/internal/errors"
	"github.com/beehively/hub/internal/hubservice"
	"github.com/beehively/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// IngestHandlers encapsulates the telemetry ingestion HTTP handlers
type IngestHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Submit sensor reading batches
// @Description Submit an array of reading batches from a token-authenticated device
// @Tags ingest
// @Accept json
// @Produce json
// @Param token path string true "Device auth token"
// @Param batches body []models.ReadingBatch true "Reading batches"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.APIError
// @Failure 406 {object} errors.APIError
// @Router /data/{token} [post]
func (h *IngestHandlers) ReceiveReadings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	// Authorization happens before any part of the body is parsed: an
	// unknown token does no work at all.
	if _, apiErr := h.hubservice.TokenAuthorizer().Authorize(vars); apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	var batches []models.ReadingBatch
	if err := json.NewDecoder(r.Body).Decode(&batches); err != nil {
		respondWithError(w, errors.NewFormatError("malformed reading batch payload", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.IngestDeviceReadings(r.Context(), vars["token"], batches); err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// @Summary Submit a legacy monitor report
// @Description Submit a fixed-field monitor report for a bridge, authorized by facility membership
// @Tags ingest
// @Accept json
// @Produce json
// @Param facility path string true "Facility name"
// @Param monitor path string true "Monitor (bridge) ID"
// @Param report body models.MonitorReport true "Monitor report"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 401 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /ingest/{facility}/{monitor} [post]
func (h *IngestHandlers) ReceiveMonitorReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	bridgeID, apiErr := h.hubservice.BridgeAuthorizer().Authorize(vars)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	var report models.MonitorReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondWithError(w, errors.NewValidationError("malformed monitor report", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.IngestMonitorReport(r.Context(), bridgeID, &report); err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
