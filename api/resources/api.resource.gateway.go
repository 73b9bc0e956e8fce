// FilePath: api/resources/api.resource.gateway.go
package resources

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/beehively/hub/internal/errors"
	"github.com/beehively/hub/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
)

// GatewayHandlers encapsulates the gateway ping and time HTTP handlers
type GatewayHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Record a gateway ping
// @Tags gateway
// @Param facility path string true "Facility name"
// @Param gateway path string true "Gateway ID"
// @Success 200
// @Failure 401 {object} errors.APIError
// @Router /gateway/ping/{facility}/{gateway} [put]
func (h *GatewayHandlers) RecordPing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	if !h.hubservice.Apiaries.Known(vars["facility"]) {
		respondWithError(w, errors.NewAuthError("unknown facility", nil).WithRequestID(requestID))
		return
	}

	h.hubservice.RecordPing(r.Context(), vars["gateway"])
	w.WriteHeader(http.StatusOK)
}

// @Summary Get the last gateway ping time
// @Tags gateway
// @Produce plain
// @Param facility path string true "Facility name"
// @Param gateway path string true "Gateway ID"
// @Success 200 {string} string
// @Failure 401 {object} errors.APIError
// @Router /gateway/ping/{facility}/{gateway} [get]
func (h *GatewayHandlers) GetLastPing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	if !h.hubservice.Apiaries.Known(vars["facility"]) {
		respondWithError(w, errors.NewAuthError("unknown facility", nil).WithRequestID(requestID))
		return
	}

	last := h.hubservice.LastPing(vars["gateway"])
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(last.Format(time.RFC3339)))
}

// @Summary Current server time in epoch milliseconds
// @Tags gateway
// @Produce plain
// @Success 200 {string} string
// @Router /millis [get]
func (h *GatewayHandlers) Millis(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(strconv.FormatInt(time.Now().UnixMilli(), 10)))
}
