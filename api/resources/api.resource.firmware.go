// FilePath: api/resources/api.resource.firmware.go
package resources

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/beehively/hub/internal/errors"
	"github.com/beehively/hub/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
)

// FirmwareHandlers encapsulates the firmware resolution HTTP handlers
type FirmwareHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Stream firmware for a device
// @Description Resolve and stream the firmware binary for a token-authenticated device
// @Tags firmware
// @Produce octet-stream
// @Param token path string true "Device auth token"
// @Param version path string true "Requested firmware version"
// @Success 200 {file} binary
// @Failure 401 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /fw/stream/{token}/{version} [get]
func (h *FirmwareHandlers) StreamFirmware(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	serial, apiErr := h.hubservice.TokenAuthorizer().Authorize(vars)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	rc, err := h.hubservice.Firmware.Open(serial, vars["version"])
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, rc); err != nil {
		// Headers are gone by now; all we can do is log the broken stream.
		nuts.L.Errorf("[Firmware] Stream aborted for %s: %v", serial, err)
	}
}

// @Summary Legacy gateway firmware metadata
// @Tags firmware
// @Produce plain
// @Param facility path string true "Facility name"
// @Param gateway path string true "Gateway ID"
// @Success 200 {string} string
// @Failure 401 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /gateway/firmware/info/{facility}/{gateway} [get]
func (h *FirmwareHandlers) GatewayFirmwareInfo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)
	facility := vars["facility"]
	gatewayID := vars["gateway"]

	if !h.hubservice.Apiaries.HasGateway(facility, gatewayID) {
		respondWithError(w, errors.NewAuthError("unknown facility or gateway", nil).WithRequestID(requestID))
		return
	}

	info, err := h.hubservice.Firmware.GatewayInfo(facility, gatewayID)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(info))
}

// @Summary Legacy gateway firmware binary
// @Tags firmware
// @Produce octet-stream
// @Param facility path string true "Facility name"
// @Param gateway path string true "Gateway ID"
// @Success 200 {file} binary
// @Failure 401 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /gateway/firmware/bin/{facility}/{gateway} [get]
func (h *FirmwareHandlers) GatewayFirmwareBinary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)
	facility := vars["facility"]

	// This path historically gates on the facility only; installed gateway
	// fleets depend on that behavior.
	if !h.hubservice.Apiaries.Known(facility) {
		respondWithError(w, errors.NewAuthError("unknown facility", nil).WithRequestID(requestID))
		return
	}

	contents, err := h.hubservice.Firmware.GatewayBinary(facility, vars["gateway"])
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(contents)
}
