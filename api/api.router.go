package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/beehively/hub/api/resources"
	"github.com/beehively/hub/internal/hubservice"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

// The telemetry and firmware routes are a wire contract with deployed
// gateway firmware: no version prefix, exact paths.
func (r *Router) setupRoutes() {
	// Device ingestion and firmware (token-authorized)
	r.router.HandleFunc("/data/{token}", r.resources.Ingest.ReceiveReadings).Methods(http.MethodPost)
	r.router.HandleFunc("/fw/stream/{token}/{version}", r.resources.Firmware.StreamFirmware).Methods(http.MethodGet)

	// Legacy facility/bridge ingestion and firmware
	r.router.HandleFunc("/ingest/{facility}/{monitor}", r.resources.Ingest.ReceiveMonitorReport).Methods(http.MethodPost)
	r.router.HandleFunc("/gateway/firmware/info/{facility}/{gateway}", r.resources.Firmware.GatewayFirmwareInfo).Methods(http.MethodGet)
	r.router.HandleFunc("/gateway/firmware/bin/{facility}/{gateway}", r.resources.Firmware.GatewayFirmwareBinary).Methods(http.MethodGet)

	// Gateway liveness
	r.router.HandleFunc("/gateway/ping/{facility}/{gateway}", r.resources.Gateway.RecordPing).Methods(http.MethodPut)
	r.router.HandleFunc("/gateway/ping/{facility}/{gateway}", r.resources.Gateway.GetLastPing).Methods(http.MethodGet)
	r.router.HandleFunc("/millis", r.resources.Gateway.Millis).Methods(http.MethodGet)

	// Operator surface
	r.router.HandleFunc("/readings/{serial}", r.resources.Readings.QueryReadings).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
