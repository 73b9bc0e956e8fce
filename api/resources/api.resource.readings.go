// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"net/http"
	"reflect"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/beehively/hub/internal/errors"
	"github.com/beehively/hub/internal/hubservice"
	"github.com/beehively/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// ReadingHandlers encapsulates the persisted-readings query handlers
type ReadingHandlers struct {
	hubservice *hubservice.HubService
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, func(value string) reflect.Value {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return d
}

// @Summary Query persisted readings for a device
// @Description Query stored sensor readings by serial number with an optional RFC3339 time range
// @Tags readings
// @Produce json
// @Param serial path string true "Device serial number"
// @Param start query string false "Start time (RFC3339)"
// @Param end query string false "End time (RFC3339)"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} models.PersistedReading
// @Failure 400 {object} errors.APIError
// @Router /readings/{serial} [get]
func (h *ReadingHandlers) QueryReadings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var query models.ReadingQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	readings, err := h.hubservice.QueryReadings(r.Context(), vars["serial"], query)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}
	if readings == nil {
		readings = []models.PersistedReading{}
	}

	respondWithJSON(w, http.StatusOK, readings)
}
