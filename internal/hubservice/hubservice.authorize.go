// FilePath: internal/hubservice/hubservice.authorize.go
package hubservice

import (
	"github.com/beehively/hub/internal/apiary"
	"github.com/beehively/hub/internal/auth"
	"github.com/beehively/hub/internal/errors"
)

// Authorizer decides whether a submission identified by its route variables
// may write, and names the stream it writes to: a device serial number for
// the token policy, a bridge collection for the facility/monitor policy.
// The ingestion handlers are parameterized by this instead of duplicating
// per-variant authorization code.
type Authorizer interface {
	Authorize(vars map[string]string) (string, *errors.APIError)
}

// TokenAuthorizer authorizes by opaque device token against the auth cache
type TokenAuthorizer struct {
	Cache *auth.Cache
}

func (a TokenAuthorizer) Authorize(vars map[string]string) (string, *errors.APIError) {
	serial, ok := a.Cache.Resolve(vars["token"])
	if !ok {
		return "", errors.NewAuthError("unknown device token", nil)
	}
	return serial, nil
}

// BridgeAuthorizer authorizes by facility membership against the apiary
// registry. An unknown facility is an authorization failure; a facility
// member submitting for an unknown bridge is a not-found.
type BridgeAuthorizer struct {
	Apiaries *apiary.Registry
}

func (a BridgeAuthorizer) Authorize(vars map[string]string) (string, *errors.APIError) {
	facility := vars["facility"]
	monitor := vars["monitor"]

	if !a.Apiaries.Known(facility) {
		return "", errors.NewAuthError("unknown facility", nil)
	}
	if !a.Apiaries.HasBridge(facility, monitor) {
		return "", errors.NewNotFoundError("unknown monitor id", nil)
	}
	return monitor, nil
}

// TokenAuthorizer returns the token ingestion policy for this service
func (s *HubService) TokenAuthorizer() Authorizer {
	return TokenAuthorizer{Cache: s.Auth}
}

// BridgeAuthorizer returns the legacy facility/bridge ingestion policy
func (s *HubService) BridgeAuthorizer() Authorizer {
	return BridgeAuthorizer{Apiaries: s.Apiaries}
}
