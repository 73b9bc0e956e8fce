// FilePath: internal/apiary/apiary.go

// Package apiary holds the facility -> gateway -> bridge authorization
// hierarchy. The registry is loaded once from a config document at startup
// and never mutated, so queries run lock-free.
package apiary

import (
	"encoding/json"
	"fmt"
	"os"

	nuts "github.com/vaudience/go-nuts"
)

// Apiary is one facility: a named set of gateways, each aggregating an
// ordered list of sensor bridges.
type Apiary struct {
	Name     string              `json:"name"`
	Gateways map[string][]string `json:"gateways"`
}

// HasGateway reports whether the gateway id belongs to this apiary.
func (a *Apiary) HasGateway(id string) bool {
	_, ok := a.Gateways[id]
	return ok
}

// HasBridge reports whether the bridge id appears in any gateway list.
// Linear scan; membership lists are small and the registry is read-only.
func (a *Apiary) HasBridge(id string) bool {
	for _, bridges := range a.Gateways {
		for _, bridge := range bridges {
			if bridge == id {
				return true
			}
		}
	}
	return false
}

// Bridges returns the flattened list of all bridge ids in this apiary.
func (a *Apiary) Bridges() []string {
	var collected []string
	for _, bridges := range a.Gateways {
		collected = append(collected, bridges...)
	}
	return collected
}

// Registry answers membership queries across all configured apiaries.
type Registry struct {
	apiaries map[string]*Apiary
}

// NewRegistry builds a registry from an already-parsed apiary map.
func NewRegistry(apiaries map[string]*Apiary) *Registry {
	return &Registry{apiaries: apiaries}
}

// LoadRegistry reads the apiary config document, a JSON object mapping
// facility name -> {gateway id -> [bridge id, ...]}.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading apiary config %s: %w", path, err)
	}

	var apiaries map[string]*Apiary
	if err := json.Unmarshal(raw, &apiaries); err != nil {
		return nil, fmt.Errorf("parsing apiary config %s: %w", path, err)
	}

	nuts.L.Infof("[Apiary] Loaded %d apiaries from %s", len(apiaries), path)
	return &Registry{apiaries: apiaries}, nil
}

// Known reports whether the facility exists at all.
func (r *Registry) Known(facility string) bool {
	_, ok := r.apiaries[facility]
	return ok
}

// HasGateway reports whether the gateway belongs to the named facility.
// An unknown facility always yields false.
func (r *Registry) HasGateway(facility, gatewayID string) bool {
	apiary, ok := r.apiaries[facility]
	return ok && apiary.HasGateway(gatewayID)
}

// HasBridge reports whether the bridge id appears in any gateway list of
// the named facility. An unknown facility always yields false.
func (r *Registry) HasBridge(facility, bridgeID string) bool {
	apiary, ok := r.apiaries[facility]
	return ok && apiary.HasBridge(bridgeID)
}

// AllBridges returns the flattened bridge list of the named facility.
func (r *Registry) AllBridges(facility string) []string {
	apiary, ok := r.apiaries[facility]
	if !ok {
		return nil
	}
	return apiary.Bridges()
}

// EveryBridge returns the bridge ids of all facilities. Used at boot to
// make sure every referenced bridge has a corresponding store collection.
func (r *Registry) EveryBridge() []string {
	var collected []string
	for _, apiary := range r.apiaries {
		collected = append(collected, apiary.Bridges()...)
	}
	return collected
}
