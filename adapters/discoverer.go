package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mybalancer/domain"
	"mybalancer/helpers"
	"mybalancer/interfaces"
)

// DiscovererHTTP creates an interfaces.Discoverer that talks to the discoverer service over
// HTTP: GET baseURL/v1/instances. Panics on empty baseURL or nil client.
//
// Parameters: baseURL — discoverer base URL (e.g. http://mydiscoverer:8080), no trailing slash;
// client — HTTP client (timeout recommended; main uses 10s).
//
// Returns: interfaces.Discoverer (*discovererHTTP).
//
// Called from cmd/main when building the balancer.
func DiscovererHTTP(baseURL string, client *http.Client) interfaces.Discoverer {
	return &discovererHTTP{
		baseURL: helpers.StrPanic(baseURL, "adapters.discoverer.go: baseURL is required"),
		client:  helpers.NilPanic(client, "adapters.discoverer.go: http client is required"),
	}
}

// discovererHTTP implements interfaces.Discoverer. Used by service.Balancer to fetch the
// instance list on each refresh. Holds baseURL and http.Client.
type discovererHTTP struct {
	baseURL string
	client  *http.Client
}

// instancesResponse is the JSON shape of GET /v1/instances response: { "instances": [ instanceInfo ] }.
type instancesResponse struct {
	Instances []instanceInfo `json:"instances"`
}

// instanceInfo is one element of the instances array in the discoverer JSON (instance_id, ipv4, port).
type instanceInfo struct {
	InstanceID string `json:"instance_id"`
	Ipv4       string `json:"ipv4"`
	Port       int    `json:"port"`
}

// GetInstances performs GET baseURL/v1/instances with 5s timeout. On 404 (discoverer
// entity_not_found when no instances) returns empty slice; on 200 parses JSON and maps to
// domain.ServiceInstance.
//
// Parameters: none.
//
// Returns: ([]domain.ServiceInstance, nil) on 200 (possibly empty slice) or 404 (empty slice);
// (nil, error) on other status, network error or JSON parse error (e.g. missing "instances" field).
//
// Called from service.Balancer.refresh (on timer and at startup).
func (d *discovererHTTP) GetInstances() ([]domain.ServiceInstance, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	reqURL := d.baseURL + "/v1/instances"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		// Discoverer returns 404 when there are no instances (entity_not_found); treat as empty list.
		return []domain.ServiceInstance{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discoverer returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var raw instancesResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw.Instances == nil {
		return nil, fmt.Errorf("discoverer response missing instances field")
	}
	out := make([]domain.ServiceInstance, 0, len(raw.Instances))
	for _, r := range raw.Instances {
		out = append(out, domain.ServiceInstance{
			InstanceID: r.InstanceID,
			Ipv4:       r.Ipv4,
			Port:       r.Port,
		})
	}
	return out, nil
}
