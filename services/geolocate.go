package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fieldreport/model"
)

// probeTimeout bounds a location lookup. On expiry the attach proceeds
// without a location.
const probeTimeout = 10 * time.Second

// LocationProbe is the best-effort positioning capability. It returns a
// location or reports that none is available; it never returns an error
// because its failure must not reach the authoring workflow.
type LocationProbe interface {
	Locate(ctx context.Context) (*model.Geolocation, bool)
}

// HTTPLocationProbe asks a configured endpoint for coordinates. An empty
// endpoint disables the probe entirely.
type HTTPLocationProbe struct {
	endpoint string
	client   *http.Client
}

func NewHTTPLocationProbe(endpoint string) *HTTPLocationProbe {
	return &HTTPLocationProbe{
		endpoint: endpoint,
		client:   &http.Client{Timeout: probeTimeout},
	}
}

func (p *HTTPLocationProbe) Locate(ctx context.Context) (*model.Geolocation, bool) {
	if p.endpoint == "" {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, false
	}
	var loc model.Geolocation
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, false
	}
	return &loc, true
}
