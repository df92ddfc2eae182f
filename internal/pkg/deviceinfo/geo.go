// internal/pkg/deviceinfo/geo.go
package deviceinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultGeoEndpoint = "http://ip-api.com/json"
	geoHTTPTimeout     = 3 * time.Second
)

// Enricher combines user-agent parsing with a best-effort reverse IP
// geolocation lookup. Lookup failures never propagate to the caller.
type Enricher struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewEnricher(logger *zap.Logger) *Enricher {
	return &Enricher{
		endpoint: defaultGeoEndpoint,
		client:   &http.Client{Timeout: geoHTTPTimeout},
		logger:   logger,
	}
}

type geoResponse struct {
	Status     string `json:"status"`
	City       string `json:"city"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	ISP        string `json:"isp"`
}

// Enrich parses the user agent and, for public addresses, annotates the
// result with city/country/region/ISP from the geolocation service.
func (e *Enricher) Enrich(ctx context.Context, userAgent, ip string) DeviceInfo {
	info := Parse(userAgent)

	ip = NormalizeIP(ip)
	if !isPublicIP(ip) {
		return info
	}

	geo, err := e.lookup(ctx, ip)
	if err != nil {
		e.logger.Debug("geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return info
	}

	if geo.City != "" {
		info.City = geo.City
	}
	if geo.Country != "" {
		info.Country = geo.Country
	}
	if geo.RegionName != "" {
		info.Region = geo.RegionName
	}
	if geo.ISP != "" {
		info.ISP = geo.ISP
	}

	return info
}

func (e *Enricher) lookup(ctx context.Context, ip string) (*geoResponse, error) {
	url := fmt.Sprintf("%s/%s?fields=status,city,country,regionName,isp", e.endpoint, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation service returned %d", resp.StatusCode)
	}

	var geo geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return nil, err
	}
	if geo.Status != "success" {
		return nil, fmt.Errorf("geolocation lookup unsuccessful for %s", ip)
	}

	return &geo, nil
}
