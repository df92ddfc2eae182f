package deviceinfo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		userAgent      string
		wantBrowser    string
		wantOS         string
		wantOSVersion  string
		wantDeviceType string
	}{
		{
			name:           "chrome on android phone",
			userAgent:      "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			wantBrowser:    "Google Chrome",
			wantOS:         "Android",
			wantOSVersion:  "13",
			wantDeviceType: "mobile",
		},
		{
			name:           "chrome on windows 10",
			userAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			wantBrowser:    "Google Chrome",
			wantOS:         "Windows",
			wantOSVersion:  "10/11",
			wantDeviceType: "desktop",
		},
		{
			name:           "edge beats chrome",
			userAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91",
			wantBrowser:    "Microsoft Edge",
			wantOS:         "Windows",
			wantOSVersion:  "10/11",
			wantDeviceType: "desktop",
		},
		{
			name:           "safari on mac",
			userAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
			wantBrowser:    "Safari",
			wantOS:         "macOS",
			wantOSVersion:  "10.15.7",
			wantDeviceType: "desktop",
		},
		{
			name:           "firefox on windows 7",
			userAgent:      "Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0",
			wantBrowser:    "Mozilla Firefox",
			wantOS:         "Windows",
			wantOSVersion:  "7",
			wantDeviceType: "desktop",
		},
		{
			name:           "safari on ipad is a tablet",
			userAgent:      "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			wantBrowser:    "Safari",
			wantOS:         "iOS",
			wantOSVersion:  "16.6",
			wantDeviceType: "tablet",
		},
		{
			name:           "safari on iphone",
			userAgent:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
			wantBrowser:    "Safari",
			wantOS:         "iOS",
			wantOSVersion:  "17.1",
			wantDeviceType: "mobile",
		},
		{
			name:           "firefox on linux",
			userAgent:      "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			wantBrowser:    "Mozilla Firefox",
			wantOS:         "Linux",
			wantOSVersion:  "",
			wantDeviceType: "desktop",
		},
		{
			name:           "empty user agent",
			userAgent:      "",
			wantBrowser:    "Unknown Browser",
			wantOS:         "Unknown OS",
			wantOSVersion:  "",
			wantDeviceType: "desktop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Parse(tt.userAgent)
			if info.Browser != tt.wantBrowser {
				t.Errorf("Browser = %q, want %q", info.Browser, tt.wantBrowser)
			}
			if info.OS != tt.wantOS {
				t.Errorf("OS = %q, want %q", info.OS, tt.wantOS)
			}
			if info.OSVersion != tt.wantOSVersion {
				t.Errorf("OSVersion = %q, want %q", info.OSVersion, tt.wantOSVersion)
			}
			if info.DeviceType != tt.wantDeviceType {
				t.Errorf("DeviceType = %q, want %q", info.DeviceType, tt.wantDeviceType)
			}
		})
	}
}

func TestParseSummary(t *testing.T) {
	info := Parse("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36")
	want := "💻 Google Chrome on Windows"
	if info.Summary != want {
		t.Errorf("Summary = %q, want %q", info.Summary, want)
	}

	info = Parse("Mozilla/5.0 (Linux; Android 13; Pixel 7) Chrome/120.0 Mobile Safari/537.36")
	want = "📱 Google Chrome on Android"
	if info.Summary != want {
		t.Errorf("Summary = %q, want %q", info.Summary, want)
	}
}

func TestNormalizeIP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"203.0.113.7", "203.0.113.7"},
		{"203.0.113.7, 10.0.0.1, 172.16.0.1", "203.0.113.7"},
		{"  203.0.113.7 ", "203.0.113.7"},
		{"::ffff:203.0.113.7", "203.0.113.7"},
		{"::ffff:192.168.1.20, 10.0.0.1", "192.168.1.20"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeIP(tt.in); got != tt.want {
			t.Errorf("NormalizeIP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnrichSkipsPrivateAddresses(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	e := NewEnricher(zap.NewNop())
	e.endpoint = srv.URL

	for _, ip := range []string{"127.0.0.1", "10.1.2.3", "192.168.1.10", "", "not-an-ip"} {
		info := e.Enrich(context.Background(), "Mozilla/5.0", ip)
		if info.City != "Unknown" || info.Country != "Unknown" {
			t.Errorf("Enrich(%q): expected unknown geo fields, got %+v", ip, info)
		}
	}
	if called {
		t.Error("geolocation service should not be called for private addresses")
	}
}

func TestEnrichUsesLookupResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":     "success",
			"city":       "Berlin",
			"country":    "Germany",
			"regionName": "Berlin",
			"isp":        "Example ISP",
		})
	}))
	defer srv.Close()

	e := NewEnricher(zap.NewNop())
	e.endpoint = srv.URL

	info := e.Enrich(context.Background(), "Mozilla/5.0", "203.0.113.7")
	if info.City != "Berlin" || info.Country != "Germany" || info.ISP != "Example ISP" {
		t.Errorf("unexpected geo fields: %+v", info)
	}
}

func TestEnrichSwallowsLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewEnricher(zap.NewNop())
	e.endpoint = srv.URL

	info := e.Enrich(context.Background(), "Mozilla/5.0", "203.0.113.7")
	if info.City != "Unknown" || info.Country != "Unknown" || info.ISP != "Unknown" {
		t.Errorf("expected unknown geo fields on failure, got %+v", info)
	}
}
