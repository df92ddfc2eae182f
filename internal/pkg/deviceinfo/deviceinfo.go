// internal/pkg/deviceinfo/deviceinfo.go
package deviceinfo

import (
	"net"
	"regexp"
	"strings"
)

// DeviceInfo is the structured client context attached to a session row.
type DeviceInfo struct {
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browserVersion"`
	OS             string `json:"os"`
	OSVersion      string `json:"osVersion"`
	DeviceType     string `json:"deviceType"` // desktop, mobile, tablet
	Summary        string `json:"summary"`
	City           string `json:"city"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	ISP            string `json:"isp"`
}

var (
	edgeVersionRe    = regexp.MustCompile(`(?i)edg(?:e|a|ios)?/(\d+)`)
	chromeVersionRe  = regexp.MustCompile(`(?i)chrome/(\d+)`)
	firefoxVersionRe = regexp.MustCompile(`(?i)firefox/(\d+)`)
	safariVersionRe  = regexp.MustCompile(`(?i)version/(\d+)`)
	operaVersionRe   = regexp.MustCompile(`(?i)(?:opera|opr)/(\d+)`)
	macVersionRe     = regexp.MustCompile(`(?i)mac os x (\d+[._]\d+(?:[._]\d+)?)`)
	androidVersionRe = regexp.MustCompile(`(?i)android (\d+(?:\.\d+)*)`)
	iosVersionRe     = regexp.MustCompile(`(?i)os (\d+(?:[._]\d+)*) like mac`)
)

// Parse derives browser, OS and device class from a raw user-agent string.
// Pure string inspection; geolocation fields are left for the enricher.
func Parse(userAgent string) DeviceInfo {
	ua := strings.ToLower(userAgent)
	info := DeviceInfo{
		City:    "Unknown",
		Country: "Unknown",
		Region:  "Unknown",
		ISP:     "Unknown",
	}

	info.Browser, info.BrowserVersion = detectBrowser(ua, userAgent)
	info.OS, info.OSVersion = detectOS(ua, userAgent)
	info.DeviceType = detectDeviceType(ua)

	icon := "💻"
	if info.DeviceType != "desktop" {
		icon = "📱"
	}
	info.Summary = icon + " " + info.Browser + " on " + info.OS

	return info
}

// detectBrowser applies first-match-wins precedence: Edge before Chrome
// (Edge UAs also contain "chrome"), Safari after Chrome for the same reason.
func detectBrowser(ua, raw string) (string, string) {
	switch {
	case strings.Contains(ua, "edg"):
		return "Microsoft Edge", firstMatch(edgeVersionRe, raw)
	case strings.Contains(ua, "chrome"):
		return "Google Chrome", firstMatch(chromeVersionRe, raw)
	case strings.Contains(ua, "firefox"):
		return "Mozilla Firefox", firstMatch(firefoxVersionRe, raw)
	case strings.Contains(ua, "safari"):
		return "Safari", firstMatch(safariVersionRe, raw)
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		return "Opera", firstMatch(operaVersionRe, raw)
	default:
		return "Unknown Browser", ""
	}
}

func detectOS(ua, raw string) (string, string) {
	switch {
	case strings.Contains(ua, "windows nt 10.0"):
		return "Windows", "10/11"
	case strings.Contains(ua, "windows nt 6.3"):
		return "Windows", "8.1"
	case strings.Contains(ua, "windows nt 6.2"):
		return "Windows", "8"
	case strings.Contains(ua, "windows nt 6.1"):
		return "Windows", "7"
	case strings.Contains(ua, "windows"):
		return "Windows", ""
	case strings.Contains(ua, "mac os x") && !strings.Contains(ua, "like mac os x"):
		return "macOS", dotNormalize(firstMatch(macVersionRe, raw))
	case strings.Contains(ua, "android"):
		return "Android", firstMatch(androidVersionRe, raw)
	case strings.Contains(ua, "iphone"):
		return "iOS", dotNormalize(firstMatch(iosVersionRe, raw))
	case strings.Contains(ua, "ipad"):
		return "iOS", dotNormalize(firstMatch(iosVersionRe, raw))
	case strings.Contains(ua, "linux"):
		return "Linux", ""
	case strings.Contains(ua, "cros"):
		return "Chrome OS", ""
	default:
		return "Unknown OS", ""
	}
}

// detectDeviceType classifies the client; tablet markers win over the
// mobile markers that tablet UAs usually also carry.
func detectDeviceType(ua string) string {
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	return "desktop"
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func dotNormalize(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}

// NormalizeIP takes the first address of a comma-separated forwarded-for
// chain, trims whitespace and strips the IPv6-mapped IPv4 prefix.
func NormalizeIP(ip string) string {
	if i := strings.Index(ip, ","); i >= 0 {
		ip = ip[:i]
	}
	ip = strings.TrimSpace(ip)
	ip = strings.TrimPrefix(ip, "::ffff:")
	return ip
}

// isPublicIP reports whether the address is worth a geolocation lookup.
func isPublicIP(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return !parsed.IsLoopback() && !parsed.IsPrivate() && !parsed.IsUnspecified() && !parsed.IsLinkLocalUnicast()
}
