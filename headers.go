package mdsite

import (
	"net/http"
	"strconv"
)

// Security header values shared by every route.
const (
	referrerPolicy          = "no-referrer, strict-origin-when-cross-origin"
	strictTransportSecurity = "max-age=63072000"
	contentTypeOptions      = "nosniff"
	frameOptions            = "SAMEORIGIN"
	xssProtection           = "1; mode=block"
	contentTypeHTML         = "text/html; charset=utf-8"
)

// ContentSecurityPolicy returns the policy attached to every route.
// Binaries built with the "debug" tag allow assets from any origin;
// others only allow HTTPS.
func ContentSecurityPolicy() string {
	return contentSecurityPolicy
}

// routeHeader builds the fixed response header of a route: Link preload
// values in order, the security headers, and the body's type and length.
func routeHeader(links []string, bodyLen int) http.Header {
	h := make(http.Header, 9)
	for _, link := range links {
		h.Add("Link", link)
	}
	h.Set("Content-Security-Policy", contentSecurityPolicy)
	h.Set("Referrer-Policy", referrerPolicy)
	h.Set("Strict-Transport-Security", strictTransportSecurity)
	h.Set("X-Content-Type-Options", contentTypeOptions)
	h.Set("X-Frame-Options", frameOptions)
	h.Set("X-XSS-Protection", xssProtection)
	h.Set("Content-Type", contentTypeHTML)
	h.Set("Content-Length", strconv.Itoa(bodyLen))
	return h
}
