//go:build !debug

package mdsite

// Assets are limited to HTTPS.
const contentSecurityPolicy = "default-src https: 'unsafe-inline'; object-src 'none'; frame-ancestors 'none'; base-uri 'none'"
