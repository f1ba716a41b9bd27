//go:build debug

package mdsite

const contentSecurityPolicy = "default-src * 'unsafe-inline'; object-src 'none'; frame-ancestors 'none'; base-uri 'none'"
