// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net"
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForAssetsDir returns hints when the assets directory layout is wrong.
func ForAssetsDir(assetsDir string) string {
	return format("expected " + filepath.Join(assetsDir, "md") + " and " +
		filepath.Join(assetsDir, "static") + "; set --assets-dir or MDSITE_ASSETS_DIR")
}

// ForMissingStylesheet returns hints when inline CSS is enabled but the
// fallback stylesheet does not exist.
func ForMissingStylesheet(staticDir string) string {
	return format("add " + filepath.Join(staticDir, "main.css") + " or disable --enable-inline-css")
}

// ForInvalidUTF8 returns hints for files that are not valid UTF-8.
func ForInvalidUTF8() string {
	return format("re-save the file with UTF-8 encoding")
}

// ForSVGAnchor returns hints for SVG files that cannot be inlined.
func ForSVGAnchor() string {
	return format("inlined SVG files must contain an <svg element; disable --enable-inline-svg to link them instead")
}

// ForListen returns hints for listener errors on the configured address.
func ForListen(address string) string {
	var hints []string
	hints = append(hints, "check that nothing else listens on "+address)
	if _, port, err := net.SplitHostPort(address); err == nil && isPrivilegedPort(port) {
		hints = append(hints, "ports below 1024 need elevated privileges, try --address 127.0.0.1:8080")
	}
	return formatHints(hints)
}

func isPrivilegedPort(port string) bool {
	if port == "" || len(port) > 3 {
		return false
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return false
		}
	}
	return port != "0"
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
