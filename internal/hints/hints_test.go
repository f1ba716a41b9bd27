package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "no paths",
			paths:    nil,
			contains: "--config",
		},
		{
			name:     "local paths only",
			paths:    []string{"site.yaml", "site.yml"},
			contains: "--config /path/to/file.yaml",
		},
		{
			name:     "suggests user config path",
			paths:    []string{"site.yaml", "/home/me/.config/go-mdsite/site.yaml"},
			contains: "or create /home/me/.config/go-mdsite/site.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForAssetsDir(t *testing.T) {
	t.Parallel()

	hint := ForAssetsDir("site")

	for _, want := range []string{"md", "static", "--assets-dir", "MDSITE_ASSETS_DIR"} {
		if !strings.Contains(hint, want) {
			t.Errorf("expected hint to contain %q, got %q", want, hint)
		}
	}
}

func TestForMissingStylesheet(t *testing.T) {
	t.Parallel()

	hint := ForMissingStylesheet("assets/static")

	if !strings.Contains(hint, "main.css") {
		t.Errorf("expected main.css mention, got %q", hint)
	}
	if !strings.Contains(hint, "--enable-inline-css") {
		t.Errorf("expected flag mention, got %q", hint)
	}
}

func TestForListen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		address        string
		wantPrivileged bool
	}{
		{name: "privileged port", address: "0.0.0.0:80", wantPrivileged: true},
		{name: "high port", address: "127.0.0.1:8080", wantPrivileged: false},
		{name: "named port", address: "localhost:http", wantPrivileged: false},
		{name: "ephemeral port", address: "127.0.0.1:0", wantPrivileged: false},
		{name: "ipv6 privileged port", address: "[::1]:80", wantPrivileged: true},
		{name: "ipv6 high port", address: "[::1]:8080", wantPrivileged: false},
		{name: "missing port", address: "localhost", wantPrivileged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForListen(tt.address)

			if !strings.Contains(hint, tt.address) {
				t.Errorf("expected address in hint, got %q", hint)
			}
			if got := strings.Contains(hint, "elevated privileges"); got != tt.wantPrivileged {
				t.Errorf("privileged hint = %v, want %v: %q", got, tt.wantPrivileged, hint)
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForConfigNotFound(nil),
		ForAssetsDir("assets"),
		ForMissingStylesheet("assets/static"),
		ForInvalidUTF8(),
		ForSVGAnchor(),
		ForListen("0.0.0.0:80"),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
