package mdsite

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

// PreloadHint is one resource announced in a Link preload header.
type PreloadHint = pipeline.PreloadHint

// Route is one compiled page. A Route never changes after compilation
// and is safe for concurrent use.
type Route struct {
	path     string
	body     []byte
	preloads []PreloadHint
	header   http.Header
}

func newRoute(path string, body []byte, preloads *pipeline.PreloadList) *Route {
	return &Route{
		path:     path,
		body:     body,
		preloads: preloads.Hints(),
		header:   routeHeader(preloads.Values(), len(body)),
	}
}

// Path returns the route path: "/" for the index page, the page name
// without extension otherwise.
func (r *Route) Path() string { return r.path }

// Body returns a copy of the minified document.
func (r *Route) Body() []byte { return append([]byte(nil), r.body...) }

// Preloads returns a copy of the preload hints in header order.
func (r *Route) Preloads() []PreloadHint { return append([]PreloadHint(nil), r.preloads...) }

// Header returns a copy of the response header.
func (r *Route) Header() http.Header { return r.header.Clone() }

// ServeHTTP writes the precomputed response for GET and HEAD requests.
func (r *Route) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	dst := w.Header()
	for k, v := range r.header {
		dst[k] = append([]string(nil), v...)
	}
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(r.body)
}

// RouteTable is the set of compiled routes, keyed by route path.
// It is immutable and safe for concurrent use.
type RouteTable struct {
	routes map[string]*Route
}

func newRouteTable() *RouteTable {
	return &RouteTable{routes: make(map[string]*Route)}
}

// Len returns the number of routes.
func (t *RouteTable) Len() int { return len(t.routes) }

// Lookup returns the route serving the request path urlPath.
func (t *RouteTable) Lookup(urlPath string) (*Route, bool) {
	key := "/"
	if urlPath != "/" {
		key = strings.TrimPrefix(urlPath, "/")
	}
	r, ok := t.routes[key]
	return r, ok
}

// Routes returns the routes ordered by path.
func (t *RouteTable) Routes() []*Route {
	routes := make([]*Route, 0, len(t.routes))
	for _, r := range t.routes {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].path < routes[j].path })
	return routes
}

// ServeHTTP serves the matching route or responds 404.
func (t *RouteTable) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	t.Handler(nil).ServeHTTP(w, req)
}

// Handler returns a handler serving the compiled routes and passing every
// other request to fallback. A nil fallback responds 404.
func (t *RouteTable) Handler(fallback http.Handler) http.Handler {
	if fallback == nil {
		fallback = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r, ok := t.Lookup(req.URL.Path); ok {
			r.ServeHTTP(w, req)
			return
		}
		fallback.ServeHTTP(w, req)
	})
}
