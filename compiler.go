package mdsite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Directory names under the assets directory.
const (
	MarkdownDir = "md"
	StaticDir   = config.StaticSubdir
)

const (
	markdownExt = ".md"
	indexPage   = "index"
	faviconFile = "favicon.ico"
	doctype     = "<!doctype html>\n"
)

// Minifier shrinks a complete HTML document. Pages are compiled in
// parallel, so implementations must be safe for concurrent use.
type Minifier = pipeline.Minifier

// MinifierFunc adapts a function to the Minifier interface.
type MinifierFunc = pipeline.MinifierFunc

// NopMinifier leaves documents unchanged.
var NopMinifier Minifier = pipeline.NopMinifier

// Option configures a Compiler.
type Option func(*Compiler)

// WithFS compiles from fsys instead of the configured assets directory.
// fsys must hold the md and static directories at its root.
func WithFS(fsys fs.FS) Option {
	return func(c *Compiler) {
		c.fsys = fsys
	}
}

// WithMinifier replaces the HTML minifier.
func WithMinifier(m Minifier) Option {
	return func(c *Compiler) {
		c.minifier = m
	}
}

// WithWorkers sets how many pages are compiled in parallel, overriding
// the configured value. See ResolveWorkers for n <= 0.
func WithWorkers(n int) Option {
	return func(c *Compiler) {
		c.workers = n
	}
}

// WithLogger sets the logger receiving compilation progress.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// Compiler turns the markdown pages of a site into a RouteTable.
// A Compiler is not safe for concurrent use.
type Compiler struct {
	settings pipeline.Settings
	fsys     fs.FS
	minifier Minifier
	logger   logrus.FieldLogger
	workers  int
}

// NewCompiler creates a Compiler for cfg.
// Returns an error if cfg is invalid or, unless WithFS is given, the
// assets directory cannot be opened.
func NewCompiler(cfg *Config, opts ...Option) (*Compiler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Compiler{
		settings: pipeline.Settings{
			MaxInlineSize: cfg.MaxInlineSize,
			Preload:       !cfg.DisablePreload,
			InlineCSS:     cfg.EnableInlineCSS,
			InlineSVG:     cfg.EnableInlineSVG,
		},
		workers: cfg.Workers,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.fsys == nil {
		fsys, err := assets.NewDirFS(cfg.AssetsDir)
		if err != nil {
			return nil, err
		}
		c.fsys = fsys
	}
	if c.minifier == nil {
		c.minifier = pipeline.NewHTMLMinifier()
	}
	if c.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		c.logger = discard
	}
	c.workers = ResolveWorkers(c.workers)

	return c, nil
}

// pageContext holds what every page of one compilation shares.
type pageContext struct {
	index       assets.Index
	transformer *pipeline.MarkdownTransformer
	stylesheets *pipeline.StylesheetResolver
}

// Compile compiles every *.md file directly under the md directory,
// one page at a time unless more workers are configured. A failing page
// aborts compilation: pages not yet started are skipped and no table is
// returned.
func (c *Compiler) Compile() (*RouteTable, error) {
	static, err := fs.Sub(c.fsys, StaticDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIndex, StaticDir, err)
	}
	index, err := assets.BuildIndex(c.fsys, StaticDir)
	if err != nil {
		return nil, err
	}
	pages, err := assets.BuildIndex(c.fsys, MarkdownDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	pc := &pageContext{
		index:       index,
		transformer: pipeline.NewMarkdownTransformer(static, c.settings),
		stylesheets: pipeline.NewStylesheetResolver(static, index, c.settings),
	}

	var files []string
	for _, name := range pages.Names() {
		if path.Ext(name) == markdownExt {
			files = append(files, path.Join(MarkdownDir, name))
		}
	}

	routes := make([]*Route, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(c.workers)
	for i, file := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			route, err := c.compilePage(pc, file)
			if err != nil {
				return fmt.Errorf("compiling %s: %w", file, err)
			}
			routes[i] = route
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := newRouteTable()
	for _, route := range routes {
		table.routes[route.path] = route

		c.logger.WithFields(logrus.Fields{
			"route":    route.path,
			"bytes":    len(route.body),
			"preloads": len(route.preloads),
		}).Debug("compiled route")
	}

	c.logger.WithFields(logrus.Fields{
		"routes":  table.Len(),
		"static":  len(index),
		"workers": c.workers,
	}).Info("compiled site")

	return table, nil
}

// compilePage builds the route of the markdown file at file.
//
// Preload hints end up ordered as: page script, stylesheet imports in
// reverse order, the linked stylesheet, images in document order, favicon.
func (c *Compiler) compilePage(pc *pageContext, file string) (*Route, error) {
	src, err := fileutil.ReadText(c.fsys, file)
	if err != nil {
		if errors.Is(err, ErrInvalidUTF8) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	doc, imageHints, err := pc.transformer.Parse(src)
	if err != nil {
		return nil, err
	}

	page := pageName(file, MarkdownDir)
	hints := pipeline.NewPreloadList(imageHints...)

	var buf bytes.Buffer
	buf.WriteString(doctype)

	if err := pc.stylesheets.Write(&buf, page, hints); err != nil {
		return nil, err
	}
	if err := pipeline.Render(&buf, doc); err != nil {
		return nil, err
	}

	if script := page + ".js"; pc.index.Contains(script) {
		if err := pipeline.WriteScriptLoader(&buf, script); err != nil {
			return nil, err
		}
		if c.settings.Preload {
			h, err := pipeline.NewPreloadHint(script, pipeline.PreloadScript)
			if err != nil {
				return nil, err
			}
			hints.Prepend(h)
		}
	}

	// Announced even with preloading disabled.
	if pc.index.Contains(faviconFile) {
		h, err := pipeline.NewPreloadHint(faviconFile, pipeline.PreloadImage)
		if err != nil {
			return nil, err
		}
		hints.Append(h)
	}

	body, err := c.minifier.Minify(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return newRoute(routePathOf(page), body, hints), nil
}

// RoutePath derives the route path of the markdown file at file, a path
// under mdDir: the .md extension and mdDir prefix are dropped, then any
// leading slash. The index page maps to "/".
//
// Examples:
//   - RoutePath("md/index.md", "md") -> "/"
//   - RoutePath("md/about.md", "md") -> "about"
//   - RoutePath("foo/bar.md", "") -> "foo/bar"
func RoutePath(file, mdDir string) string {
	return routePathOf(pageName(file, mdDir))
}

func pageName(file, mdDir string) string {
	page := strings.TrimSuffix(file, markdownExt)
	page = strings.TrimPrefix(page, mdDir)
	return strings.TrimLeft(page, "/")
}

func routePathOf(page string) string {
	if page == indexPage {
		return "/"
	}
	return page
}
