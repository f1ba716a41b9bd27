// Package mdsite compiles a directory of markdown pages into precomputed,
// security-hardened HTML responses.
//
// # Quick Start
//
// Compile the pages under the configured assets directory and serve them:
//
//	cfg := mdsite.DefaultConfig()
//	compiler, err := mdsite.NewCompiler(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	routes, err := compiler.Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Fatal(http.ListenAndServe(cfg.Address, routes))
//
// # Directory Layout
//
// The assets directory holds two flat directories:
//
//	assets/
//	├── md/        markdown pages, one route per *.md file
//	└── static/    stylesheets, scripts, images, favicon.ico
//
// index.md is served at "/"; every other page at "/{name}".
//
// # Compilation
//
// Each page is compiled once, before any request is served:
//
//  1. Markdown parsed by goldmark (GFM, footnotes, heading IDs, highlighting)
//  2. Site-local SVG images inlined when small enough, other local images
//     announced as preload hints
//  3. Stylesheet {page}.css, or main.css, linked or inlined with its
//     @import statements hoisted into <link> tags
//  4. Async loader written for {page}.js when present
//  5. Document minified and bound to its headers
//
// Pages are compiled one at a time by default; Config.Workers or
// WithWorkers allow several in parallel with identical results. A failure
// on any page aborts the whole compilation; no partial route table is
// ever returned.
//
// # Serving
//
// A RouteTable is immutable and safe for concurrent use. Every response
// carries the same security headers plus the page's Link preload headers.
// The Content-Security-Policy is relaxed in binaries built with the
// "debug" tag.
package mdsite
