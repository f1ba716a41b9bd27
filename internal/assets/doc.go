// Package assets indexes the static asset directory of a site.
//
// # Directory Structure
//
// A site keeps its sources under one assets directory:
//
//	{assetsDir}/
//	├── md/
//	│   └── {route}.md          # one page per markdown file (flat)
//	└── static/
//	    ├── main.css            # default stylesheet
//	    ├── {route}.css         # optional per-page stylesheet
//	    ├── {route}.js          # optional per-page script
//	    └── favicon.ico         # optional, always preloaded
//
// Only direct children of static/ are indexed; subdirectories are ignored.
// The index answers existence questions and never returns content.
//
// # Security
//
// NewDirFS resolves symlinks in the base path and verifies it is a readable
// directory. Paths derived from markdown image sources are validated with
// ValidateAssetPath before any file is opened.
package assets
