// Package pipeline implements the per-route compilation stages.
//
// Each markdown page passes through these stages, in order:
//   - Markdown parsing via goldmark into a flat event stream
//   - Event rewriting: local SVG images inlined, other local images
//     registered as preload hints
//   - Stylesheet resolution: link or inline the page stylesheet, with
//     @import statements hoisted into their own <link> tags
//   - Event rendering back to HTML through goldmark's node renderers
//   - Async script loader markup for page scripts
//   - Minification of the assembled document
//
// Preload hints accumulate in a PreloadList whose ordering rules are
// fixed by the stage that adds each hint. Orchestration across pages is
// done by the root mdsite package.
package pipeline
