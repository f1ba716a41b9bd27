package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// funcTable collects node renderer functions by node kind.
// Later registrations override earlier ones.
type funcTable map[ast.NodeKind]renderer.NodeRendererFunc

// Register implements renderer.NodeRendererFuncRegisterer.
func (t funcTable) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	t[kind] = fn
}

// nodeRenderers is the shared, read-only renderer table. Base HTML
// renderers are registered first so extension renderers take precedence.
var nodeRenderers = sync.OnceValue(func() funcTable {
	table := make(funcTable)
	for _, r := range []renderer.NodeRenderer{
		// Raw HTML in pages is trusted: pages are part of the site itself.
		html.NewRenderer(html.WithUnsafe()),
		extension.NewTableHTMLRenderer(),
		extension.NewStrikethroughHTMLRenderer(),
		extension.NewTaskCheckBoxHTMLRenderer(),
		extension.NewFootnoteHTMLRenderer(),
		highlighting.NewHTMLRenderer(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes for smaller HTML and external stylesheet control
			),
		),
	} {
		r.RegisterFuncs(table)
	}
	return table
})

// Render writes doc as HTML to w by replaying its events through the
// goldmark node renderers. Fragment events are written verbatim.
func Render(w io.Writer, doc *Document) error {
	funcs := nodeRenderers()
	bw := bufio.NewWriter(w)
	events := doc.Events

	for i := 0; i < len(events); i++ {
		ev := events[i]
		if ev.Kind == EventHTML {
			if _, err := bw.WriteString(ev.HTML); err != nil {
				return fmt.Errorf("%w: %v", ErrRender, err)
			}
			continue
		}

		fn := funcs[ev.Node.Kind()]
		if fn == nil {
			continue
		}
		entering := ev.Kind == EventEnter
		status, err := fn(bw, doc.Source, ev.Node, entering)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRender, err)
		}
		// The renderer wrote the node's children itself.
		if entering && status == ast.WalkSkipChildren {
			i = matchingExit(events, i) - 1
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// matchingExit returns the index of the exit event closing events[i],
// or len(events) if it was dropped.
func matchingExit(events []Event, i int) int {
	node := events[i].Node
	for j := i + 1; j < len(events); j++ {
		if events[j].Kind == EventExit && events[j].Node == node {
			return j
		}
	}
	return len(events)
}
