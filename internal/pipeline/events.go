package pipeline

import "github.com/yuin/goldmark/ast"

// EventKind identifies an entry in a flattened markdown event stream.
type EventKind int

// Event kinds.
const (
	// EventEnter opens a node; leaves are opened and closed back to back.
	EventEnter EventKind = iota
	// EventExit closes a node.
	EventExit
	// EventHTML carries a raw HTML fragment written as is.
	EventHTML
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventExit:
		return "exit"
	case EventHTML:
		return "html"
	default:
		return "unknown"
	}
}

// Event is one step of a depth-first walk over a goldmark AST.
// Node is set for enter and exit events, HTML for fragment events.
type Event struct {
	Kind EventKind
	Node ast.Node
	HTML string
}

// Document is a parsed markdown page: its source bytes, which the node
// renderers slice into, and the event stream to render.
type Document struct {
	Source []byte
	Events []Event
}

// flatten walks root depth-first and records enter/exit events.
// Images are treated as leaves: their alt-text children are rendered by
// the image renderer itself, so an image's enter is always immediately
// followed by its exit.
func flatten(root ast.Node) []Event {
	var events []Event
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			events = append(events, Event{Kind: EventExit, Node: n})
			return ast.WalkContinue, nil
		}
		events = append(events, Event{Kind: EventEnter, Node: n})
		if n.Kind() == ast.KindImage {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return events
}
