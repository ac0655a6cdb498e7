package manuscript

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Run is a span of text sharing one style. At most one style flag is set.
type Run struct {
	Text          string `json:"text"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
}

// Style identifies the inline style a markup event opens or closes.
type Style int

// Inline styles understood by the tokenizer.
const (
	StyleNone Style = iota
	StyleItalic
	StyleBold
	StyleStrikethrough
)

// EventKind distinguishes markup events.
type EventKind int

// Markup event kinds.
const (
	EventText EventKind = iota
	EventStart
	EventEnd
)

// Event is one step of the markup stream for a line. Start and End events
// carry StyleNone for containers that are not emphasis (paragraphs, links,
// list items and so on).
type Event struct {
	Kind  EventKind
	Style Style
	Text  string
}

// runState is the tokenizer state: the run being accumulated and the runs
// already emitted.
type runState struct {
	current Run
	runs    []Run
}

// step applies one event to the state. Style starts and every End flush the
// current run, so styles never compose.
func (s runState) step(e Event) runState {
	switch e.Kind {
	case EventStart:
		if e.Style == StyleNone {
			return s
		}
		s.runs = append(s.runs, s.current)
		s.current = styledRun(e.Style)
	case EventText:
		s.current.Text += e.Text
	case EventEnd:
		s.runs = append(s.runs, s.current)
		s.current = Run{}
	}
	return s
}

func styledRun(style Style) Run {
	switch style {
	case StyleItalic:
		return Run{Italic: true}
	case StyleBold:
		return Run{Bold: true}
	case StyleStrikethrough:
		return Run{Strikethrough: true}
	default:
		return Run{}
	}
}

// ReduceEvents folds an event stream into runs.
func ReduceEvents(events []Event) []Run {
	state := runState{}
	for _, e := range events {
		state = state.step(e)
	}
	return state.runs
}

// inlineParser is a goldmark instance limited to CommonMark plus strikethrough.
// goldmark parsers are safe for concurrent use.
var inlineParser = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// Tokenize converts one line of Markdown into styled runs. A blank line
// yields no runs. Runs with empty text may appear around style boundaries.
func Tokenize(line string) []Run {
	return ReduceEvents(LineEvents(line))
}

// LineEvents parses a line and returns its markup events in document order.
// Code spans, raw HTML and thematic breaks produce no events. Adjacent text
// segments are merged and decoded together, so an escape split across
// segments still resolves.
func LineEvents(line string) []Event {
	source := []byte(line)
	doc := inlineParser.Parser().Parse(text.NewReader(source))

	var events []Event
	var pending []byte
	flush := func() {
		if pending != nil {
			events = append(events, Event{Kind: EventText, Text: decodeText(pending)})
			pending = nil
		}
	}
	emit := func(e Event) {
		flush()
		events = append(events, e)
	}

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := node.(type) {
		case *ast.Document:
			return ast.WalkContinue, nil
		case *ast.Text:
			if entering {
				pending = append(pending, n.Segment.Value(source)...)
			}
			return ast.WalkContinue, nil
		case *ast.String:
			if entering {
				emit(Event{Kind: EventText, Text: string(n.Value)})
			}
			return ast.WalkContinue, nil
		case *ast.CodeSpan, *ast.RawHTML, *ast.HTMLBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			if entering {
				emit(Event{Kind: EventStart})
				emit(Event{Kind: EventText, Text: string(n.Label(source))})
				emit(Event{Kind: EventEnd})
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				emit(Event{Kind: EventStart})
				emit(Event{Kind: EventText, Text: blockLines(node, source)})
				emit(Event{Kind: EventEnd})
			}
			return ast.WalkSkipChildren, nil
		}

		kind := EventEnd
		if entering {
			kind = EventStart
		}
		emit(Event{Kind: kind, Style: styleOf(node)})
		return ast.WalkContinue, nil
	})
	flush()
	return events
}

// decodeText resolves entity references and backslash escapes, which goldmark
// leaves in text segments for its renderer to decode.
func decodeText(raw []byte) string {
	return string(util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(raw))))
}

func styleOf(node ast.Node) Style {
	switch n := node.(type) {
	case *ast.Emphasis:
		if n.Level >= 2 {
			return StyleBold
		}
		return StyleItalic
	case *extast.Strikethrough:
		return StyleStrikethrough
	default:
		return StyleNone
	}
}

func blockLines(node ast.Node, source []byte) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(source))
	}
	return b.String()
}
